// Package form owns the in-progress job draft behind the multi-step
// posting wizard: the active step, per-step validation, and the
// create/update dispatch on submit.
package form

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/amirulafiq/kerjago/internal/models"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Step is one wizard page: a title for the progress display and the
// current validity of the fields it owns.
type Step struct {
	Title   string `json:"title"`
	IsValid bool   `json:"isValid"`
}

// JobSubmitter dispatches a validated draft. *services.JobsClient
// satisfies it; tests plug in fakes.
type JobSubmitter interface {
	CreateJob(ctx context.Context, draft models.JobFormState) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, draft models.JobFormState) (*models.Job, error)
}

// ValidationError reports a full-form validation failure on submit. It
// is recovered locally, never sent over the wire.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed: %v", e.Fields)
}

type stepDef struct {
	title string
	valid func(*models.JobFormState) bool
}

// Steps own disjoint field subsets; the requirements step is always
// valid because every field in it is optional.
var stepDefs = []stepDef{
	{"Basic Info", func(d *models.JobFormState) bool {
		if d.Title == "" || d.Category == "" || d.Description == "" {
			return false
		}
		if d.Category == "other" && d.OtherCategory == "" {
			return false
		}
		return true
	}},
	{"Location & Schedule", func(d *models.JobFormState) bool {
		return d.IsRemote || d.Location != ""
	}},
	{"Compensation", func(d *models.JobFormState) bool {
		return d.PayRateAmount >= 0 && d.PayRateDescription != ""
	}},
	{"Requirements", func(d *models.JobFormState) bool {
		return true
	}},
	{"Review & Publish", func(d *models.JobFormState) bool {
		return d.VisibilityDuration != ""
	}},
}

// JobForm is the authoritative draft state. It is owned by a single
// goroutine (one user editing one form); it does not lock.
type JobForm struct {
	mode    Mode
	jobID   string
	draft   models.JobFormState
	initial models.JobFormState
	step    int
	loading bool

	submitter JobSubmitter
	validate  *validator.Validate
	logger    *zap.Logger
}

// DefaultFormState is the empty draft create mode starts from.
func DefaultFormState() models.JobFormState {
	return models.JobFormState{
		Responsibilities: []string{},
		Notifications: models.NotificationPreferences{
			NewApplication: true,
			JobExpiry:      true,
		},
	}
}

// New builds a form controller. Edit mode seeds the draft from an
// existing Job, dropping the persisted extras (id, timestamps, status,
// stats) until submission re-attaches them by targeting the same id.
func New(mode Mode, existing *models.Job, submitter JobSubmitter, logger *zap.Logger) *JobForm {
	f := &JobForm{
		mode:      mode,
		draft:     DefaultFormState(),
		submitter: submitter,
		validate:  validator.New(),
		logger:    logger,
	}
	if mode == ModeEdit && existing != nil {
		f.jobID = existing.ID
		f.draft = existing.JobFormState
	}
	f.initial = f.draft
	return f
}

func (f *JobForm) CurrentStep() int { return f.step }

func (f *JobForm) Loading() bool { return f.loading }

func (f *JobForm) Draft() models.JobFormState { return f.draft }

// UpdateDraft mutates the draft in place. Step validity is recomputed
// lazily on the next Steps/AdvanceStep call.
func (f *JobForm) UpdateDraft(fn func(*models.JobFormState)) {
	fn(&f.draft)
}

// Steps returns the progress display: one entry per wizard page with
// its live validity.
func (f *JobForm) Steps() []Step {
	out := make([]Step, len(stepDefs))
	for i, s := range stepDefs {
		out[i] = Step{Title: s.title, IsValid: s.valid(&f.draft)}
	}
	return out
}

// AdvanceStep moves forward one step. Rejected (no movement) when the
// current step's fields are incomplete or the last step is active.
func (f *JobForm) AdvanceStep() bool {
	if f.step >= len(stepDefs)-1 {
		return false
	}
	if !stepDefs[f.step].valid(&f.draft) {
		return false
	}
	f.step++
	return true
}

// RetreatStep moves back one step; going back never needs validation.
func (f *JobForm) RetreatStep() bool {
	if f.step == 0 {
		return false
	}
	f.step--
	return true
}

// Submit runs full-form validation and dispatches the draft. The
// loading flag is released on every exit path. On failure the draft and
// step are left untouched so the user loses nothing; on create success
// the form resets for the next posting.
func (f *JobForm) Submit(ctx context.Context) (*models.Job, error) {
	if err := f.validate.Struct(&f.draft); err != nil {
		verr := &ValidationError{}
		if fieldErrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrs {
				verr.Fields = append(verr.Fields, fe.Field())
			}
		}
		return nil, verr
	}

	f.loading = true
	defer func() { f.loading = false }()

	var job *models.Job
	var err error
	if f.mode == ModeEdit {
		job, err = f.submitter.UpdateJob(ctx, f.jobID, f.draft)
	} else {
		job, err = f.submitter.CreateJob(ctx, f.draft)
	}
	if err != nil {
		f.logger.Error("Error submitting form", zap.String("mode", string(f.mode)), zap.Error(err))
		return nil, err
	}

	if f.mode == ModeCreate {
		f.Reset()
	}
	return job, nil
}

// Reset restores the initial snapshot, clears loading and returns to
// the first step.
func (f *JobForm) Reset() {
	f.draft = f.initial
	f.step = 0
	f.loading = false
}
