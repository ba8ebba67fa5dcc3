package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amirulafiq/kerjago/internal/models"
)

type fakeSubmitter struct {
	err     error
	creates int
	updates int
	lastID  string
	last    models.JobFormState
}

func (f *fakeSubmitter) CreateJob(ctx context.Context, draft models.JobFormState) (*models.Job, error) {
	f.creates++
	f.last = draft
	if f.err != nil {
		return nil, f.err
	}
	now := time.Now().UTC()
	return &models.Job{
		JobFormState: draft,
		ID:           "job-created",
		CreatedAt:    now,
		UpdatedAt:    now,
		Status:       models.JobStatusDraft,
	}, nil
}

func (f *fakeSubmitter) UpdateJob(ctx context.Context, id string, draft models.JobFormState) (*models.Job, error) {
	f.updates++
	f.lastID = id
	f.last = draft
	if f.err != nil {
		return nil, f.err
	}
	return &models.Job{JobFormState: draft, ID: id, Status: models.JobStatusDraft}, nil
}

func completeDraft(d *models.JobFormState) {
	d.Title = "Barista"
	d.Category = "cafe_restaurant"
	d.Description = "Weekend barista for a busy cafe"
	d.Location = "Kuala Lumpur"
	d.PayRateAmount = 15
	d.PayRateDescription = "per_hour"
	d.VisibilityDuration = "30_days"
}

func TestAdvanceStepGatedOnValidity(t *testing.T) {
	f := New(ModeCreate, nil, &fakeSubmitter{}, zap.NewNop())

	// empty draft: basic info incomplete, step must not move
	assert.False(t, f.AdvanceStep())
	assert.Equal(t, 0, f.CurrentStep())

	f.UpdateDraft(func(d *models.JobFormState) {
		d.Title = "Barista"
		d.Category = "cafe_restaurant"
		d.Description = "Weekend barista"
	})
	assert.True(t, f.AdvanceStep())
	assert.Equal(t, 1, f.CurrentStep())

	// location empty and not remote: stuck on step 1
	assert.False(t, f.AdvanceStep())

	f.UpdateDraft(func(d *models.JobFormState) { d.IsRemote = true })
	assert.True(t, f.AdvanceStep())
	assert.Equal(t, 2, f.CurrentStep())
}

func TestAdvanceStepOtherCategoryNeedsText(t *testing.T) {
	f := New(ModeCreate, nil, &fakeSubmitter{}, zap.NewNop())
	f.UpdateDraft(func(d *models.JobFormState) {
		d.Title = "Helper"
		d.Category = "other"
		d.Description = "General help"
	})
	assert.False(t, f.AdvanceStep())

	f.UpdateDraft(func(d *models.JobFormState) { d.OtherCategory = "Warehouse" })
	assert.True(t, f.AdvanceStep())
}

func TestAdvanceStepStopsAtLastStep(t *testing.T) {
	f := New(ModeCreate, nil, &fakeSubmitter{}, zap.NewNop())
	f.UpdateDraft(completeDraft)

	for f.AdvanceStep() {
	}
	assert.Equal(t, len(f.Steps())-1, f.CurrentStep())
	assert.False(t, f.AdvanceStep())
	assert.Equal(t, len(f.Steps())-1, f.CurrentStep())
}

func TestRetreatStep(t *testing.T) {
	f := New(ModeCreate, nil, &fakeSubmitter{}, zap.NewNop())
	assert.False(t, f.RetreatStep())

	f.UpdateDraft(completeDraft)
	require.True(t, f.AdvanceStep())
	assert.True(t, f.RetreatStep())
	assert.Equal(t, 0, f.CurrentStep())
}

func TestStepsValidity(t *testing.T) {
	f := New(ModeCreate, nil, &fakeSubmitter{}, zap.NewNop())

	steps := f.Steps()
	require.Len(t, steps, 5)
	assert.Equal(t, "Basic Info", steps[0].Title)
	assert.False(t, steps[0].IsValid)
	// requirements fields are all optional, the step is always valid
	assert.Equal(t, "Requirements", steps[3].Title)
	assert.True(t, steps[3].IsValid)

	f.UpdateDraft(completeDraft)
	for _, s := range f.Steps() {
		assert.True(t, s.IsValid, s.Title)
	}
}

func TestSubmitValidationFailure(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(ModeCreate, nil, sub, zap.NewNop())

	_, err := f.Submit(context.Background())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Fields)
	// nothing was dispatched
	assert.Zero(t, sub.creates)
	assert.False(t, f.Loading())
}

func TestSubmitCreateSuccessResetsForm(t *testing.T) {
	sub := &fakeSubmitter{}
	f := New(ModeCreate, nil, sub, zap.NewNop())
	f.UpdateDraft(completeDraft)
	require.True(t, f.AdvanceStep())

	job, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "job-created", job.ID)
	assert.Equal(t, models.JobStatusDraft, job.Status)
	assert.Equal(t, 1, sub.creates)

	// create success resets for the next posting
	assert.Equal(t, 0, f.CurrentStep())
	assert.Empty(t, f.Draft().Title)
	assert.False(t, f.Loading())
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	f := New(ModeCreate, nil, sub, zap.NewNop())
	f.UpdateDraft(completeDraft)
	require.True(t, f.AdvanceStep())

	_, err := f.Submit(context.Background())
	require.Error(t, err)

	// no data loss on error: draft, step and loading all intact
	assert.Equal(t, "Barista", f.Draft().Title)
	assert.Equal(t, 1, f.CurrentStep())
	assert.False(t, f.Loading())
}

func TestEditModeSeedsAndUpdates(t *testing.T) {
	existing := &models.Job{
		ID:     "job-77",
		Status: models.JobStatusPublished,
	}
	completeDraft(&existing.JobFormState)

	sub := &fakeSubmitter{}
	f := New(ModeEdit, existing, sub, zap.NewNop())

	// draft seeded from the persisted record, extras dropped
	assert.Equal(t, "Barista", f.Draft().Title)

	f.UpdateDraft(func(d *models.JobFormState) { d.Title = "Senior Barista" })
	job, err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sub.updates)
	assert.Equal(t, "job-77", sub.lastID)
	assert.Equal(t, "Senior Barista", job.Title)
	// edit success keeps the draft matching the persisted state
	assert.Equal(t, "Senior Barista", f.Draft().Title)
}

func TestReset(t *testing.T) {
	f := New(ModeCreate, nil, &fakeSubmitter{}, zap.NewNop())
	f.UpdateDraft(completeDraft)
	require.True(t, f.AdvanceStep())

	f.Reset()
	assert.Equal(t, 0, f.CurrentStep())
	assert.Empty(t, f.Draft().Title)
	// defaults survive a reset
	assert.True(t, f.Draft().Notifications.NewApplication)
}
