package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/models"
)

// MemoryJobRepository keeps the collection in an ordered in-process
// slice. Non-durable: everything is lost on restart. It exists as the
// reference fixture behind the same contract as the Postgres store and
// must not be used in production.
type MemoryJobRepository struct {
	mu   sync.Mutex
	jobs []models.Job
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{}
}

func (r *MemoryJobRepository) List(ctx context.Context) ([]models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Job, len(r.jobs))
	copy(out, r.jobs)
	return out, nil
}

func (r *MemoryJobRepository) Get(ctx context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.jobs {
		if r.jobs[i].ID == id {
			job := r.jobs[i]
			return &job, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryJobRepository) Create(ctx context.Context, draft models.JobFormState) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	job := models.Job{
		JobFormState: draft,
		ID:           uuid.NewString(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Status:       models.JobStatusDraft,
	}
	r.jobs = append(r.jobs, job)
	return &job, nil
}

func (r *MemoryJobRepository) Update(ctx context.Context, id string, patch *dtos.JobPatch) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.jobs {
		if r.jobs[i].ID != id {
			continue
		}
		job := r.jobs[i]

		if patch.Status != nil {
			if !patch.Status.Valid() {
				return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, *patch.Status)
			}
			if !job.Status.CanTransition(*patch.Status) {
				return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, *patch.Status)
			}
			job.Status = *patch.Status
		}
		patch.Apply(&job)
		job.UpdatedAt = monotonicAfter(job.UpdatedAt)

		r.jobs[i] = job
		return &job, nil
	}
	return nil, ErrNotFound
}

func (r *MemoryJobRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// No-op when the id is unknown, matching DELETE semantics.
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs = append(r.jobs[:i], r.jobs[i+1:]...)
			return nil
		}
	}
	return nil
}

// monotonicAfter returns the current instant, nudged forward if the
// clock has not advanced past prev. updatedAt must strictly increase on
// every mutation even when two updates land within timer resolution.
func monotonicAfter(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		return prev.Add(time.Nanosecond)
	}
	return now
}

// MemoryApplicantRepository is the in-process applicant fixture.
type MemoryApplicantRepository struct {
	mu         sync.Mutex
	applicants []models.Applicant
}

func NewMemoryApplicantRepository() *MemoryApplicantRepository {
	return &MemoryApplicantRepository{}
}

func (r *MemoryApplicantRepository) List(ctx context.Context, filter ApplicantFilter) ([]models.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Applicant
	for _, a := range r.applicants {
		if filter.JobID != "" && a.JobID != filter.JobID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *MemoryApplicantRepository) Get(ctx context.Context, id string) (*models.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.applicants {
		if r.applicants[i].ID == id {
			a := r.applicants[i]
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryApplicantRepository) Create(ctx context.Context, applicant models.Applicant) (*models.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if applicant.ID == "" {
		applicant.ID = uuid.NewString()
	}
	if applicant.Status == "" {
		applicant.Status = models.ApplicationPending
	}
	if applicant.AppliedAt.IsZero() {
		applicant.AppliedAt = time.Now().UTC()
	}
	r.applicants = append(r.applicants, applicant)
	return &applicant, nil
}

func (r *MemoryApplicantRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Applicant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.applicants {
		if r.applicants[i].ID != id {
			continue
		}
		if !status.Valid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
		}
		if !r.applicants[i].Status.CanTransition(status) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, r.applicants[i].Status, status)
		}
		r.applicants[i].Status = status
		a := r.applicants[i]
		return &a, nil
	}
	return nil, ErrNotFound
}

// MemoryProfileRepository keeps one profile per user id.
type MemoryProfileRepository struct {
	mu       sync.Mutex
	profiles map[string]models.BusinessProfile
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{profiles: make(map[string]models.BusinessProfile)}
}

func (r *MemoryProfileRepository) Get(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *MemoryProfileRepository) Upsert(ctx context.Context, userID, email string, req *dtos.ProfileRequest) (*models.BusinessProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile := models.BusinessProfile{
		IsComplete:          true,
		BusinessName:        strings.TrimSpace(req.BusinessName),
		BusinessLogo:        req.BusinessLogo,
		BusinessDescription: req.BusinessDescription,
		ContactPerson: &models.ProfileContact{
			Name:       req.ContactPerson.Name,
			Role:       req.ContactPerson.Role,
			Department: req.ContactPerson.Department,
		},
	}
	r.profiles[userID] = profile
	return &profile, nil
}
