// Package repository defines the storage contract for the job
// collection and its implementations. Handlers talk only to these
// interfaces, so the in-memory fixture and the Postgres store are
// interchangeable.
package repository

import (
	"context"
	"errors"

	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/models"
)

var (
	// ErrNotFound is returned when an addressed record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidTransition is returned when a status change violates
	// the transition table.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// JobRepository stores job postings. Create assigns the id and both
// timestamps; Update performs a shallow merge and refreshes updatedAt
// only; Delete on a missing id is a no-op.
type JobRepository interface {
	List(ctx context.Context) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, draft models.JobFormState) (*models.Job, error)
	Update(ctx context.Context, id string, patch *dtos.JobPatch) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

// ApplicantFilter narrows applicant listings. Zero values mean "any".
type ApplicantFilter struct {
	Search string
	Status models.ApplicationStatus
	JobID  string
}

// ApplicantRepository stores applications to jobs.
type ApplicantRepository interface {
	List(ctx context.Context, filter ApplicantFilter) ([]models.Applicant, error)
	Get(ctx context.Context, id string) (*models.Applicant, error)
	Create(ctx context.Context, applicant models.Applicant) (*models.Applicant, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Applicant, error)
}

// ProfileRepository stores the employer's business profile.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*models.BusinessProfile, error)
	Upsert(ctx context.Context, userID, email string, req *dtos.ProfileRequest) (*models.BusinessProfile, error)
}
