package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/models"
)

func baristaDraft() models.JobFormState {
	return models.JobFormState{
		Title:              "Barista",
		Category:           "cafe_restaurant",
		Description:        "Weekend barista for a busy cafe",
		Responsibilities:   []string{"Prepare drinks", "Handle POS"},
		Location:           "Kuala Lumpur",
		Duration:           "3 months",
		PayRateAmount:      15,
		PayRateDescription: "per_hour",
		VisibilityDuration: "30_days",
		Notifications:      models.NotificationPreferences{NewApplication: true},
	}
}

func TestMemoryJobRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()
	draft := baristaDraft()

	job, err := repo.Create(ctx, draft)
	require.NoError(t, err)

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, models.JobStatusDraft, job.Status)
	assert.Equal(t, job.CreatedAt, job.UpdatedAt)
	assert.Nil(t, job.Stats)
	assert.Equal(t, draft, job.JobFormState)

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)
}

func TestMemoryJobRepository_UniqueIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		job, err := repo.Create(ctx, baristaDraft())
		require.NoError(t, err)
		require.False(t, seen[job.ID], "duplicate id %s", job.ID)
		seen[job.ID] = true
	}
}

func TestMemoryJobRepository_UpdateMergesShallow(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	created, err := repo.Create(ctx, baristaDraft())
	require.NoError(t, err)

	title := "Senior Barista"
	pay := 18.0
	updated, err := repo.Update(ctx, created.ID, &dtos.JobPatch{
		Title:         &title,
		PayRateAmount: &pay,
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Barista", updated.Title)
	assert.Equal(t, 18.0, updated.PayRateAmount)
	// absent fields keep prior values
	assert.Equal(t, "cafe_restaurant", updated.Category)
	assert.Equal(t, "Kuala Lumpur", updated.Location)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.CreatedAt), "updatedAt must strictly increase")
}

func TestMemoryJobRepository_UpdateStatusTransition(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	created, err := repo.Create(ctx, baristaDraft())
	require.NoError(t, err)

	published := models.JobStatusPublished
	updated, err := repo.Update(ctx, created.ID, &dtos.JobPatch{Status: &published})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPublished, updated.Status)

	// published -> draft is illegal and must leave the record untouched
	draft := models.JobStatusDraft
	_, err = repo.Update(ctx, created.ID, &dtos.JobPatch{Status: &draft})
	require.ErrorIs(t, err, ErrInvalidTransition)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPublished, got.Status)
	assert.Equal(t, updated.UpdatedAt, got.UpdatedAt)
}

func TestMemoryJobRepository_UpdateUnknownID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	_, err := repo.Create(ctx, baristaDraft())
	require.NoError(t, err)

	title := "Nope"
	_, err = repo.Update(ctx, "does-not-exist", &dtos.JobPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 1)
	assert.Equal(t, "Barista", jobs[0].Title)
}

func TestMemoryJobRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryJobRepository()

	a, err := repo.Create(ctx, baristaDraft())
	require.NoError(t, err)
	b, err := repo.Create(ctx, baristaDraft())
	require.NoError(t, err)

	// unknown id is a no-op
	require.NoError(t, repo.Delete(ctx, "does-not-exist"))
	jobs, _ := repo.List(ctx)
	assert.Len(t, jobs, 2)

	require.NoError(t, repo.Delete(ctx, a.ID))
	jobs, _ = repo.List(ctx)
	require.Len(t, jobs, 1)
	assert.Equal(t, b.ID, jobs[0].ID)
}

func TestMemoryApplicantRepository_Filters(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryApplicantRepository()

	sarah, err := repo.Create(ctx, models.Applicant{Name: "Sarah Chen", JobID: "job-1"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Applicant{Name: "Ahmad bin Abdullah", JobID: "job-1", Status: models.ApplicationShortlisted})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.Applicant{Name: "Raj Kumar", JobID: "job-2"})
	require.NoError(t, err)

	assert.Equal(t, models.ApplicationPending, sarah.Status)
	assert.NotEmpty(t, sarah.ID)
	assert.False(t, sarah.AppliedAt.IsZero())

	byJob, err := repo.List(ctx, ApplicantFilter{JobID: "job-1"})
	require.NoError(t, err)
	assert.Len(t, byJob, 2)

	byStatus, err := repo.List(ctx, ApplicantFilter{Status: models.ApplicationShortlisted})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, "Ahmad bin Abdullah", byStatus[0].Name)

	bySearch, err := repo.List(ctx, ApplicantFilter{Search: "sarah"})
	require.NoError(t, err)
	require.Len(t, bySearch, 1)
	assert.Equal(t, sarah.ID, bySearch[0].ID)

	combined, err := repo.List(ctx, ApplicantFilter{JobID: "job-2", Search: "sarah"})
	require.NoError(t, err)
	assert.Empty(t, combined)
}

func TestMemoryApplicantRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryApplicantRepository()

	a, err := repo.Create(ctx, models.Applicant{Name: "Sarah Chen", JobID: "job-1"})
	require.NoError(t, err)

	// pending -> accepted skips the shortlist and must be rejected
	_, err = repo.UpdateStatus(ctx, a.ID, models.ApplicationAccepted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	shortlisted, err := repo.UpdateStatus(ctx, a.ID, models.ApplicationShortlisted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationShortlisted, shortlisted.Status)

	accepted, err := repo.UpdateStatus(ctx, a.ID, models.ApplicationAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationAccepted, accepted.Status)

	_, err = repo.UpdateStatus(ctx, "missing", models.ApplicationRejected)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryProfileRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryProfileRepository()

	_, err := repo.Get(ctx, "user-1")
	assert.ErrorIs(t, err, ErrNotFound)

	req := &dtos.ProfileRequest{
		BusinessName:        "  TechCorp Solutions  ",
		BusinessDescription: "Leading technology solutions provider",
	}
	req.ContactPerson.Name = "John Doe"
	req.ContactPerson.Role = "HR Manager"

	saved, err := repo.Upsert(ctx, "user-1", "john@techcorp.example", req)
	require.NoError(t, err)
	assert.True(t, saved.IsComplete)
	assert.Equal(t, "TechCorp Solutions", saved.BusinessName)

	got, err := repo.Get(ctx, "user-1")
	require.NoError(t, err)
	require.NotNil(t, got.ContactPerson)
	assert.Equal(t, "John Doe", got.ContactPerson.Name)
}
