package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/models"
)

// GormJobRepository is the durable store behind the same contract as
// the in-memory fixture.
type GormJobRepository struct {
	DB *gorm.DB
}

func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{DB: db}
}

func (r *GormJobRepository) List(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.DB.WithContext(ctx).Order("created_at ASC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRepository) Get(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	err := r.DB.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormJobRepository) Create(ctx context.Context, draft models.JobFormState) (*models.Job, error) {
	now := time.Now().UTC()
	job := models.Job{
		JobFormState: draft,
		ID:           uuid.NewString(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Status:       models.JobStatusDraft,
	}
	if err := r.DB.WithContext(ctx).Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormJobRepository) Update(ctx context.Context, id string, patch *dtos.JobPatch) (*models.Job, error) {
	var job models.Job

	// Load, merge and save inside one transaction so a concurrent
	// update can't interleave between the read and the write.
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&job, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if patch.Status != nil {
			if !patch.Status.Valid() {
				return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, *patch.Status)
			}
			if !job.Status.CanTransition(*patch.Status) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, job.Status, *patch.Status)
			}
			job.Status = *patch.Status
		}
		patch.Apply(&job)
		job.UpdatedAt = monotonicAfter(job.UpdatedAt)

		return tx.Save(&job).Error
	})
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormJobRepository) Delete(ctx context.Context, id string) error {
	// gorm reports zero rows affected for a missing id, which is
	// exactly the no-op the contract wants.
	return r.DB.WithContext(ctx).Delete(&models.Job{}, "id = ?", id).Error
}

// GormApplicantRepository stores applications in Postgres.
type GormApplicantRepository struct {
	DB *gorm.DB
}

func NewGormApplicantRepository(db *gorm.DB) *GormApplicantRepository {
	return &GormApplicantRepository{DB: db}
}

func (r *GormApplicantRepository) List(ctx context.Context, filter ApplicantFilter) ([]models.Applicant, error) {
	q := r.DB.WithContext(ctx).Order("applied_at DESC")
	if filter.JobID != "" {
		q = q.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	var applicants []models.Applicant
	if err := q.Find(&applicants).Error; err != nil {
		return nil, err
	}
	return applicants, nil
}

func (r *GormApplicantRepository) Get(ctx context.Context, id string) (*models.Applicant, error) {
	var a models.Applicant
	err := r.DB.WithContext(ctx).First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *GormApplicantRepository) Create(ctx context.Context, applicant models.Applicant) (*models.Applicant, error) {
	if applicant.ID == "" {
		applicant.ID = uuid.NewString()
	}
	if applicant.Status == "" {
		applicant.Status = models.ApplicationPending
	}
	if applicant.AppliedAt.IsZero() {
		applicant.AppliedAt = time.Now().UTC()
	}
	if err := r.DB.WithContext(ctx).Create(&applicant).Error; err != nil {
		return nil, err
	}
	return &applicant, nil
}

func (r *GormApplicantRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Applicant, error) {
	var a models.Applicant
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&a, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if !status.Valid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
		}
		if !a.Status.CanTransition(status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, status)
		}
		a.Status = status
		return tx.Save(&a).Error
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// GormProfileRepository stores user, business and employer rows and
// projects them into the BusinessProfile the frontend consumes.
type GormProfileRepository struct {
	DB *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{DB: db}
}

func (r *GormProfileRepository) Get(ctx context.Context, userID string) (*models.BusinessProfile, error) {
	var employer models.Employer
	err := r.DB.WithContext(ctx).Preload("Business").First(&employer, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}

	return &models.BusinessProfile{
		IsComplete:          employer.Business.IsComplete,
		BusinessName:        employer.Business.Name,
		BusinessLogo:        employer.Business.Logo,
		BusinessDescription: employer.Business.Description,
		ContactPerson: &models.ProfileContact{
			Name:       user.Name,
			Role:       employer.Role,
			Department: employer.Department,
		},
	}, nil
}

func (r *GormProfileRepository) Upsert(ctx context.Context, userID, email string, req *dtos.ProfileRequest) (*models.BusinessProfile, error) {
	var business models.Business

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Make sure the user row exists and carries the contact name.
		user := models.User{ID: userID}
		if err := tx.Where(models.User{ID: userID}).
			Assign(models.User{Name: req.ContactPerson.Name, Email: email, Role: "EMPLOYER"}).
			FirstOrCreate(&user).Error; err != nil {
			return err
		}

		// 2. Create or update the business record.
		business = models.Business{
			ID:          req.BusinessID,
			Name:        strings.TrimSpace(req.BusinessName),
			Address:     strings.TrimSpace(req.BusinessAddress),
			Description: req.BusinessDescription,
			Logo:        req.BusinessLogo,
			IsComplete:  true,
		}
		if business.ID == "" {
			business.ID = uuid.NewString()
			if err := tx.Create(&business).Error; err != nil {
				return err
			}
		} else if err := tx.Save(&business).Error; err != nil {
			return err
		}

		// 3. Link the employer to the business.
		var employer models.Employer
		err := tx.First(&employer, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			employer = models.Employer{
				ID:         uuid.NewString(),
				UserID:     userID,
				BusinessID: business.ID,
				Role:       req.ContactPerson.Role,
				Department: req.ContactPerson.Department,
			}
			return tx.Create(&employer).Error
		}
		if err != nil {
			return err
		}
		employer.BusinessID = business.ID
		employer.Role = req.ContactPerson.Role
		employer.Department = req.ContactPerson.Department
		return tx.Save(&employer).Error
	})
	if err != nil {
		return nil, err
	}

	return &models.BusinessProfile{
		IsComplete:          true,
		BusinessName:        business.Name,
		BusinessLogo:        business.Logo,
		BusinessDescription: business.Description,
		ContactPerson: &models.ProfileContact{
			Name:       req.ContactPerson.Name,
			Role:       req.ContactPerson.Role,
			Department: req.ContactPerson.Department,
		},
	}, nil
}
