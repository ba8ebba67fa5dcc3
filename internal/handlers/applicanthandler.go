package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/models"
	"github.com/amirulafiq/kerjago/internal/repository"
	"github.com/amirulafiq/kerjago/internal/stores"
)

// ApplicantHandler serves the applicant review surface.
type ApplicantHandler struct {
	Repo   repository.ApplicantRepository
	State  *stores.AppState
	Logger *zap.Logger
}

func NewApplicantHandler(repo repository.ApplicantRepository, state *stores.AppState, logger *zap.Logger) *ApplicantHandler {
	return &ApplicantHandler{Repo: repo, State: state, Logger: logger}
}

// ListApplicants is GET /api/applicants?search=&status=&jobId=.
func (h *ApplicantHandler) ListApplicants(c *gin.Context) {
	h.setLoading(func(l *stores.ApplicantLoading) { l.List = true })
	defer h.setLoading(func(l *stores.ApplicantLoading) { l.List = false })

	filter := repository.ApplicantFilter{
		Search: c.Query("search"),
		Status: models.ApplicationStatus(c.Query("status")),
		JobID:  c.Query("jobId"),
	}

	applicants, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, "Failed to list applicants", err)
		return
	}
	if applicants == nil {
		applicants = []models.Applicant{}
	}

	h.State.Applicants.Set(applicants)
	h.State.ApplicantFilters.Set(stores.ApplicantFilters{
		Search: filter.Search,
		Status: filter.Status,
		JobID:  filter.JobID,
	})
	c.JSON(http.StatusOK, applicants)
}

// GetApplicant is GET /api/applicants/:id.
func (h *ApplicantHandler) GetApplicant(c *gin.Context) {
	h.setLoading(func(l *stores.ApplicantLoading) { l.Details = true })
	defer h.setLoading(func(l *stores.ApplicantLoading) { l.Details = false })

	applicant, err := h.Repo.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, dtos.ErrorResponse{Error: "Applicant not found"})
		return
	}
	if err != nil {
		h.fail(c, "Failed to fetch applicant", err)
		return
	}

	h.State.SelectedApplicant.Set(applicant)
	c.JSON(http.StatusOK, applicant)
}

// UpdateApplicantStatus is PATCH /api/applicants/:id/status. Moves are
// checked against the review transition table: an applicant must be
// shortlisted before being accepted.
func (h *ApplicantHandler) UpdateApplicantStatus(c *gin.Context) {
	h.setLoading(func(l *stores.ApplicantLoading) { l.Update = true })
	defer h.setLoading(func(l *stores.ApplicantLoading) { l.Update = false })

	var req dtos.ApplicantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Failed to update applicant", zap.Error(err))
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	applicant, err := h.Repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, dtos.ErrorResponse{Error: "Applicant not found"})
		return
	case errors.Is(err, repository.ErrInvalidTransition):
		h.Logger.Error("Invalid applicant transition", zap.Error(err))
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Error: "Invalid status transition", Message: err.Error()})
		return
	case err != nil:
		h.fail(c, "Failed to update applicant", err)
		return
	}

	h.State.Applicants.Update(func(list []models.Applicant) []models.Applicant {
		for i := range list {
			if list[i].ID == applicant.ID {
				list[i] = *applicant
			}
		}
		return list
	})
	c.JSON(http.StatusOK, applicant)
}

func (h *ApplicantHandler) setLoading(fn func(*stores.ApplicantLoading)) {
	h.State.ApplicantLoading.Update(func(l stores.ApplicantLoading) stores.ApplicantLoading {
		fn(&l)
		return l
	})
}

func (h *ApplicantHandler) fail(c *gin.Context, what string, err error) {
	h.Logger.Error(what, zap.Error(err))
	c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: what, Message: err.Error()})
}
