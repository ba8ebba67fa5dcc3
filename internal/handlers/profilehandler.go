package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amirulafiq/kerjago/internal/auth"
	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/models"
	"github.com/amirulafiq/kerjago/internal/repository"
	"github.com/amirulafiq/kerjago/internal/stores"
)

// ProfileHandler serves the employer's business profile.
type ProfileHandler struct {
	Repo   repository.ProfileRepository
	State  *stores.AppState
	Logger *zap.Logger
}

func NewProfileHandler(repo repository.ProfileRepository, state *stores.AppState, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{Repo: repo, State: state, Logger: logger}
}

// GetProfile is GET /api/profile. A user without a saved profile gets
// an incomplete one, which the frontend uses to force the completion
// flow.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := auth.UserID(c)

	profile, err := h.Repo.Get(c.Request.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusOK, models.BusinessProfile{IsComplete: false})
		return
	}
	if err != nil {
		h.Logger.Error("Failed to fetch profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: "Failed to fetch profile", Message: err.Error()})
		return
	}

	h.State.Profile.Set(*profile)
	c.JSON(http.StatusOK, profile)
}

// SaveProfile is POST /api/profile: upserts user, business and
// employer in one transaction and marks the profile complete.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID := auth.UserID(c)
	email := auth.Email(c)

	var req dtos.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	profile, err := h.Repo.Upsert(c.Request.Context(), userID, email, &req)
	if err != nil {
		h.Logger.Error("Failed to save profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Error: "Failed to save profile", Message: err.Error()})
		return
	}

	h.State.Profile.Set(*profile)
	c.JSON(http.StatusOK, profile)
}
