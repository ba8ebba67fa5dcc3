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

// JobHandler serves the /api/jobs collection. Dependency injection:
// the repository does storage, the app state mirrors the collection
// for server-rendered views.
type JobHandler struct {
	Repo   repository.JobRepository
	State  *stores.AppState
	Logger *zap.Logger
}

func NewJobHandler(repo repository.JobRepository, state *stores.AppState, logger *zap.Logger) *JobHandler {
	return &JobHandler{Repo: repo, State: state, Logger: logger}
}

// ListJobs is GET /api/jobs: the full collection in insertion order.
func (h *JobHandler) ListJobs(c *gin.Context) {
	h.setJobLoading(func(l *stores.JobLoading) { l.List = true })
	defer h.setJobLoading(func(l *stores.JobLoading) { l.List = false })

	jobs, err := h.Repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to list jobs", err)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	h.State.Jobs.Set(jobs)
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is POST /api/jobs. The repository assigns id, both
// timestamps and draft status; the client never supplies them.
func (h *JobHandler) CreateJob(c *gin.Context) {
	h.setJobLoading(func(l *stores.JobLoading) { l.Create = true })
	defer h.setJobLoading(func(l *stores.JobLoading) { l.Create = false })

	var draft models.JobFormState
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to create job", err)
		return
	}

	job, err := h.Repo.Create(c.Request.Context(), draft)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to create job", err)
		return
	}

	h.State.Jobs.Update(func(jobs []models.Job) []models.Job {
		return append(jobs, *job)
	})
	c.JSON(http.StatusCreated, job)
}

// UpdateJob is PUT /api/jobs?id=ID: shallow merge of the supplied
// fields onto the stored record. Fields absent from the body keep
// their prior values; updatedAt is refreshed.
func (h *JobHandler) UpdateJob(c *gin.Context) {
	h.setJobLoading(func(l *stores.JobLoading) { l.Update = true })
	defer h.setJobLoading(func(l *stores.JobLoading) { l.Update = false })

	id := c.Query("id")
	if id == "" {
		h.fail(c, http.StatusInternalServerError, "Failed to update job", errors.New("Job ID is required"))
		return
	}

	var patch dtos.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to update job", err)
		return
	}

	job, err := h.Repo.Update(c.Request.Context(), id, &patch)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, dtos.ErrorResponse{Error: "Job not found"})
		return
	case errors.Is(err, repository.ErrInvalidTransition):
		h.fail(c, http.StatusBadRequest, "Invalid status transition", err)
		return
	case err != nil:
		h.fail(c, http.StatusInternalServerError, "Failed to update job", err)
		return
	}

	// Copy before patching: snapshots handed out by Get must not
	// change under their holders.
	h.State.Jobs.Update(func(jobs []models.Job) []models.Job {
		out := make([]models.Job, len(jobs))
		copy(out, jobs)
		for i := range out {
			if out[i].ID == job.ID {
				out[i] = *job
			}
		}
		return out
	})
	c.JSON(http.StatusOK, job)
}

// DeleteJob is DELETE /api/jobs?id=ID. Removing an unknown id is a
// no-op, not an error.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	h.setJobLoading(func(l *stores.JobLoading) { l.Delete = true })
	defer h.setJobLoading(func(l *stores.JobLoading) { l.Delete = false })

	id := c.Query("id")
	if id == "" {
		h.fail(c, http.StatusInternalServerError, "Failed to delete job", errors.New("Job ID is required"))
		return
	}

	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to delete job", err)
		return
	}

	h.State.Jobs.Update(func(jobs []models.Job) []models.Job {
		out := make([]models.Job, 0, len(jobs))
		for _, j := range jobs {
			if j.ID != id {
				out = append(out, j)
			}
		}
		return out
	})
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) setJobLoading(fn func(*stores.JobLoading)) {
	h.State.JobLoading.Update(func(l stores.JobLoading) stores.JobLoading {
		fn(&l)
		return l
	})
}

func (h *JobHandler) fail(c *gin.Context, status int, what string, err error) {
	h.Logger.Error(what, zap.Error(err))
	c.JSON(status, dtos.ErrorResponse{Error: what, Message: err.Error()})
}
