package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amirulafiq/kerjago/internal/models"
)

func testDraft() models.JobFormState {
	return models.JobFormState{
		Title:              "Barista",
		Category:           "cafe_restaurant",
		Description:        "Weekend shifts",
		PayRateAmount:      15,
		PayRateDescription: "per_hour",
		VisibilityDuration: "30_days",
	}
}

func TestCreateJob(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/jobs", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft models.JobFormState
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))

		job := models.Job{
			JobFormState: draft,
			ID:           "abc-123",
			CreatedAt:    time.Now().UTC(),
			UpdatedAt:    time.Now().UTC(),
			Status:       models.JobStatusDraft,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(job)
	}))
	defer srv.Close()

	client := NewJobsClient(srv.URL, 5*time.Second, zap.NewNop())
	job, err := client.CreateJob(context.Background(), testDraft())
	require.NoError(t, err)

	assert.Equal(t, "abc-123", job.ID)
	assert.Equal(t, "Barista", job.Title)
	assert.Equal(t, models.JobStatusDraft, job.Status)
	assert.Nil(t, job.Stats)
}

func TestUpdateJobCarriesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "job-9", r.URL.Query().Get("id"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// the id rides in the body too
		require.Equal(t, "job-9", body["id"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Job{ID: "job-9"})
	}))
	defer srv.Close()

	client := NewJobsClient(srv.URL, 5*time.Second, zap.NewNop())
	job, err := client.UpdateJob(context.Background(), "job-9", testDraft())
	require.NoError(t, err)
	assert.Equal(t, "job-9", job.ID)
}

func TestRequestErrorUsesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to create job","message":"boom"}`))
	}))
	defer srv.Close()

	client := NewJobsClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := client.CreateJob(context.Background(), testDraft())

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, "boom", reqErr.Message)
}

func TestRequestErrorFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	client := NewJobsClient(srv.URL, 5*time.Second, zap.NewNop())
	_, err := client.CreateJob(context.Background(), testDraft())

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadGateway, reqErr.StatusCode)
	assert.Equal(t, "HTTP error! status: 502", reqErr.Message)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewJobsClient(srv.URL, time.Second, zap.NewNop())
	_, err := client.CreateJob(context.Background(), testDraft())

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestListJobs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Job{{ID: "a"}, {ID: "b"}})
	}))
	defer srv.Close()

	client := NewJobsClient(srv.URL, 5*time.Second, zap.NewNop())
	jobs, err := client.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "a", jobs[0].ID)
}
