package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/models"
)

// RequestError is a non-2xx response from the jobs endpoint. Message
// carries the server-supplied message when the body had one.
type RequestError struct {
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	return e.Message
}

// TransportError is a network or decode failure before a usable
// response was obtained.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// JobsClient translates a validated draft into HTTP requests against
// the jobs collection and decodes the persisted Job coming back. It
// holds no local state; every call carries a deadline via its context
// on top of the client-wide timeout.
type JobsClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewJobsClient(baseURL string, timeout time.Duration, logger *zap.Logger) *JobsClient {
	return &JobsClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// CreateJob persists a new posting. Not idempotent: every call creates
// a new identity.
func (c *JobsClient) CreateJob(ctx context.Context, draft models.JobFormState) (*models.Job, error) {
	job, err := c.send(ctx, http.MethodPost, c.baseURL+"/api/jobs", draft)
	if err != nil {
		c.logger.Error("Error creating job", zap.Error(err))
		return nil, err
	}
	return job, nil
}

// UpdateJob targets an existing record. The id rides in the query and
// in the body, since the server addresses jobs by id.
func (c *JobsClient) UpdateJob(ctx context.Context, id string, draft models.JobFormState) (*models.Job, error) {
	body := struct {
		models.JobFormState
		ID string `json:"id"`
	}{JobFormState: draft, ID: id}

	target := c.baseURL + "/api/jobs?id=" + url.QueryEscape(id)
	job, err := c.send(ctx, http.MethodPut, target, body)
	if err != nil {
		c.logger.Error("Error updating job", zap.String("job_id", id), zap.Error(err))
		return nil, err
	}
	return job, nil
}

// ListJobs fetches the full collection.
func (c *JobsClient) ListJobs(ctx context.Context) ([]models.Job, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/jobs", nil)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("Error listing jobs", zap.Error(err))
		return nil, &TransportError{Op: "list jobs", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		reqErr := responseError(resp)
		c.logger.Error("Error listing jobs", zap.Error(reqErr))
		return nil, reqErr
	}

	var jobs []models.Job
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, &TransportError{Op: "decode jobs", Err: err}
	}
	return jobs, nil
}

func (c *JobsClient) send(ctx context.Context, method, target string, body any) (*models.Job, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &TransportError{Op: "encode request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(payload))
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: method + " " + target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, responseError(resp)
	}

	var job models.Job
	if err := json.NewDecoder(resp.Body).Decode(&job); err != nil {
		return nil, &TransportError{Op: "decode job", Err: err}
	}
	return &job, nil
}

// responseError reads the {error,message} body off a failed response,
// falling back to a generic message when the body is unusable.
func responseError(resp *http.Response) *RequestError {
	reqErr := &RequestError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP error! status: %d", resp.StatusCode),
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return reqErr
	}
	var body dtos.ErrorResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return reqErr
	}
	if body.Message != "" {
		reqErr.Message = body.Message
	} else if body.Error != "" {
		reqErr.Message = body.Error
	}
	return reqErr
}
