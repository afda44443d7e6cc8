package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// validate checks outbound create payloads before any network call is made.
var validate = validator.New()

// JobsService calls the /jobs resource.
type JobsService struct {
	client *Client
}

// JobFilter narrows GetAll results. Zero values are omitted from the query.
type JobFilter struct {
	Q        string
	Role     string
	Location string
	Limit    int
}

// GetAll lists jobs, optionally filtered.
func (s *JobsService) GetAll(ctx context.Context, filter JobFilter) Envelope[[]types.Job] {
	query := url.Values{}
	if filter.Q != "" {
		query.Set("q", filter.Q)
	}
	if filter.Role != "" {
		query.Set("role", filter.Role)
	}
	if filter.Location != "" {
		query.Set("location", filter.Location)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	return s.fetchList(ctx, "/jobs", query)
}

// GetByID fetches a single job.
func (s *JobsService) GetByID(ctx context.Context, id int) Envelope[*types.Job] {
	resp, err := s.client.get(ctx, fmt.Sprintf("/jobs/%d", id), nil)
	if err != nil {
		return Fail[*types.Job](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.Job](statusError(resp))
	}

	var b backendJob
	if err := json.Unmarshal(resp.Body, &b); err != nil {
		return Fail[*types.Job]("failed to decode job: " + err.Error())
	}
	job := translateJob(b)
	return Ok(&job)
}

// GetByIDs batch-fetches jobs by id; ids are sent as a comma-joined list.
func (s *JobsService) GetByIDs(ctx context.Context, ids []int) Envelope[[]types.Job] {
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.Itoa(id))
	}
	query := url.Values{}
	query.Set("job_ids", strings.Join(parts, ","))

	return s.fetchList(ctx, "/jobs/list_by_job_ids", query)
}

// GetByCompany lists a company's jobs.
func (s *JobsService) GetByCompany(ctx context.Context, companyID int, q string, limit int) Envelope[[]types.Job] {
	query := url.Values{}
	query.Set("company_id", strconv.Itoa(companyID))
	if q != "" {
		query.Set("q", q)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	return s.fetchList(ctx, "/jobs/by_company", query)
}

// Create posts a new job listing. The payload is validated locally, then
// translated to the backend wire shape (employment_type defaults to
// "full-time" when unset).
func (s *JobsService) Create(ctx context.Context, job types.JobCreate) Envelope[*types.Job] {
	if err := validate.Struct(job); err != nil {
		return Fail[*types.Job]("invalid job: " + err.Error())
	}

	payload, err := json.Marshal(jobCreateToBackend(job))
	if err != nil {
		return Fail[*types.Job]("failed to encode job: " + err.Error())
	}

	resp, err := s.client.postJSON(ctx, "/jobs", payload)
	if err != nil {
		return Fail[*types.Job](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.Job](statusError(resp))
	}

	var b backendJob
	if err := json.Unmarshal(resp.Body, &b); err != nil {
		return Fail[*types.Job]("failed to decode job: " + err.Error())
	}
	created := translateJob(b)
	return Ok(&created)
}

// RecommendForApplicant fetches the backend-ranked job list for an applicant.
// Falling back to GetAll on failure is the caller's policy, not a client
// retry.
func (s *JobsService) RecommendForApplicant(ctx context.Context, applicantID int) Envelope[[]types.Job] {
	return s.fetchList(ctx, fmt.Sprintf("/jobs/recommend/%d", applicantID), nil)
}

func (s *JobsService) fetchList(ctx context.Context, path string, query url.Values) Envelope[[]types.Job] {
	resp, err := s.client.get(ctx, path, query)
	if err != nil {
		return Fail[[]types.Job](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[[]types.Job](statusError(resp))
	}

	var backendJobs []backendJob
	if err := json.Unmarshal(resp.Body, &backendJobs); err != nil {
		return Fail[[]types.Job]("failed to decode jobs: " + err.Error())
	}
	return Ok(translateJobs(backendJobs))
}
