package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// ApplicationsService calls the /applications resource.
type ApplicationsService struct {
	client *Client
}

type applicationCreate struct {
	ApplicantID int `json:"applicant_id"`
	JobID       int `json:"job_id"`
}

// Apply creates an application linking an applicant to a job. A backend
// validation failure (e.g. duplicate application) surfaces the server's
// error text verbatim.
func (s *ApplicationsService) Apply(ctx context.Context, applicantID, jobID int) Envelope[*types.Application] {
	payload, err := json.Marshal(applicationCreate{ApplicantID: applicantID, JobID: jobID})
	if err != nil {
		return Fail[*types.Application]("failed to encode application: " + err.Error())
	}

	resp, err := s.client.postJSON(ctx, "/applications", payload)
	if err != nil {
		return Fail[*types.Application](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.Application](statusError(resp))
	}

	var app types.Application
	if err := json.Unmarshal(resp.Body, &app); err != nil {
		return Fail[*types.Application]("failed to decode application: " + err.Error())
	}
	return Ok(&app)
}

// GetOne fetches the application for an applicant+job pair. A 404 means "not
// applied yet" and resolves to a successful envelope with nil data; callers
// must distinguish that from a failed request.
func (s *ApplicationsService) GetOne(ctx context.Context, applicantID, jobID int) Envelope[*types.Application] {
	query := url.Values{}
	query.Set("applicant_id", strconv.Itoa(applicantID))
	query.Set("job_id", strconv.Itoa(jobID))

	resp, err := s.client.get(ctx, "/applications/one", query)
	if err != nil {
		return Fail[*types.Application](err.Error())
	}
	if resp.StatusCode == http.StatusNotFound {
		return Ok[*types.Application](nil)
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.Application](statusError(resp))
	}

	var app types.Application
	if err := json.Unmarshal(resp.Body, &app); err != nil {
		return Fail[*types.Application]("failed to decode application: " + err.Error())
	}
	return Ok(&app)
}

// ListByApplicant lists an applicant's applications. A 404 resolves to an
// empty list.
func (s *ApplicationsService) ListByApplicant(ctx context.Context, applicantID, limit, offset int) Envelope[[]types.Application] {
	if limit <= 0 {
		limit = 50
	}
	query := url.Values{}
	query.Set("applicant_id", strconv.Itoa(applicantID))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	return s.fetchList(ctx, "/applications", query)
}

// List lists applications across all applicants (analytics use). A 404
// resolves to an empty list.
func (s *ApplicationsService) List(ctx context.Context, limit, offset int) Envelope[[]types.Application] {
	if limit <= 0 {
		limit = 50
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	return s.fetchList(ctx, "/applications", query)
}

// ListByJobAndCompany lists the applications for one of a company's jobs.
// A 404 resolves to an empty list.
func (s *ApplicationsService) ListByJobAndCompany(ctx context.Context, jobID, companyID, limit, offset int) Envelope[[]types.Application] {
	if limit <= 0 {
		limit = 50
	}
	query := url.Values{}
	query.Set("job_id", strconv.Itoa(jobID))
	query.Set("company_id", strconv.Itoa(companyID))
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	return s.fetchList(ctx, "/applications/by_job_and_company", query)
}

func (s *ApplicationsService) fetchList(ctx context.Context, path string, query url.Values) Envelope[[]types.Application] {
	resp, err := s.client.get(ctx, path, query)
	if err != nil {
		return Fail[[]types.Application](err.Error())
	}
	if resp.StatusCode == http.StatusNotFound {
		return Ok([]types.Application{})
	}
	if !isOK(resp.StatusCode) {
		return Fail[[]types.Application](statusError(resp))
	}

	var apps []types.Application
	if err := json.Unmarshal(resp.Body, &apps); err != nil {
		return Fail[[]types.Application]("failed to decode applications: " + err.Error())
	}
	return Ok(apps)
}
