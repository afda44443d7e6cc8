package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// InterviewsService calls the /interviews resource.
type InterviewsService struct {
	client *Client
}

// InterviewFilter narrows List results. Zero values are omitted.
type InterviewFilter struct {
	ApplicantID int
	JobID       int
	CompanyID   int
	Limit       int
	Offset      int
}

// Create schedules an interview. The payload is validated locally before the
// call; an unset status defaults to Pending server-side.
func (s *InterviewsService) Create(ctx context.Context, interview types.InterviewCreate) Envelope[*types.Interview] {
	if err := validate.Struct(interview); err != nil {
		return Fail[*types.Interview]("invalid interview: " + err.Error())
	}
	if interview.Status != "" && !types.ValidInterviewStatus(interview.Status) {
		return Fail[*types.Interview](fmt.Sprintf("invalid interview: unknown status %q", interview.Status))
	}

	payload, err := json.Marshal(interview)
	if err != nil {
		return Fail[*types.Interview]("failed to encode interview: " + err.Error())
	}

	resp, err := s.client.postJSON(ctx, "/interviews", payload)
	if err != nil {
		return Fail[*types.Interview](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.Interview](statusError(resp))
	}

	var created types.Interview
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return Fail[*types.Interview]("failed to decode interview: " + err.Error())
	}
	return Ok(&created)
}

// List fetches interviews matching the filter.
func (s *InterviewsService) List(ctx context.Context, filter InterviewFilter) Envelope[[]types.Interview] {
	query := url.Values{}
	if filter.ApplicantID > 0 {
		query.Set("applicant_id", strconv.Itoa(filter.ApplicantID))
	}
	if filter.JobID > 0 {
		query.Set("job_id", strconv.Itoa(filter.JobID))
	}
	if filter.CompanyID > 0 {
		query.Set("company_id", strconv.Itoa(filter.CompanyID))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		query.Set("offset", strconv.Itoa(filter.Offset))
	}

	resp, err := s.client.get(ctx, "/interviews", query)
	if err != nil {
		return Fail[[]types.Interview](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[[]types.Interview](statusError(resp))
	}

	var interviews []types.Interview
	if err := json.Unmarshal(resp.Body, &interviews); err != nil {
		return Fail[[]types.Interview]("failed to decode interviews: " + err.Error())
	}
	if interviews == nil {
		interviews = []types.Interview{}
	}
	return Ok(interviews)
}

// UpdateStatus transitions an interview to a new status.
func (s *InterviewsService) UpdateStatus(ctx context.Context, interviewID int, newStatus string) Envelope[*types.Interview] {
	if !types.ValidInterviewStatus(newStatus) {
		return Fail[*types.Interview](fmt.Sprintf("unknown interview status %q", newStatus))
	}

	query := url.Values{}
	query.Set("new_status", newStatus)

	resp, err := s.client.do(ctx, http.MethodPatch, fmt.Sprintf("/interviews/%d/status", interviewID), query, nil, "")
	if err != nil {
		return Fail[*types.Interview](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.Interview](statusError(resp))
	}

	var updated types.Interview
	if err := json.Unmarshal(resp.Body, &updated); err != nil {
		return Fail[*types.Interview]("failed to decode interview: " + err.Error())
	}
	return Ok(&updated)
}
