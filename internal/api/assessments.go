package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/HanDonoo/recruitment-frontend/internal/schemas"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// AssessmentsService calls the résumé assessment endpoints.
type AssessmentsService struct {
	client *Client
}

// Assess uploads a résumé for scoring against a job. The backend responds
// with an envelope; its payload is checked against the assessment JSON Schema
// before being handed to callers. This is the long round trip behind the
// upload → analyzing → result flow and is not cancellable mid-flight beyond
// ctx.
func (s *AssessmentsService) Assess(ctx context.Context, jobID int, filename string, file io.Reader) Envelope[*types.AssessmentResult] {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return Fail[*types.AssessmentResult]("failed to build upload: " + err.Error())
	}
	if _, err := io.Copy(part, file); err != nil {
		return Fail[*types.AssessmentResult]("failed to read resume file: " + err.Error())
	}
	if err := writer.Close(); err != nil {
		return Fail[*types.AssessmentResult]("failed to finalize upload: " + err.Error())
	}

	resp, err := s.client.do(ctx, http.MethodPost, fmt.Sprintf("/jobs/%d/assess", jobID), nil, &buf, writer.FormDataContentType())
	if err != nil {
		return Fail[*types.AssessmentResult](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.AssessmentResult](statusError(resp))
	}

	// The assess endpoint returns the envelope itself rather than a bare
	// record.
	var envelope Envelope[json.RawMessage]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return Fail[*types.AssessmentResult]("failed to decode assessment response: " + err.Error())
	}
	if !envelope.Success {
		return Fail[*types.AssessmentResult](envelope.Error)
	}

	if err := schemas.ValidateAssessment(envelope.Data); err != nil {
		return Fail[*types.AssessmentResult]("assessment payload failed schema validation: " + err.Error())
	}

	var result types.AssessmentResult
	if err := json.Unmarshal(envelope.Data, &result); err != nil {
		return Fail[*types.AssessmentResult]("failed to decode assessment: " + err.Error())
	}
	return Ok(&result)
}

// Check probes whether an applicant already has an assessment for a job.
// A 404 is the expected "never assessed" answer, not a failure.
func (s *AssessmentsService) Check(ctx context.Context, applicantID, jobID int) Envelope[*types.AssessmentCheck] {
	resp, err := s.client.get(ctx, "/job-assessments/latest", latestQuery(applicantID, jobID))
	if err != nil {
		return Fail[*types.AssessmentCheck](err.Error())
	}
	if resp.StatusCode == http.StatusNotFound {
		return Ok(&types.AssessmentCheck{HasAssessment: false})
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.AssessmentCheck](statusError(resp))
	}

	var result types.AssessmentResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return Fail[*types.AssessmentCheck]("failed to decode assessment: " + err.Error())
	}
	return Ok(&types.AssessmentCheck{HasAssessment: true, Assessment: &result})
}

// GetLatest fetches the most recent assessment for an applicant+job pair.
// Unlike Check, a 404 here is a failure: callers use GetLatest only after a
// positive existence probe.
func (s *AssessmentsService) GetLatest(ctx context.Context, applicantID, jobID int) Envelope[*types.AssessmentResult] {
	resp, err := s.client.get(ctx, "/job-assessments/latest", latestQuery(applicantID, jobID))
	if err != nil {
		return Fail[*types.AssessmentResult](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.AssessmentResult](statusError(resp))
	}

	var result types.AssessmentResult
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return Fail[*types.AssessmentResult]("failed to decode assessment: " + err.Error())
	}
	return Ok(&result)
}

// History lists a candidate's past assessments across jobs.
func (s *AssessmentsService) History(ctx context.Context, candidateID int) Envelope[[]types.AssessmentResult] {
	resp, err := s.client.get(ctx, fmt.Sprintf("/candidates/%d/assessments", candidateID), nil)
	if err != nil {
		return Fail[[]types.AssessmentResult](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[[]types.AssessmentResult](statusError(resp))
	}

	var envelope Envelope[[]types.AssessmentResult]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return Fail[[]types.AssessmentResult]("failed to decode assessment history: " + err.Error())
	}
	if !envelope.Success {
		return Fail[[]types.AssessmentResult](envelope.Error)
	}
	if envelope.Data == nil {
		envelope.Data = []types.AssessmentResult{}
	}
	return Ok(envelope.Data)
}

func latestQuery(applicantID, jobID int) url.Values {
	query := url.Values{}
	query.Set("applicant_id", strconv.Itoa(applicantID))
	query.Set("job_id", strconv.Itoa(jobID))
	return query
}
