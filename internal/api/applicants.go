package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// ApplicantsService calls the /applicants resource.
type ApplicantsService struct {
	client *Client
}

// ApplicantFilter narrows GetFiltered results.
type ApplicantFilter struct {
	Q               string
	DesiredRole     string
	DesiredLocation string
	Limit           int
	Offset          int
}

// GetAll lists every applicant.
func (s *ApplicantsService) GetAll(ctx context.Context) Envelope[[]types.Candidate] {
	return s.fetchList(ctx, "/applicants", nil)
}

// GetByID fetches a single applicant profile.
func (s *ApplicantsService) GetByID(ctx context.Context, applicantID int) Envelope[*types.Candidate] {
	resp, err := s.client.get(ctx, fmt.Sprintf("/applicants/%d", applicantID), nil)
	if err != nil {
		return Fail[*types.Candidate](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[*types.Candidate](statusError(resp))
	}

	var b backendCandidate
	if err := json.Unmarshal(resp.Body, &b); err != nil {
		return Fail[*types.Candidate]("failed to decode applicant: " + err.Error())
	}
	candidate := translateCandidate(b)
	return Ok(&candidate)
}

// GetFiltered lists applicants matching the filter. Empty filter fields are
// sent as empty query values, matching the backend's contract.
func (s *ApplicantsService) GetFiltered(ctx context.Context, filter ApplicantFilter) Envelope[[]types.Candidate] {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	query := url.Values{}
	query.Set("q", filter.Q)
	query.Set("desired_role", filter.DesiredRole)
	query.Set("desired_location", filter.DesiredLocation)
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(filter.Offset))

	return s.fetchList(ctx, "/applicants", query)
}

// GetByIDs batch-fetches applicants; ids are sent as a comma-joined list.
func (s *ApplicantsService) GetByIDs(ctx context.Context, applicantIDs []int) Envelope[[]types.Candidate] {
	parts := make([]string, 0, len(applicantIDs))
	for _, id := range applicantIDs {
		parts = append(parts, strconv.Itoa(id))
	}
	query := url.Values{}
	query.Set("applicant_ids", strings.Join(parts, ","))

	return s.fetchList(ctx, "/applicants/by_ids", query)
}

func (s *ApplicantsService) fetchList(ctx context.Context, path string, query url.Values) Envelope[[]types.Candidate] {
	resp, err := s.client.get(ctx, path, query)
	if err != nil {
		return Fail[[]types.Candidate](err.Error())
	}
	if !isOK(resp.StatusCode) {
		return Fail[[]types.Candidate](statusError(resp))
	}

	var backendCandidates []backendCandidate
	if err := json.Unmarshal(resp.Body, &backendCandidates); err != nil {
		return Fail[[]types.Candidate]("failed to decode applicants: " + err.Error())
	}
	return Ok(translateCandidates(backendCandidates))
}
