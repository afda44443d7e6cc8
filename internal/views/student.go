package views

import (
	"context"
	"fmt"
	"time"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/cache"
	"github.com/HanDonoo/recruitment-frontend/internal/ranking"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// recommendFallbackLimit bounds the list-all fallback when the
// recommendation call fails.
const recommendFallbackLimit = 50

// StudentPage drives the student portal landing page: personalized job
// recommendations with live search, apply and assessment entry points.
type StudentPage struct {
	pageState

	client      *api.Client
	store       cache.Store
	applicantID int

	jobs             []types.Job
	applicationCount int
}

// NewStudentPage creates the controller for one applicant.
func NewStudentPage(client *api.Client, store cache.Store, applicantID int) *StudentPage {
	return &StudentPage{
		pageState:   newPageState(),
		client:      client,
		store:       store,
		applicantID: applicantID,
	}
}

// Load fetches the recommended job list. When the recommendation call fails
// the page silently falls back to the unranked list; only both failing
// surfaces an error to the user.
func (p *StudentPage) Load(ctx context.Context) {
	p.setLoading()

	resp := p.client.Jobs.RecommendForApplicant(ctx, p.applicantID)
	if !resp.Success {
		resp = p.client.Jobs.GetAll(ctx, api.JobFilter{Limit: recommendFallbackLimit})
	}
	if !resp.Success {
		p.setFailed("Failed to load jobs. Please try again later.")
		return
	}

	p.jobs = resp.Data
	p.markAppliedFromCache(ctx)
	p.setReady()
}

// Retry restarts the fetch sequence.
func (p *StudentPage) Retry(ctx context.Context) {
	p.Load(ctx)
}

// Jobs returns the loaded job list.
func (p *StudentPage) Jobs() []types.Job {
	return p.jobs
}

// Search filters the loaded jobs by a live search term.
func (p *StudentPage) Search(term string) []types.Job {
	return ranking.FilterJobs(p.jobs, term)
}

// ApplicationCount returns the number of applications recorded this session.
func (p *StudentPage) ApplicationCount() int {
	return p.applicationCount
}

// AvgMatchScore returns the rounded mean of the loaded jobs' match scores.
// Jobs without a score count as 0; this is a render-boundary coercion only.
func (p *StudentPage) AvgMatchScore() int {
	if len(p.jobs) == 0 {
		return 0
	}
	sum := 0
	for _, job := range p.jobs {
		if job.MatchScore != nil {
			sum += *job.MatchScore
		}
	}
	return (sum + len(p.jobs)/2) / len(p.jobs)
}

// Apply submits an application for jobID. On success the job is flagged
// applied in the in-memory list, the counter increments, and a record is
// written to the fallback cache (best-effort; cache write failures do not
// fail the apply).
func (p *StudentPage) Apply(ctx context.Context, jobID int) error {
	var job *types.Job
	for i := range p.jobs {
		if p.jobs[i].ID == jobID {
			job = &p.jobs[i]
			break
		}
	}
	if job == nil {
		return fmt.Errorf("job %d is not in the loaded list", jobID)
	}

	resp := p.client.Applications.Apply(ctx, p.applicantID, jobID)
	if !resp.Success {
		return fmt.Errorf("failed to apply: %s", resp.Error)
	}

	record := types.ApplicationRecord{
		JobID:     job.ID,
		JobTitle:  job.Title,
		Company:   job.Company,
		AppliedAt: time.Now().UTC().Format(time.RFC3339),
		Status:    types.StatusApplied,
	}
	if resp.Data != nil && resp.Data.CreatedAt != "" {
		record.AppliedAt = resp.Data.CreatedAt
	}
	p.saveApplicationRecord(ctx, record)

	job.IsApplied = true
	p.applicationCount++
	return nil
}

// SetMatchScore updates one job's match score after an assessment completes.
func (p *StudentPage) SetMatchScore(jobID, score int) {
	for i := range p.jobs {
		if p.jobs[i].ID == jobID {
			p.jobs[i].MatchScore = &score
			return
		}
	}
}

// markAppliedFromCache restores IsApplied flags and the counter from cached
// application records.
func (p *StudentPage) markAppliedFromCache(ctx context.Context) {
	var records []types.ApplicationRecord
	if found, err := cache.GetJSON(ctx, p.store, cache.KeyApplications, &records); err != nil || !found {
		return
	}

	p.applicationCount = len(records)
	applied := make(map[int]bool, len(records))
	for _, record := range records {
		applied[record.JobID] = true
	}
	for i := range p.jobs {
		if applied[p.jobs[i].ID] {
			p.jobs[i].IsApplied = true
		}
	}
}

// saveApplicationRecord appends the record to the cached list and writes the
// per-job key. Cache errors degrade silently; the backend already accepted
// the application.
func (p *StudentPage) saveApplicationRecord(ctx context.Context, record types.ApplicationRecord) {
	_ = cache.SetJSON(ctx, p.store, cache.KeyApplication(record.JobID), record)

	var records []types.ApplicationRecord
	_, _ = cache.GetJSON(ctx, p.store, cache.KeyApplications, &records)
	records = append(records, record)
	_ = cache.SetJSON(ctx, p.store, cache.KeyApplications, records)
}
