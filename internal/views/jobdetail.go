package views

import (
	"context"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/cache"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// JobDetailPage drives the student-facing job detail page: one required job
// fetch, an applied-status probe for the viewing applicant, and a local check
// for a prior assessment of this job.
type JobDetailPage struct {
	pageState

	client      *api.Client
	store       cache.Store
	jobID       int
	applicantID int

	job           *types.Job
	hasAssessment bool
	assessment    *types.AssessmentResult
}

// NewJobDetailPage creates the controller for one job. applicantID selects
// whose applied status to probe; zero skips the probe.
func NewJobDetailPage(client *api.Client, store cache.Store, jobID, applicantID int) *JobDetailPage {
	return &JobDetailPage{
		pageState:   newPageState(),
		client:      client,
		store:       store,
		jobID:       jobID,
		applicantID: applicantID,
	}
}

// Load fetches the job, probes the viewer's applied status, and restores any
// cached assessment for it.
func (p *JobDetailPage) Load(ctx context.Context) {
	p.setLoading()

	resp := p.client.Jobs.GetByID(ctx, p.jobID)
	if !resp.Success || resp.Data == nil {
		msg := resp.Error
		if msg == "" {
			msg = "Failed to load job details."
		}
		p.setFailed(msg)
		p.job = nil
		return
	}
	p.job = resp.Data

	// Secondary probe: a failed lookup reads as not applied.
	if p.applicantID > 0 {
		if one := p.client.Applications.GetOne(ctx, p.applicantID, p.jobID); one.Success && one.Data != nil {
			p.job.IsApplied = true
		}
	}

	var saved types.AssessmentResult
	if found, err := cache.GetJSON(ctx, p.store, cache.KeyAssessment(p.jobID), &saved); err == nil && found {
		p.hasAssessment = true
		p.assessment = &saved
	}

	p.setReady()
}

// Retry restarts the fetch.
func (p *JobDetailPage) Retry(ctx context.Context) {
	p.Load(ctx)
}

// Job returns the loaded job, nil until Load succeeds.
func (p *JobDetailPage) Job() *types.Job {
	return p.job
}

// HasAssessment reports whether a prior assessment exists for this job.
func (p *JobDetailPage) HasAssessment() bool {
	return p.hasAssessment
}

// Assessment returns the cached assessment, nil when none exists.
func (p *JobDetailPage) Assessment() *types.AssessmentResult {
	return p.assessment
}
