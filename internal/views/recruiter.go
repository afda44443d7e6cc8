package views

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// RecruiterJobPage drives the recruiter-facing job detail page. The job fetch
// is required; the application counter is secondary and degrades to 0 rather
// than failing the page. Both calls run in parallel and the page leaves the
// loading state only when both have settled.
type RecruiterJobPage struct {
	pageState

	client    *api.Client
	jobID     int
	companyID int

	job              *types.Job
	applicationCount int
}

// NewRecruiterJobPage creates the controller for one of a company's jobs.
func NewRecruiterJobPage(client *api.Client, jobID, companyID int) *RecruiterJobPage {
	return &RecruiterJobPage{
		pageState: newPageState(),
		client:    client,
		jobID:     jobID,
		companyID: companyID,
	}
}

// Load fans out the job fetch and the application count, then merges.
func (p *RecruiterJobPage) Load(ctx context.Context) {
	p.setLoading()

	var jobResp api.Envelope[*types.Job]
	var count int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobResp = p.client.Jobs.GetByID(gctx, p.jobID)
		return nil
	})
	g.Go(func() error {
		// Secondary source: any failure counts as zero applicants.
		resp := p.client.Applications.ListByJobAndCompany(gctx, p.jobID, p.companyID, 0, 0)
		if resp.Success {
			count = len(resp.Data)
		}
		return nil
	})
	_ = g.Wait()

	if !jobResp.Success || jobResp.Data == nil {
		msg := jobResp.Error
		if msg == "" {
			msg = "Failed to load job details."
		}
		p.setFailed(msg)
		p.job = nil
		return
	}

	p.job = jobResp.Data
	p.job.Applicants = count
	p.applicationCount = count
	p.setReady()
}

// Retry restarts the fetch sequence.
func (p *RecruiterJobPage) Retry(ctx context.Context) {
	p.Load(ctx)
}

// Job returns the loaded job, nil until Load succeeds.
func (p *RecruiterJobPage) Job() *types.Job {
	return p.job
}

// ApplicationCount returns the number of applications for this job.
func (p *RecruiterJobPage) ApplicationCount() int {
	return p.applicationCount
}
