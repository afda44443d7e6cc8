package views

import (
	"context"
	"sort"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/cache"
	"github.com/HanDonoo/recruitment-frontend/internal/ranking"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// ApplicationsPage drives the student's application tracker. The backend is
// authoritative; the cached records are used only when the network path
// fails, and are overwritten after every successful backend read.
type ApplicationsPage struct {
	pageState

	client      *api.Client
	store       cache.Store
	applicantID int

	rows         []types.ApplicationRow
	fromFallback bool
}

// NewApplicationsPage creates the controller for one applicant.
func NewApplicationsPage(client *api.Client, store cache.Store, applicantID int) *ApplicationsPage {
	return &ApplicationsPage{
		pageState:   newPageState(),
		client:      client,
		store:       store,
		applicantID: applicantID,
	}
}

// Load fetches the applicant's applications, then the jobs for the ids found
// (strictly ordered by the data dependency), and merges them into rows sorted
// newest first.
func (p *ApplicationsPage) Load(ctx context.Context) {
	p.setLoading()
	p.fromFallback = false

	appsResp := p.client.Applications.ListByApplicant(ctx, p.applicantID, 0, 0)
	if !appsResp.Success {
		p.loadFromCache(ctx, appsResp.Error)
		return
	}

	apps := appsResp.Data
	if len(apps) == 0 {
		p.rows = []types.ApplicationRow{}
		p.setReady()
		return
	}

	ids := make([]int, 0, len(apps))
	for _, app := range apps {
		ids = append(ids, app.JobID)
	}

	jobsResp := p.client.Jobs.GetByIDs(ctx, ids)
	if !jobsResp.Success {
		p.loadFromCache(ctx, jobsResp.Error)
		return
	}
	jobByID := make(map[int]types.Job, len(jobsResp.Data))
	for _, job := range jobsResp.Data {
		jobByID[job.ID] = job
	}

	rows := make([]types.ApplicationRow, 0, len(apps))
	records := make([]types.ApplicationRecord, 0, len(apps))
	for _, app := range apps {
		job := jobByID[app.JobID]
		row := types.ApplicationRow{
			JobID:     app.JobID,
			JobTitle:  job.Title,
			Company:   job.Company,
			Status:    app.Status,
			AppliedAt: app.CreatedAt,
			Progress:  ranking.ProgressPercent(app.Status),
		}
		rows = append(rows, row)
		records = append(records, types.ApplicationRecord{
			JobID:     row.JobID,
			JobTitle:  row.JobTitle,
			Company:   row.Company,
			AppliedAt: row.AppliedAt,
			Status:    row.Status,
		})
	}
	sortRowsNewestFirst(rows)

	// Backend wins: refresh the fallback records on every successful read.
	_ = cache.SetJSON(ctx, p.store, cache.KeyApplications, records)

	p.rows = rows
	p.setReady()
}

// Retry restarts the fetch sequence.
func (p *ApplicationsPage) Retry(ctx context.Context) {
	p.Load(ctx)
}

// Rows returns the merged application rows, newest first.
func (p *ApplicationsPage) Rows() []types.ApplicationRow {
	return p.rows
}

// FromFallback reports whether the current rows came from the local cache
// rather than the backend.
func (p *ApplicationsPage) FromFallback() bool {
	return p.fromFallback
}

// loadFromCache renders the best-effort cached records after a network
// failure. With no cached records either, the page fails with the original
// network error.
func (p *ApplicationsPage) loadFromCache(ctx context.Context, networkErr string) {
	var records []types.ApplicationRecord
	found, err := cache.GetJSON(ctx, p.store, cache.KeyApplications, &records)
	if err != nil || !found {
		if networkErr == "" {
			networkErr = "Failed to load applications."
		}
		p.setFailed(networkErr)
		return
	}

	rows := make([]types.ApplicationRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, types.ApplicationRow{
			JobID:     record.JobID,
			JobTitle:  record.JobTitle,
			Company:   record.Company,
			Status:    record.Status,
			AppliedAt: record.AppliedAt,
			Progress:  ranking.ProgressPercent(record.Status),
		})
	}
	sortRowsNewestFirst(rows)

	p.rows = rows
	p.fromFallback = true
	p.setReady()
}

// sortRowsNewestFirst orders by the RFC 3339 applied-at string, which sorts
// lexicographically.
func sortRowsNewestFirst(rows []types.ApplicationRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AppliedAt > rows[j].AppliedAt
	})
}
