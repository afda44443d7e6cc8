package views

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// organizerFetchLimit bounds each dashboard source fetch.
const organizerFetchLimit = 500

// OrganizerPage drives the analytics dashboard. The three backend sources are
// fetched in parallel and are all required: any failure fails the page. The
// four dashboard views (totals, monthly trend, status distribution, top
// companies) are derived client-side from the fetched lists.
type OrganizerPage struct {
	pageState

	client *api.Client

	stats        types.Stats
	trend        []types.TrendPoint
	statusCounts map[string]int
	topCompanies []types.CompanyCount
}

// NewOrganizerPage creates the dashboard controller.
func NewOrganizerPage(client *api.Client) *OrganizerPage {
	return &OrganizerPage{
		pageState: newPageState(),
		client:    client,
	}
}

// Load fans out the three source fetches and derives the dashboard views.
func (p *OrganizerPage) Load(ctx context.Context) {
	p.setLoading()

	var jobs []types.Job
	var applicants []types.Candidate
	var applications []types.Application

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp := p.client.Jobs.GetAll(gctx, api.JobFilter{Limit: organizerFetchLimit})
		if !resp.Success {
			return &loadError{resp.Error}
		}
		jobs = resp.Data
		return nil
	})
	g.Go(func() error {
		resp := p.client.Applicants.GetFiltered(gctx, api.ApplicantFilter{Limit: organizerFetchLimit})
		if !resp.Success {
			return &loadError{resp.Error}
		}
		applicants = resp.Data
		return nil
	})
	g.Go(func() error {
		resp := p.client.Applications.List(gctx, organizerFetchLimit, 0)
		if !resp.Success {
			return &loadError{resp.Error}
		}
		applications = resp.Data
		return nil
	})
	if err := g.Wait(); err != nil {
		p.setFailed(err.Error())
		return
	}

	p.stats = types.Stats{Jobs: len(jobs), Applicants: len(applicants), Applications: len(applications)}
	p.trend = deriveTrend(applications)
	p.statusCounts = deriveStatusCounts(applications)
	p.topCompanies = deriveTopCompanies(jobs, 5)
	p.setReady()
}

// Retry restarts the fetch sequence.
func (p *OrganizerPage) Retry(ctx context.Context) {
	p.Load(ctx)
}

// Stats returns the headline totals.
func (p *OrganizerPage) Stats() types.Stats {
	return p.stats
}

// Trend returns monthly application volume, oldest month first.
func (p *OrganizerPage) Trend() []types.TrendPoint {
	return p.trend
}

// StatusCounts returns the application status distribution.
func (p *OrganizerPage) StatusCounts() map[string]int {
	return p.statusCounts
}

// TopCompanies returns the companies with the most listings, largest first.
func (p *OrganizerPage) TopCompanies() []types.CompanyCount {
	return p.topCompanies
}

type loadError struct {
	msg string
}

func (e *loadError) Error() string {
	if e.msg == "" {
		return "Failed to load dashboard data."
	}
	return e.msg
}

func deriveTrend(applications []types.Application) []types.TrendPoint {
	counts := make(map[string]int)
	for _, app := range applications {
		if len(app.CreatedAt) >= 7 {
			counts[app.CreatedAt[:7]]++
		}
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	trend := make([]types.TrendPoint, 0, len(months))
	for _, month := range months {
		trend = append(trend, types.TrendPoint{Month: month, Count: counts[month]})
	}
	return trend
}

func deriveStatusCounts(applications []types.Application) map[string]int {
	counts := make(map[string]int)
	for _, app := range applications {
		counts[app.Status]++
	}
	return counts
}

func deriveTopCompanies(jobs []types.Job, n int) []types.CompanyCount {
	counts := make(map[string]int)
	for _, job := range jobs {
		if job.Company != "" {
			counts[job.Company]++
		}
	}

	companies := make([]types.CompanyCount, 0, len(counts))
	for company, count := range counts {
		companies = append(companies, types.CompanyCount{Company: company, Count: count})
	}
	sort.Slice(companies, func(i, j int) bool {
		if companies[i].Count != companies[j].Count {
			return companies[i].Count > companies[j].Count
		}
		return companies[i].Company < companies[j].Company
	})

	if len(companies) > n {
		companies = companies[:n]
	}
	return companies
}
