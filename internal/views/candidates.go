package views

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/ranking"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// assessmentFanout bounds the per-candidate score lookups.
const assessmentFanout = 4

// CandidateBoardPage drives the recruiter's candidate list for one job:
// applications joined with applicant profiles and each candidate's latest
// assessment score, ranked best-first.
type CandidateBoardPage struct {
	pageState

	client    *api.Client
	jobID     int
	companyID int

	candidates []types.CandidateWithScore
}

// NewCandidateBoardPage creates the controller for one of a company's jobs.
func NewCandidateBoardPage(client *api.Client, jobID, companyID int) *CandidateBoardPage {
	return &CandidateBoardPage{
		pageState: newPageState(),
		client:    client,
		jobID:     jobID,
		companyID: companyID,
	}
}

// Load builds the board. Applications and profiles are required; score
// lookups are secondary, so a candidate whose assessment probe fails simply
// stays unscored.
func (p *CandidateBoardPage) Load(ctx context.Context) {
	p.setLoading()
	p.candidates = nil

	appsResp := p.client.Applications.ListByJobAndCompany(ctx, p.jobID, p.companyID, 0, 0)
	if !appsResp.Success {
		p.setFailed(appsResp.Error)
		return
	}
	if len(appsResp.Data) == 0 {
		p.candidates = []types.CandidateWithScore{}
		p.setReady()
		return
	}

	ids := make([]int, 0, len(appsResp.Data))
	appByApplicant := make(map[int]types.Application, len(appsResp.Data))
	for _, app := range appsResp.Data {
		ids = append(ids, app.ApplicantID)
		appByApplicant[app.ApplicantID] = app
	}

	// Dependent call: profiles for the applicant ids found above.
	candidatesResp := p.client.Applicants.GetByIDs(ctx, ids)
	if !candidatesResp.Success {
		p.setFailed(candidatesResp.Error)
		return
	}

	rows := make([]types.CandidateWithScore, len(candidatesResp.Data))
	for i, candidate := range candidatesResp.Data {
		app := appByApplicant[candidate.ID]
		rows[i] = types.CandidateWithScore{
			Candidate:     candidate,
			ApplicationID: app.ID,
			Status:        app.Status,
			AppliedAt:     app.CreatedAt,
		}
	}

	// Score lookups fan out with a bound; rows are index-addressed so no
	// two goroutines share a row.
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(assessmentFanout)
	for i := range rows {
		g.Go(func() error {
			check := p.client.Assessments.Check(gctx, rows[i].ID, p.jobID)
			if check.Success && check.Data != nil && check.Data.HasAssessment {
				score := check.Data.Assessment.Score.Overall
				mu.Lock()
				rows[i].Score = &score
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	p.candidates = ranking.RankCandidates(rows)
	p.setReady()
}

// Retry restarts the fetch sequence.
func (p *CandidateBoardPage) Retry(ctx context.Context) {
	p.Load(ctx)
}

// Candidates returns every candidate, ranked best-first.
func (p *CandidateBoardPage) Candidates() []types.CandidateWithScore {
	return p.candidates
}

// Top returns the leaderboard: at most five candidates, highest score first.
func (p *CandidateBoardPage) Top() []types.CandidateWithScore {
	return ranking.TopCandidates(p.candidates, ranking.DefaultTopN)
}
