package views

import (
	"context"
	"fmt"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// InterviewsPage drives the interview schedule: a filtered list plus the
// schedule and status-update actions.
type InterviewsPage struct {
	pageState

	client *api.Client
	filter api.InterviewFilter

	interviews []types.Interview
}

// NewInterviewsPage creates the controller with a fixed filter.
func NewInterviewsPage(client *api.Client, filter api.InterviewFilter) *InterviewsPage {
	return &InterviewsPage{
		pageState: newPageState(),
		client:    client,
		filter:    filter,
	}
}

// Load fetches the interview list.
func (p *InterviewsPage) Load(ctx context.Context) {
	p.setLoading()

	resp := p.client.Interviews.List(ctx, p.filter)
	if !resp.Success {
		p.setFailed(resp.Error)
		return
	}

	p.interviews = resp.Data
	p.setReady()
}

// Retry restarts the fetch.
func (p *InterviewsPage) Retry(ctx context.Context) {
	p.Load(ctx)
}

// Interviews returns the loaded list.
func (p *InterviewsPage) Interviews() []types.Interview {
	return p.interviews
}

// Schedule creates an interview and prepends it to the loaded list.
func (p *InterviewsPage) Schedule(ctx context.Context, interview types.InterviewCreate) (*types.Interview, error) {
	resp := p.client.Interviews.Create(ctx, interview)
	if !resp.Success {
		return nil, fmt.Errorf("failed to schedule interview: %s", resp.Error)
	}
	p.interviews = append([]types.Interview{*resp.Data}, p.interviews...)
	return resp.Data, nil
}

// UpdateStatus transitions one interview and updates the loaded list in place.
func (p *InterviewsPage) UpdateStatus(ctx context.Context, interviewID int, newStatus string) (*types.Interview, error) {
	resp := p.client.Interviews.UpdateStatus(ctx, interviewID, newStatus)
	if !resp.Success {
		return nil, fmt.Errorf("failed to update interview: %s", resp.Error)
	}
	for i := range p.interviews {
		if p.interviews[i].ID == interviewID {
			p.interviews[i] = *resp.Data
			break
		}
	}
	return resp.Data, nil
}
