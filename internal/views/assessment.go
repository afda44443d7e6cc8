package views

import (
	"context"
	"fmt"
	"io"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/cache"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// Step is a stage of the assessment submission flow.
type Step string

// Flow steps. A failed scoring call returns the flow to StepUpload; the only
// path to StepResult is a successful backend round trip.
const (
	StepUpload    Step = "upload"
	StepAnalyzing Step = "analyzing"
	StepResult    Step = "result"
)

// AssessmentFlow is the upload → analyzing → result state machine behind the
// CV-matching modal. The whole flow is driven by one long-running network
// call; it is not cancellable mid-flight except through ctx.
type AssessmentFlow struct {
	client *api.Client
	store  cache.Store
	jobID  int

	step   Step
	result *types.AssessmentResult
}

// NewAssessmentFlow creates the flow for one job.
func NewAssessmentFlow(client *api.Client, store cache.Store, jobID int) *AssessmentFlow {
	return &AssessmentFlow{
		client: client,
		store:  store,
		jobID:  jobID,
		step:   StepUpload,
	}
}

// Step returns the flow's current stage.
func (f *AssessmentFlow) Step() Step {
	return f.step
}

// Result returns the assessment, nil until the flow reaches StepResult.
func (f *AssessmentFlow) Result() *types.AssessmentResult {
	return f.result
}

// Start submits the selected résumé for scoring. It requires a selected file
// and an idle flow; on success the flow lands on StepResult and the result is
// cached best-effort under assessment_{jobId}. On failure the flow resets to
// StepUpload and the error is returned once for the caller to surface.
func (f *AssessmentFlow) Start(ctx context.Context, filename string, file io.Reader) error {
	if f.step == StepAnalyzing {
		return fmt.Errorf("assessment already in progress")
	}
	if filename == "" || file == nil {
		return fmt.Errorf("no resume file selected")
	}

	f.step = StepAnalyzing
	f.result = nil

	resp := f.client.Assessments.Assess(ctx, f.jobID, filename, file)
	if !resp.Success {
		f.step = StepUpload
		return fmt.Errorf("assessment failed: %s", resp.Error)
	}

	f.result = resp.Data
	f.step = StepResult

	_ = cache.SetJSON(ctx, f.store, cache.KeyAssessment(f.jobID), resp.Data)
	return nil
}

// Reset returns the flow to the upload step, discarding any result.
func (f *AssessmentFlow) Reset() {
	f.step = StepUpload
	f.result = nil
}
