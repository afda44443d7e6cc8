package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const assessmentJSON = `{
	"jobId": 5,
	"applicantId": 1,
	"summary": "Strong frontend profile with room to grow on backend depth.",
	"score": {
		"overall": 82,
		"skills_match": 88,
		"experience_depth": 74,
		"education_match": 80,
		"potential_fit": 85
	},
	"assessment_highlights": ["5 years of React", "Led a design-system migration"],
	"recommendations_for_candidate": ["Add measurable outcomes to recent roles"],
	"createdAt": "2025-06-01T10:00:00Z"
}`

func TestAssessments_Assess(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/jobs/5/assess", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "resume.pdf", header.Filename)
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake pdf bytes", string(body))

		_, _ = w.Write([]byte(`{"success": true, "data": ` + assessmentJSON + `}`))
	}))

	resp := client.Assessments.Assess(context.Background(), 5, "resume.pdf", strings.NewReader("fake pdf bytes"))
	require.True(t, resp.Success, resp.Error)
	require.NotNil(t, resp.Data)

	assert.Equal(t, 82, resp.Data.Score.Overall)
	assert.Equal(t, 88, resp.Data.Score.SkillsMatch)
	assert.Len(t, resp.Data.AssessmentHighlights, 2)
}

func TestAssessments_Assess_BackendEnvelopeFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "error": "unsupported file type"}`))
	}))

	resp := client.Assessments.Assess(context.Background(), 5, "resume.txt", strings.NewReader("x"))
	assert.False(t, resp.Success)
	assert.Equal(t, "unsupported file type", resp.Error)
}

func TestAssessments_Assess_RejectsSchemaViolations(t *testing.T) {
	// Missing the required summary and score fields.
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": {"jobId": 5, "applicantId": 1}}`))
	}))

	resp := client.Assessments.Assess(context.Background(), 5, "resume.pdf", strings.NewReader("x"))
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "schema validation")
}

func TestAssessments_Check_404MeansNeverAssessed(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/job-assessments/latest", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("applicant_id"))
		assert.Equal(t, "5", r.URL.Query().Get("job_id"))
		w.WriteHeader(http.StatusNotFound)
	}))

	resp := client.Assessments.Check(context.Background(), 1, 5)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.False(t, resp.Data.HasAssessment)
	assert.Nil(t, resp.Data.Assessment)
}

func TestAssessments_Check_Found(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(assessmentJSON))
	}))

	resp := client.Assessments.Check(context.Background(), 1, 5)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.True(t, resp.Data.HasAssessment)
	require.NotNil(t, resp.Data.Assessment)
	assert.Equal(t, 82, resp.Data.Assessment.Score.Overall)
}

func TestAssessments_GetLatest_404IsFailure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	resp := client.Assessments.GetLatest(context.Background(), 1, 5)
	assert.False(t, resp.Success)
	assert.Equal(t, "HTTP error! status: 404", resp.Error)
}

func TestAssessments_History(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/1/assessments", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "data": [` + assessmentJSON + `]}`))
	}))

	resp := client.Assessments.History(context.Background(), 1)
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 5, resp.Data[0].JobID)
}

func TestAssessments_History_NullDataIsEmptySlice(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": null}`))
	}))

	resp := client.Assessments.History(context.Background(), 1)
	require.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
}
