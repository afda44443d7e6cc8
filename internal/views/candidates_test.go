package views

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// candidateBoardBackend fakes the three sources behind the board: the job's
// applications, the applicant profiles, and per-candidate latest assessments.
func candidateBoardBackend(t *testing.T, scores map[int]int) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/by_job_and_company", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 10, "applicant_id": 1, "job_id": 5, "status": "applied", "created_at": "2025-06-01T10:00:00Z"},
			{"id": 11, "applicant_id": 2, "job_id": 5, "status": "under_review", "created_at": "2025-06-02T10:00:00Z"},
			{"id": 12, "applicant_id": 3, "job_id": 5, "status": "applied", "created_at": "2025-06-03T10:00:00Z"}
		]`))
	})
	mux.HandleFunc("/applicants/by_ids", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1,2,3", r.URL.Query().Get("applicant_ids"))
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "Ada", "skill_tags": "React"},
			{"id": 2, "name": "Alan", "skill_tags": "Go"},
			{"id": 3, "name": "Grace", "skill_tags": "SQL"}
		]`))
	})
	mux.HandleFunc("/job-assessments/latest", func(w http.ResponseWriter, r *http.Request) {
		applicantID, err := strconv.Atoi(r.URL.Query().Get("applicant_id"))
		require.NoError(t, err)
		score, ok := scores[applicantID]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprintf(w, `{"jobId": 5, "applicantId": %d, "summary": "ok",
			"score": {"overall": %d}}`, applicantID, score)
	})
	return mux
}

func TestCandidateBoardPage_Load_RanksByScore(t *testing.T) {
	scores := map[int]int{1: 78, 3: 91}
	page := NewCandidateBoardPage(newTestClient(t, candidateBoardBackend(t, scores)), 5, 7)
	page.Load(context.Background())

	require.Equal(t, StateReady, page.State())
	rows := page.Candidates()
	require.Len(t, rows, 3)

	// Scored candidates first, best score on top; unscored sink.
	assert.Equal(t, "Grace", rows[0].Name)
	assert.Equal(t, "Ada", rows[1].Name)
	assert.Equal(t, "Alan", rows[2].Name)
	assert.Nil(t, rows[2].Score)

	// Rows keep their application join fields.
	assert.Equal(t, 12, rows[0].ApplicationID)
	assert.Equal(t, "applied", rows[0].Status)
	assert.Equal(t, "2025-06-03T10:00:00Z", rows[0].AppliedAt)
}

func TestCandidateBoardPage_Top_CapsAtFive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/by_job_and_company", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 10, "applicant_id": 1, "job_id": 5, "status": "applied"},
			{"id": 11, "applicant_id": 2, "job_id": 5, "status": "applied"},
			{"id": 12, "applicant_id": 3, "job_id": 5, "status": "applied"},
			{"id": 13, "applicant_id": 4, "job_id": 5, "status": "applied"},
			{"id": 14, "applicant_id": 5, "job_id": 5, "status": "applied"},
			{"id": 15, "applicant_id": 6, "job_id": 5, "status": "applied"}
		]`))
	})
	mux.HandleFunc("/applicants/by_ids", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": 1, "name": "A"}, {"id": 2, "name": "B"}, {"id": 3, "name": "C"},
			{"id": 4, "name": "D"}, {"id": 5, "name": "E"}, {"id": 6, "name": "F"}
		]`))
	})
	mux.HandleFunc("/job-assessments/latest", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	page := NewCandidateBoardPage(newTestClient(t, mux), 5, 7)
	page.Load(context.Background())

	require.Equal(t, StateReady, page.State())
	assert.Len(t, page.Candidates(), 6)
	assert.Len(t, page.Top(), 5)
}

func TestCandidateBoardPage_Load_NoApplications(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/by_job_and_company", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/applicants/by_ids", func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("profiles must not be fetched when there are no applications")
	})

	page := NewCandidateBoardPage(newTestClient(t, mux), 5, 7)
	page.Load(context.Background())

	require.Equal(t, StateReady, page.State())
	assert.Empty(t, page.Candidates())
	assert.Empty(t, page.Top())
}

func TestCandidateBoardPage_Load_ProfileFetchFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/by_job_and_company", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 10, "applicant_id": 1, "job_id": 5, "status": "applied"}]`))
	})
	mux.HandleFunc("/applicants/by_ids", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	page := NewCandidateBoardPage(newTestClient(t, mux), 5, 7)
	page.Load(context.Background())

	assert.Equal(t, StateFailed, page.State())
	assert.NotEmpty(t, page.ErrorMessage())
}

func TestCandidateBoardPage_Load_ScoreProbeFailureLeavesUnscored(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/applications/by_job_and_company", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 10, "applicant_id": 1, "job_id": 5, "status": "applied"}]`))
	})
	mux.HandleFunc("/applicants/by_ids", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Ada"}]`))
	})
	mux.HandleFunc("/job-assessments/latest", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	page := NewCandidateBoardPage(newTestClient(t, mux), 5, 7)
	page.Load(context.Background())

	require.Equal(t, StateReady, page.State(), "a failed score probe must not fail the board")
	require.Len(t, page.Candidates(), 1)
	assert.Nil(t, page.Candidates()[0].Score)
}
