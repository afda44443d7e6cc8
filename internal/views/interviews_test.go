package views

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

func TestInterviewsPage_Load(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/interviews", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("company_id"))
		_, _ = w.Write([]byte(`[
			{"id": 1, "job_id": 5, "applicant_id": 1, "status": "Pending", "scheduled_time": "2025-06-10T14:00:00Z"},
			{"id": 2, "job_id": 5, "applicant_id": 2, "status": "Confirmed", "scheduled_time": "2025-06-11T14:00:00Z"}
		]`))
	})

	page := NewInterviewsPage(newTestClient(t, mux), api.InterviewFilter{CompanyID: 7})
	page.Load(context.Background())

	require.Equal(t, StateReady, page.State())
	require.Len(t, page.Interviews(), 2)
	assert.Equal(t, types.InterviewPending, page.Interviews()[0].Status)
}

func TestInterviewsPage_Schedule_PrependsNewInterview(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /interviews", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "status": "Confirmed"}]`))
	})
	mux.HandleFunc("POST /interviews", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"id": 2, "application_id": 42, "job_id": 5, "applicant_id": 1,
			"company_id": 7, "scheduled_time": "2025-06-12T09:00:00Z", "type": "video", "status": "Pending"}`))
	})

	page := NewInterviewsPage(newTestClient(t, mux), api.InterviewFilter{CompanyID: 7})
	page.Load(context.Background())
	require.Equal(t, StateReady, page.State())

	created, err := page.Schedule(context.Background(), types.InterviewCreate{
		ApplicationID: 42,
		JobID:         5,
		ApplicantID:   1,
		CompanyID:     7,
		ScheduledTime: "2025-06-12T09:00:00Z",
		Type:          "video",
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	require.Len(t, page.Interviews(), 2)
	assert.Equal(t, 2, page.Interviews()[0].ID, "new interview goes to the top")
}

func TestInterviewsPage_UpdateStatus_UpdatesInPlace(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /interviews", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 1, "status": "Pending"}, {"id": 2, "status": "Pending"}]`))
	})
	mux.HandleFunc("PATCH /interviews/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.PathValue("id"))
		assert.Equal(t, "Confirmed", r.URL.Query().Get("new_status"))
		_, _ = w.Write([]byte(`{"id": 1, "status": "Confirmed"}`))
	})

	page := NewInterviewsPage(newTestClient(t, mux), api.InterviewFilter{})
	page.Load(context.Background())
	require.Equal(t, StateReady, page.State())

	updated, err := page.UpdateStatus(context.Background(), 1, types.InterviewConfirmed)
	require.NoError(t, err)
	assert.Equal(t, types.InterviewConfirmed, updated.Status)

	assert.Equal(t, types.InterviewConfirmed, page.Interviews()[0].Status)
	assert.Equal(t, types.InterviewPending, page.Interviews()[1].Status)
}

func TestInterviewsPage_Schedule_InvalidPayload(t *testing.T) {
	page := NewInterviewsPage(newTestClient(t, http.NewServeMux()), api.InterviewFilter{})

	_, err := page.Schedule(context.Background(), types.InterviewCreate{JobID: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to schedule interview")
}
