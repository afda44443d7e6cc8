package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

const backendJobsJSON = `[
	{"id": 1, "title": "Frontend Intern", "company_name": "Xero", "location": "Wellington",
	 "salary": "$60k", "role": "Internship", "skill_tags": "React, TypeScript",
	 "description": "<p>Build</p>", "created_at": "2025-05-01T00:00:00Z"},
	{"id": 2, "title": "Data Analyst", "company_name": "Trade Me", "location": "Auckland",
	 "salary": "$70k", "role": "Graduate", "skill_tags": "",
	 "description": "", "created_at": "2025-05-02T00:00:00Z"}
]`

func TestJobs_GetAll(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs", r.URL.Path)
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(backendJobsJSON))
	}))

	resp := client.Jobs.GetAll(context.Background(), JobFilter{Q: "intern", Role: "Internship", Limit: 50})
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 2)

	assert.Equal(t, []string{"intern"}, gotQuery["q"])
	assert.Equal(t, []string{"Internship"}, gotQuery["role"])
	assert.Equal(t, []string{"50"}, gotQuery["limit"])
	assert.NotContains(t, gotQuery, "location", "zero filter values are omitted")

	assert.Equal(t, "Xero", resp.Data[0].Company)
	assert.Equal(t, []string{"React", "TypeScript"}, resp.Data[0].Tags)
	assert.Equal(t, []string{}, resp.Data[1].Tags, "empty skill_tags translates to an empty list")
}

func TestJobs_GetAll_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	resp := client.Jobs.GetAll(context.Background(), JobFilter{})
	assert.False(t, resp.Success)
	assert.Equal(t, "HTTP error! status: 500", resp.Error)
}

func TestJobs_GetByID(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/5", r.URL.Path)
		_, _ = w.Write([]byte(`{"id": 5, "title": "Platform Engineer", "company_name": "Sharesies", "skill_tags": "Go"}`))
	}))

	resp := client.Jobs.GetByID(context.Background(), 5)
	require.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Sharesies", resp.Data.Company)
	assert.Equal(t, []string{"Go"}, resp.Data.Tags)
}

func TestJobs_GetByIDs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/list_by_job_ids", r.URL.Path)
		assert.Equal(t, "3,7,9", r.URL.Query().Get("job_ids"))
		_, _ = w.Write([]byte("[]"))
	}))

	resp := client.Jobs.GetByIDs(context.Background(), []int{3, 7, 9})
	require.True(t, resp.Success)
	assert.Empty(t, resp.Data)
}

func TestJobs_GetByCompany(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/by_company", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("company_id"))
		_, _ = w.Write([]byte(backendJobsJSON))
	}))

	resp := client.Jobs.GetByCompany(context.Background(), 1, "", 0)
	require.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
}

func TestJobs_Create_TranslatesPayload(t *testing.T) {
	var got backendJobCreate
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id": 10, "title": "Platform Engineer", "company_name": "Sharesies", "skill_tags": "Go, Kubernetes"}`))
	}))

	resp := client.Jobs.Create(context.Background(), types.JobCreate{
		Title:    "Platform Engineer",
		Company:  "Sharesies",
		Location: "Auckland",
		Tags:     []string{"Go", "Kubernetes"},
	})
	require.True(t, resp.Success)

	assert.Equal(t, "Sharesies", got.CompanyName)
	assert.Equal(t, "Go, Kubernetes", got.SkillTags)
	assert.Equal(t, "full-time", got.Employment)
	assert.Equal(t, 10, resp.Data.ID)
}

func TestJobs_Create_ValidationFailsBeforeNetwork(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request should be sent for an invalid payload")
	}))

	resp := client.Jobs.Create(context.Background(), types.JobCreate{Company: "Acme"})
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Error, "invalid job")
}

func TestJobs_RecommendForApplicant(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/jobs/recommend/7", r.URL.Path)
		_, _ = w.Write([]byte(backendJobsJSON))
	}))

	resp := client.Jobs.RecommendForApplicant(context.Background(), 7)
	require.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
}
