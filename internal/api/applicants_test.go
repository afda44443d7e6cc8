package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicants_GetFiltered_SendsEmptyFieldsAndDefaultLimit(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.True(t, query.Has("q"))
		assert.Equal(t, "", query.Get("q"))
		assert.Equal(t, "Frontend Engineer", query.Get("desired_role"))
		assert.Equal(t, "", query.Get("desired_location"))
		assert.Equal(t, "50", query.Get("limit"))
		assert.Equal(t, "0", query.Get("offset"))
		_, _ = w.Write([]byte(`[{"id": 1, "name": "Ada", "skill_tags": "React, TypeScript"}]`))
	}))

	resp := client.Applicants.GetFiltered(context.Background(), ApplicantFilter{DesiredRole: "Frontend Engineer"})
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Ada", resp.Data[0].Name)
	assert.Equal(t, []string{"React", "TypeScript"}, resp.Data[0].Skills)
}

func TestApplicants_GetByIDs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/applicants/by_ids", r.URL.Path)
		assert.Equal(t, "3,1,2", r.URL.Query().Get("applicant_ids"))
		_, _ = w.Write([]byte(`[{"id": 3, "name": "Grace"}, {"id": 1, "name": "Ada"}, {"id": 2, "name": "Alan"}]`))
	}))

	resp := client.Applicants.GetByIDs(context.Background(), []int{3, 1, 2})
	require.True(t, resp.Success)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, "Grace", resp.Data[0].Name)
}

func TestApplicants_GetByID_NotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	resp := client.Applicants.GetByID(context.Background(), 99)
	assert.False(t, resp.Success)
	assert.Equal(t, "HTTP error! status: 404", resp.Error)
}
