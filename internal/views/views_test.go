package views

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/cache"
)

// newTestClient starts a fake backend and returns a client pointed at it.
func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := api.NewClient(server.URL, nil)
	require.NoError(t, err)
	return client
}

// newTestStore returns an in-memory fallback cache.
func newTestStore(t *testing.T) cache.Store {
	t.Helper()
	store := cache.NewMemory()
	t.Cleanup(func() { _ = store.Close() })
	return store
}

const backendJobsJSON = `[
	{"id": 1, "title": "Frontend Engineer", "company_name": "Acme", "location": "Auckland",
	 "salary": "$90k", "role": "mid", "skill_tags": "React, TypeScript",
	 "description": "<p>Build UIs</p>", "created_at": "2025-05-01T00:00:00Z", "matchScore": 92},
	{"id": 2, "title": "Backend Engineer", "company_name": "Acme", "location": "Wellington",
	 "salary": "$110k", "role": "senior", "skill_tags": "Go, Postgres",
	 "description": "<p>Build APIs</p>", "created_at": "2025-05-02T00:00:00Z"},
	{"id": 3, "title": "Data Analyst", "company_name": "Initech", "location": "Remote",
	 "salary": "$80k", "role": "junior", "skill_tags": "SQL, Python",
	 "description": "<p>Crunch numbers</p>", "created_at": "2025-05-03T00:00:00Z", "matchScore": 76}
]`
