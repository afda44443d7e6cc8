package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "applications", KeyApplications)
	assert.Equal(t, "application_5", KeyApplication(5))
	assert.Equal(t, "assessment_12", KeyAssessment(12))
}

func TestMemory_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", []byte("v1")))
	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v1"), value)

	require.NoError(t, store.Set(ctx, "k", []byte("v2")))
	value, _, _ = store.Get(ctx, "k")
	assert.Equal(t, []byte("v2"), value, "set replaces the previous value")

	require.NoError(t, store.Delete(ctx, "k"))
	_, found, err = store.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Delete(ctx, "k"), "deleting an absent key is not an error")
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	value, _, _ := store.Get(ctx, "k")
	value[0] = 'X'

	again, _, _ := store.Get(ctx, "k")
	assert.Equal(t, []byte("abc"), again, "callers must not mutate stored bytes")
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	record := types.ApplicationRecord{
		JobID:     5,
		JobTitle:  "Frontend Intern",
		Company:   "Acme",
		AppliedAt: "2025-06-01T10:00:00Z",
		Status:    types.StatusApplied,
	}
	require.NoError(t, SetJSON(ctx, store, KeyApplication(5), record))

	var got types.ApplicationRecord
	found, err := GetJSON(ctx, store, KeyApplication(5), &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, record, got)

	var missing types.ApplicationRecord
	found, err = GetJSON(ctx, store, KeyApplication(99), &missing)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetJSON_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Set(ctx, "bad", []byte("{not json")))

	var out map[string]any
	_, err := GetJSON(ctx, store, "bad", &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode cached")
}

func TestOpen_Memory(t *testing.T) {
	store, err := Open(context.Background(), "", "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	_, ok := store.(*Memory)
	assert.True(t, ok)
}

func TestOpen_Unknown(t *testing.T) {
	_, err := Open(context.Background(), "etcd", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown cache driver")
}

func TestSQLite_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := OpenSQLite(t.TempDir() + "/cache.db")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, found, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.Set(ctx, "k", []byte("v1")))
	require.NoError(t, store.Set(ctx, "k", []byte("v2")))

	value, found, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []byte("v2"), value)

	require.NoError(t, store.Delete(ctx, "k"))
	_, found, _ = store.Get(ctx, "k")
	assert.False(t, found)
}
