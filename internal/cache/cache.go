// Package cache provides the client-side fallback store. It mirrors the web
// client's browser local storage: best-effort, non-authoritative, read only
// when the network path has failed and overwritten on the next successful
// backend read. The Store interface keeps network-call logic out of the
// persistence choice; tests use the in-memory driver.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
)

// Keys used by the portal. They match the web client's local storage keys.
const KeyApplications = "applications"

// KeyApplication returns the per-job application record key.
func KeyApplication(jobID int) string {
	return fmt.Sprintf("application_%d", jobID)
}

// KeyAssessment returns the per-job assessment record key.
func KeyAssessment(jobID int) string {
	return fmt.Sprintf("assessment_%d", jobID)
}

// Store is a minimal key-value surface. Get reports presence separately from
// errors so an absent key is not a failure.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open selects a Store driver by name. dsn is a file path for sqlite, a
// connection URL for postgres and redis, and ignored for memory.
func Open(ctx context.Context, driver, dsn string) (Store, error) {
	switch driver {
	case "", "memory":
		return NewMemory(), nil
	case "sqlite":
		if dsn == "" {
			dsn = "portal_cache.db"
		}
		return OpenSQLite(dsn)
	case "postgres":
		return OpenPostgres(ctx, dsn)
	case "redis":
		return OpenRedis(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown cache driver %q", driver)
	}
}

// GetJSON reads key and unmarshals it into out. Absent keys return (false, nil).
func GetJSON(ctx context.Context, s Store, key string, out any) (bool, error) {
	data, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

// SetJSON marshals value and writes it under key.
func SetJSON(ctx context.Context, s Store, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cached %s: %w", key, err)
	}
	return s.Set(ctx, key, data)
}
