// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultAPIURL is the backend base URL used when none is configured.
const DefaultAPIURL = "http://localhost:8000"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Backend
	APIURL string `json:"api_url,omitempty"` // Backend base URL

	// Identity (no auth in this client; ids select whose data to render)
	ApplicantID int `json:"applicant_id,omitempty"` // Student portal applicant id
	CompanyID   int `json:"company_id,omitempty"`   // Recruiter portal company id

	// Fallback cache
	CacheDriver string `json:"cache_driver,omitempty"` // memory, sqlite, postgres or redis
	CacheDSN    string `json:"cache_dsn,omitempty"`    // File path or connection URL for the driver

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // HTTP request timeout
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. API_URL is the primary
// name; NEXT_PUBLIC_API_URL is honored as a legacy alias from the web client.
func FromEnv() Config {
	return Config{
		APIURL:      firstNonEmpty(os.Getenv("API_URL"), os.Getenv("NEXT_PUBLIC_API_URL")),
		CacheDriver: os.Getenv("CACHE_DRIVER"),
		CacheDSN:    os.Getenv("CACHE_DSN"),
	}
}

// Validate checks that the configuration has valid values.
// Required fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.ApplicantID < 0 {
		return fmt.Errorf("config error: 'applicant_id' must be non-negative")
	}
	if c.CompanyID < 0 {
		return fmt.Errorf("config error: 'company_id' must be non-negative")
	}
	if c.APIURL != "" && !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return fmt.Errorf("config error: 'api_url' must start with http:// or https://")
	}
	switch c.CacheDriver {
	case "", "memory", "sqlite", "postgres", "redis":
	default:
		return fmt.Errorf("config error: unknown cache driver %q", c.CacheDriver)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply env/config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.APIURL == "" {
		result.APIURL = DefaultAPIURL
	}
	if result.CacheDriver == "" {
		result.CacheDriver = defaults.CacheDriver
	}
	if result.CacheDriver == "" {
		result.CacheDriver = "memory"
	}
	if result.CacheDSN == "" {
		result.CacheDSN = defaults.CacheDSN
	}
	if result.ApplicantID == 0 {
		result.ApplicantID = defaults.ApplicantID
	}
	if result.CompanyID == 0 {
		result.CompanyID = defaults.CompanyID
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = 30
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
