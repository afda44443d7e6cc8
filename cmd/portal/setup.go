package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/cache"
	"github.com/HanDonoo/recruitment-frontend/internal/config"
	"github.com/HanDonoo/recruitment-frontend/internal/observability"
)

// resolveConfig merges flag values over the config file and environment.
// Precedence: flags, then config file, then env, then built-in defaults.
func resolveConfig() (config.Config, error) {
	fileCfg := config.Config{}
	if rootConfigFile != "" {
		loaded, err := config.LoadConfig(rootConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		fileCfg = *loaded
	}

	flags := config.Config{
		APIURL:         rootAPIURL,
		CacheDriver:    rootCacheDriver,
		CacheDSN:       rootCacheDSN,
		TimeoutSeconds: rootTimeout,
		Verbose:        rootVerbose,
	}
	merged := flags.MergeWithDefaults(fileCfg.MergeWithDefaults(config.FromEnv()))
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newClient builds the backend client from the resolved configuration.
func newClient(cfg config.Config) (*api.Client, error) {
	opts := api.DefaultOptions()
	opts.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	client, err := api.NewClient(cfg.APIURL, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	if cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Using backend %s (timeout %ds)\n", client.BaseURL(), cfg.TimeoutSeconds)
	}
	return client, nil
}

// openStore opens the fallback cache for the resolved configuration.
func openStore(ctx context.Context, cfg config.Config) (cache.Store, error) {
	store, err := cache.Open(ctx, cfg.CacheDriver, cfg.CacheDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s cache: %w", cfg.CacheDriver, err)
	}
	return store, nil
}

func newPrinter() *observability.Printer {
	return observability.NewPrinter(os.Stdout)
}
