// Package main provides the entry point for the recruitment portal CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "Recruitment platform terminal client",
	Long:  "Terminal client for the recruitment platform backend: student job search and applications, recruiter candidate boards, CV assessments, interview scheduling and the analytics dashboard.",
}

var (
	rootConfigFile  string
	rootAPIURL      string
	rootTimeout     int
	rootCacheDriver string
	rootCacheDSN    string
	rootVerbose     bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootConfigFile, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&rootAPIURL, "api-url", "", "Backend base URL (overrides API_URL env var)")
	rootCmd.PersistentFlags().IntVar(&rootTimeout, "timeout", 0, "HTTP request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&rootCacheDriver, "cache-driver", "", "Fallback cache driver: memory, sqlite, postgres or redis")
	rootCmd.PersistentFlags().StringVar(&rootCacheDSN, "cache-dsn", "", "File path or connection URL for the cache driver")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed request information")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
