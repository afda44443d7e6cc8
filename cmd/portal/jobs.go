package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List job postings",
	Long:  "List job postings, optionally filtered by search term, role or location, or scoped to one company's listings.",
	RunE:  runJobs,
}

var (
	jobsQuery     string
	jobsRole      string
	jobsLocation  string
	jobsLimit     int
	jobsCompanyID int
)

func init() {
	jobsCmd.Flags().StringVar(&jobsQuery, "q", "", "Search term")
	jobsCmd.Flags().StringVar(&jobsRole, "role", "", "Filter by role")
	jobsCmd.Flags().StringVar(&jobsLocation, "location", "", "Filter by location")
	jobsCmd.Flags().IntVar(&jobsLimit, "limit", 0, "Maximum number of jobs to fetch")
	jobsCmd.Flags().IntVar(&jobsCompanyID, "company", 0, "List only this company's jobs")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	title := "Jobs"
	var resp api.Envelope[[]types.Job]
	if jobsCompanyID != 0 {
		resp = client.Jobs.GetByCompany(ctx, jobsCompanyID, jobsQuery, jobsLimit)
		title = fmt.Sprintf("Jobs for company %d", jobsCompanyID)
	} else {
		resp = client.Jobs.GetAll(ctx, api.JobFilter{
			Q:        jobsQuery,
			Role:     jobsRole,
			Location: jobsLocation,
			Limit:    jobsLimit,
		})
	}
	if !resp.Success {
		return fmt.Errorf("failed to load jobs: %s", resp.Error)
	}

	newPrinter().PrintJobList(title, resp.Data)
	return nil
}
