package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var jobCmd = &cobra.Command{
	Use:   "job",
	Short: "Show a job's detail page",
	Long:  "Load the student-facing job detail page: the listing with its description rendered as plain text, plus any locally saved assessment for this job.",
	RunE:  runJob,
}

var (
	jobID          int
	jobApplicantID int
)

func init() {
	jobCmd.Flags().IntVar(&jobID, "id", 0, "Job id (required)")
	jobCmd.Flags().IntVar(&jobApplicantID, "applicant", 0, "Applicant id for the applied-status probe")

	rootCmd.AddCommand(jobCmd)
}

func runJob(_ *cobra.Command, _ []string) error {
	if jobID == 0 {
		return fmt.Errorf("job id is required (use --id)")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	applicantID := jobApplicantID
	if applicantID == 0 {
		applicantID = cfg.ApplicantID
	}

	page := views.NewJobDetailPage(client, store, jobID, applicantID)
	page.Load(ctx)

	printer := newPrinter()
	if page.State() == views.StateFailed {
		printer.PrintError("Job Detail", page.ErrorMessage())
		return fmt.Errorf("failed to load job %d", jobID)
	}

	printer.PrintJobDetail(page.Job())
	if page.HasAssessment() {
		printer.PrintAssessment(page.Assessment())
	}
	return nil
}
