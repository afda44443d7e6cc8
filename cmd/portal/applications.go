package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var applicationsCmd = &cobra.Command{
	Use:   "applications",
	Short: "Show an applicant's application tracker",
	Long:  "Load the applicant's applications joined with their jobs, newest first, with a progress percentage derived from each application's status. When the backend is unreachable the page renders from the local fallback cache.",
	RunE:  runApplications,
}

var applicationsApplicantID int

func init() {
	applicationsCmd.Flags().IntVar(&applicationsApplicantID, "applicant", 0, "Applicant id (required)")

	rootCmd.AddCommand(applicationsCmd)
}

func runApplications(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	applicantID := applicationsApplicantID
	if applicantID == 0 {
		applicantID = cfg.ApplicantID
	}
	if applicantID == 0 {
		return fmt.Errorf("applicant id is required (use --applicant or set applicant_id in the config file)")
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

	page := views.NewApplicationsPage(client, store, applicantID)
	page.Load(ctx)

	printer := newPrinter()
	if page.State() == views.StateFailed {
		printer.PrintError("My Applications", page.ErrorMessage())
		return fmt.Errorf("failed to load applications")
	}

	printer.PrintApplications(page.Rows(), page.FromFallback())
	return nil
}
