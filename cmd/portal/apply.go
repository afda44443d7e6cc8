package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply to a job as an applicant",
	Long:  "Submit an application for a job from the applicant's recommended list. The backend rejects duplicate applications; a successful apply is also recorded in the local fallback cache.",
	RunE:  runApply,
}

var (
	applyApplicantID int
	applyJobID       int
)

func init() {
	applyCmd.Flags().IntVar(&applyApplicantID, "applicant", 0, "Applicant id (required)")
	applyCmd.Flags().IntVar(&applyJobID, "job", 0, "Job id to apply to (required)")

	rootCmd.AddCommand(applyCmd)
}

func runApply(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	applicantID := applyApplicantID
	if applicantID == 0 {
		applicantID = cfg.ApplicantID
	}
	if applicantID == 0 {
		return fmt.Errorf("applicant id is required (use --applicant or set applicant_id in the config file)")
	}
	if applyJobID == 0 {
		return fmt.Errorf("job id is required (use --job)")
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

	page := views.NewStudentPage(client, store, applicantID)
	page.Load(ctx)
	if page.State() == views.StateFailed {
		return fmt.Errorf("failed to load jobs: %s", page.ErrorMessage())
	}

	if err := page.Apply(ctx, applyJobID); err != nil {
		return err
	}

	fmt.Printf("Applied to job %d\n", applyJobID)
	return nil
}
