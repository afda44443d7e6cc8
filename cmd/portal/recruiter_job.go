package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var recruiterJobCmd = &cobra.Command{
	Use:   "recruiter-job",
	Short: "Show a job from the recruiter's side",
	Long:  "Load the recruiter-facing job detail page: the listing plus a live application count. A failed count renders as zero rather than failing the page.",
	RunE:  runRecruiterJob,
}

var (
	recruiterJobID        int
	recruiterJobCompanyID int
)

func init() {
	recruiterJobCmd.Flags().IntVar(&recruiterJobID, "job", 0, "Job id (required)")
	recruiterJobCmd.Flags().IntVar(&recruiterJobCompanyID, "company", 0, "Company id (required)")

	rootCmd.AddCommand(recruiterJobCmd)
}

func runRecruiterJob(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	companyID := recruiterJobCompanyID
	if companyID == 0 {
		companyID = cfg.CompanyID
	}
	if recruiterJobID == 0 {
		return fmt.Errorf("job id is required (use --job)")
	}
	if companyID == 0 {
		return fmt.Errorf("company id is required (use --company or set company_id in the config file)")
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	page := views.NewRecruiterJobPage(client, recruiterJobID, companyID)
	page.Load(context.Background())

	printer := newPrinter()
	if page.State() == views.StateFailed {
		printer.PrintError("Job Management", page.ErrorMessage())
		return fmt.Errorf("failed to load job %d", recruiterJobID)
	}

	printer.PrintJobDetail(page.Job())
	fmt.Printf("Applications received: %d\n", page.ApplicationCount())
	return nil
}
