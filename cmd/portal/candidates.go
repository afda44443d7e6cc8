package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Show the ranked candidate board for a job",
	Long:  "Load the recruiter's candidate board for one of a company's jobs: applications joined with applicant profiles and latest assessment scores, ranked best first with unscored candidates last.",
	RunE:  runCandidates,
}

var (
	candidatesJobID     int
	candidatesCompanyID int
	candidatesTopOnly   bool
)

func init() {
	candidatesCmd.Flags().IntVar(&candidatesJobID, "job", 0, "Job id (required)")
	candidatesCmd.Flags().IntVar(&candidatesCompanyID, "company", 0, "Company id (required)")
	candidatesCmd.Flags().BoolVar(&candidatesTopOnly, "top", false, "Show only the top five candidates")

	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	companyID := candidatesCompanyID
	if companyID == 0 {
		companyID = cfg.CompanyID
	}
	if candidatesJobID == 0 {
		return fmt.Errorf("job id is required (use --job)")
	}
	if companyID == 0 {
		return fmt.Errorf("company id is required (use --company or set company_id in the config file)")
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	page := views.NewCandidateBoardPage(client, candidatesJobID, companyID)
	page.Load(context.Background())

	printer := newPrinter()
	if page.State() == views.StateFailed {
		printer.PrintError("Candidate Board", page.ErrorMessage())
		return fmt.Errorf("failed to load candidates for job %d", candidatesJobID)
	}

	rows := page.Candidates()
	if candidatesTopOnly {
		rows = page.Top()
	}
	printer.PrintCandidateLeaderboard(rows)
	return nil
}
