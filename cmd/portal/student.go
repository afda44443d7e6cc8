package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Show the student portal: recommended jobs and session stats",
	Long:  "Load the student landing page for an applicant: backend-ranked job recommendations (falling back to the full list when ranking is unavailable), with optional live search.",
	RunE:  runStudent,
}

var (
	studentApplicantID int
	studentSearch      string
)

func init() {
	studentCmd.Flags().IntVar(&studentApplicantID, "applicant", 0, "Applicant id (required)")
	studentCmd.Flags().StringVar(&studentSearch, "search", "", "Filter the loaded jobs by title, company or tag")

	rootCmd.AddCommand(studentCmd)
}

func runStudent(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	applicantID := studentApplicantID
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

	page := views.NewStudentPage(client, store, applicantID)
	page.Load(ctx)

	printer := newPrinter()
	if page.State() == views.StateFailed {
		printer.PrintError("Student Portal", page.ErrorMessage())
		return fmt.Errorf("failed to load student portal")
	}

	jobs := page.Jobs()
	title := "Recommended Jobs"
	if studentSearch != "" {
		jobs = page.Search(studentSearch)
		title = fmt.Sprintf("Jobs matching %q", studentSearch)
	}
	printer.PrintJobList(title, jobs)
	fmt.Printf("Applications this session: %d   Average match score: %d\n",
		page.ApplicationCount(), page.AvgMatchScore())
	return nil
}
