package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Upload a resume for scoring against a job",
	Long:  "Run the CV assessment flow for a job: upload a resume file, wait for the backend to score it, and render the result. A successful assessment is saved locally so the job detail page can surface it later.",
	RunE:  runAssess,
}

var (
	assessJobID int
	assessFile  string
)

func init() {
	assessCmd.Flags().IntVar(&assessJobID, "job", 0, "Job id (required)")
	assessCmd.Flags().StringVarP(&assessFile, "file", "f", "", "Path to the resume file (required)")

	rootCmd.AddCommand(assessCmd)
}

func runAssess(_ *cobra.Command, _ []string) error {
	if assessJobID == 0 {
		return fmt.Errorf("job id is required (use --job)")
	}
	if assessFile == "" {
		return fmt.Errorf("resume file is required (use --file)")
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

	file, err := os.Open(assessFile)
	if err != nil {
		return fmt.Errorf("failed to open resume file: %w", err)
	}
	defer func() { _ = file.Close() }()

	fmt.Println("Analyzing resume...")
	flow := views.NewAssessmentFlow(client, store, assessJobID)
	if err := flow.Start(ctx, filepath.Base(assessFile), file); err != nil {
		return err
	}

	newPrinter().PrintAssessment(flow.Result())
	return nil
}
