package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Show an applicant's profile and assessment history",
	Long:  "Load one applicant's profile with their past CV assessments. With --job, also show the full latest assessment for that job.",
	RunE:  runCandidate,
}

var (
	candidateID    int
	candidateJobID int
)

func init() {
	candidateCmd.Flags().IntVar(&candidateID, "id", 0, "Applicant id (required)")
	candidateCmd.Flags().IntVar(&candidateJobID, "job", 0, "Show the latest assessment for this job")

	rootCmd.AddCommand(candidateCmd)
}

func runCandidate(_ *cobra.Command, _ []string) error {
	if candidateID == 0 {
		return fmt.Errorf("applicant id is required (use --id)")
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
	profile := client.Applicants.GetByID(ctx, candidateID)
	if !profile.Success {
		return fmt.Errorf("failed to load applicant %d: %s", candidateID, profile.Error)
	}

	printer := newPrinter()
	printer.PrintCandidateProfile(profile.Data)

	history := client.Assessments.History(ctx, candidateID)
	if history.Success {
		printer.PrintAssessmentHistory(history.Data)
	}

	if candidateJobID != 0 {
		latest := client.Assessments.GetLatest(ctx, candidateID, candidateJobID)
		if !latest.Success {
			return fmt.Errorf("no assessment for job %d: %s", candidateJobID, latest.Error)
		}
		printer.PrintAssessment(latest.Data)
	}
	return nil
}
