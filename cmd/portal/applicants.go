package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

var applicantsCmd = &cobra.Command{
	Use:   "applicants",
	Short: "List applicants",
	Long:  "List applicant profiles, optionally filtered by search term, desired role or location.",
	RunE:  runApplicants,
}

var (
	applicantsQuery    string
	applicantsRole     string
	applicantsLocation string
	applicantsLimit    int
)

func init() {
	applicantsCmd.Flags().StringVar(&applicantsQuery, "q", "", "Search term")
	applicantsCmd.Flags().StringVar(&applicantsRole, "role", "", "Filter by desired role")
	applicantsCmd.Flags().StringVar(&applicantsLocation, "location", "", "Filter by desired location")
	applicantsCmd.Flags().IntVar(&applicantsLimit, "limit", 0, "Maximum number of applicants to fetch")

	rootCmd.AddCommand(applicantsCmd)
}

func runApplicants(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var resp api.Envelope[[]types.Candidate]
	if applicantsQuery == "" && applicantsRole == "" && applicantsLocation == "" && applicantsLimit == 0 {
		resp = client.Applicants.GetAll(ctx)
	} else {
		resp = client.Applicants.GetFiltered(ctx, api.ApplicantFilter{
			Q:               applicantsQuery,
			DesiredRole:     applicantsRole,
			DesiredLocation: applicantsLocation,
			Limit:           applicantsLimit,
		})
	}
	if !resp.Success {
		return fmt.Errorf("failed to load applicants: %s", resp.Error)
	}

	newPrinter().PrintApplicantList("Applicants", resp.Data)
	return nil
}
