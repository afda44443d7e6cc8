package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the analytics dashboard",
	Long:  "Load the organizer dashboard: headline totals, monthly application trend, status distribution and the companies with the most listings. All three backend sources are required; any failure fails the page.",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	page := views.NewOrganizerPage(client)
	page.Load(context.Background())

	printer := newPrinter()
	if page.State() == views.StateFailed {
		printer.PrintError("Analytics Dashboard", page.ErrorMessage())
		return fmt.Errorf("failed to load dashboard")
	}

	printer.PrintDashboard(page.Stats(), page.Trend(), page.StatusCounts(), page.TopCompanies())
	return nil
}
