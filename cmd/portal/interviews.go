package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/api"
	"github.com/HanDonoo/recruitment-frontend/internal/config"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
	"github.com/HanDonoo/recruitment-frontend/internal/views"
)

var interviewsCmd = &cobra.Command{
	Use:   "interviews",
	Short: "List scheduled interviews",
	Long:  "List interviews filtered by applicant, job or company.",
	RunE:  runInterviews,
}

var (
	interviewsApplicantID int
	interviewsJobID       int
	interviewsCompanyID   int
)

var scheduleInterviewCmd = &cobra.Command{
	Use:   "schedule-interview",
	Short: "Schedule an interview for an application",
	RunE:  runScheduleInterview,
}

var (
	scheduleApplicationID int
	scheduleJobID         int
	scheduleApplicantID   int
	scheduleCompanyID     int
	scheduleTime          string
	scheduleType          string
	scheduleLocation      string
	scheduleNotes         string
)

var updateInterviewCmd = &cobra.Command{
	Use:   "update-interview",
	Short: "Update an interview's status",
	Long:  "Transition an interview to Pending, Confirmed, Cancelled or Completed.",
	RunE:  runUpdateInterview,
}

var (
	updateInterviewID     int
	updateInterviewStatus string
)

func init() {
	interviewsCmd.Flags().IntVar(&interviewsApplicantID, "applicant", 0, "Filter by applicant id")
	interviewsCmd.Flags().IntVar(&interviewsJobID, "job", 0, "Filter by job id")
	interviewsCmd.Flags().IntVar(&interviewsCompanyID, "company", 0, "Filter by company id")

	scheduleInterviewCmd.Flags().IntVar(&scheduleApplicationID, "application", 0, "Application id (required)")
	scheduleInterviewCmd.Flags().IntVar(&scheduleJobID, "job", 0, "Job id (required)")
	scheduleInterviewCmd.Flags().IntVar(&scheduleApplicantID, "applicant", 0, "Applicant id (required)")
	scheduleInterviewCmd.Flags().IntVar(&scheduleCompanyID, "company", 0, "Company id (required)")
	scheduleInterviewCmd.Flags().StringVar(&scheduleTime, "time", "", "Scheduled time, RFC 3339 (required)")
	scheduleInterviewCmd.Flags().StringVar(&scheduleType, "type", "video", "Interview type: video, phone or onsite")
	scheduleInterviewCmd.Flags().StringVar(&scheduleLocation, "location", "", "Meeting URL or address")
	scheduleInterviewCmd.Flags().StringVar(&scheduleNotes, "notes", "", "Notes for the interviewer")

	updateInterviewCmd.Flags().IntVar(&updateInterviewID, "id", 0, "Interview id (required)")
	updateInterviewCmd.Flags().StringVar(&updateInterviewStatus, "status", "", "New status (required)")

	rootCmd.AddCommand(interviewsCmd)
	rootCmd.AddCommand(scheduleInterviewCmd)
	rootCmd.AddCommand(updateInterviewCmd)
}

func interviewsPage(cfg config.Config) (*views.InterviewsPage, error) {
	client, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	return views.NewInterviewsPage(client, api.InterviewFilter{
		ApplicantID: interviewsApplicantID,
		JobID:       interviewsJobID,
		CompanyID:   interviewsCompanyID,
	}), nil
}

func runInterviews(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	page, err := interviewsPage(cfg)
	if err != nil {
		return err
	}
	page.Load(context.Background())

	printer := newPrinter()
	if page.State() == views.StateFailed {
		printer.PrintError("Interviews", page.ErrorMessage())
		return fmt.Errorf("failed to load interviews")
	}

	printer.PrintInterviews(page.Interviews())
	return nil
}

func runScheduleInterview(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	create := types.InterviewCreate{
		ApplicationID: scheduleApplicationID,
		JobID:         scheduleJobID,
		ApplicantID:   scheduleApplicantID,
		CompanyID:     scheduleCompanyID,
		ScheduledTime: scheduleTime,
		Type:          scheduleType,
	}
	if scheduleLocation != "" {
		create.LocationURL = &scheduleLocation
	}
	if scheduleNotes != "" {
		create.Notes = &scheduleNotes
	}

	resp := client.Interviews.Create(context.Background(), create)
	if !resp.Success {
		return fmt.Errorf("failed to schedule interview: %s", resp.Error)
	}

	fmt.Printf("Scheduled interview %d at %s (%s)\n", resp.Data.ID, resp.Data.ScheduledTime, resp.Data.Status)
	return nil
}

func runUpdateInterview(_ *cobra.Command, _ []string) error {
	if updateInterviewID == 0 {
		return fmt.Errorf("interview id is required (use --id)")
	}
	if updateInterviewStatus == "" {
		return fmt.Errorf("status is required (use --status)")
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	resp := client.Interviews.UpdateStatus(context.Background(), updateInterviewID, updateInterviewStatus)
	if !resp.Success {
		return fmt.Errorf("failed to update interview: %s", resp.Error)
	}

	fmt.Printf("Interview %d is now %s\n", resp.Data.ID, resp.Data.Status)
	return nil
}
