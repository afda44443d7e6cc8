package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

var createJobCmd = &cobra.Command{
	Use:   "create-job",
	Short: "Post a new job listing",
	Long:  "Create a job listing. The payload is validated locally before the request; employment type defaults to full-time when not given.",
	RunE:  runCreateJob,
}

var (
	createJobTitle       string
	createJobCompany     string
	createJobLocation    string
	createJobSalary      string
	createJobExperience  string
	createJobTags        []string
	createJobDescription string
	createJobEmployment  string
)

func init() {
	createJobCmd.Flags().StringVar(&createJobTitle, "title", "", "Job title (required)")
	createJobCmd.Flags().StringVar(&createJobCompany, "company", "", "Company name (required)")
	createJobCmd.Flags().StringVar(&createJobLocation, "location", "", "Job location (required)")
	createJobCmd.Flags().StringVar(&createJobSalary, "salary", "", "Salary range")
	createJobCmd.Flags().StringVar(&createJobExperience, "experience", "", "Experience level")
	createJobCmd.Flags().StringSliceVar(&createJobTags, "tags", nil, "Skill tags (comma-separated)")
	createJobCmd.Flags().StringVar(&createJobDescription, "description", "", "Job description (HTML allowed)")
	createJobCmd.Flags().StringVar(&createJobEmployment, "employment", "", "Employment type (defaults to full-time)")

	rootCmd.AddCommand(createJobCmd)
}

func runCreateJob(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	resp := client.Jobs.Create(context.Background(), types.JobCreate{
		Title:          createJobTitle,
		Company:        createJobCompany,
		Location:       createJobLocation,
		Salary:         createJobSalary,
		Experience:     createJobExperience,
		Tags:           createJobTags,
		Description:    createJobDescription,
		EmploymentType: createJobEmployment,
	})
	if !resp.Success {
		return fmt.Errorf("failed to create job: %s", resp.Error)
	}

	fmt.Printf("Created job %d: %s at %s\n", resp.Data.ID, resp.Data.Title, resp.Data.Company)
	return nil
}
