package api

import (
	"strings"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// defaultEmploymentType is applied on job creation when the caller does not
// specify one; the backend requires the field.
const defaultEmploymentType = "full-time"

// backendJob is the wire shape of a job record as served by the backend.
type backendJob struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Role        string `json:"role"`
	Employment  string `json:"employment_type"`
	SkillTags   string `json:"skill_tags"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	MatchScore  *int   `json:"matchScore,omitempty"`
}

// backendJobCreate is the wire shape for POST /jobs.
type backendJobCreate struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Role        string `json:"role"`
	Employment  string `json:"employment_type"`
	SkillTags   string `json:"skill_tags"`
	Description string `json:"description"`
}

// backendCandidate is the wire shape of an applicant record.
type backendCandidate struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	University      string `json:"university"`
	Major           string `json:"major"`
	Year            string `json:"year"`
	SkillTags       string `json:"skill_tags"`
	DesiredRole     string `json:"desired_role"`
	DesiredLocation string `json:"desired_location"`
}

// splitTags turns a comma-joined tag string into a trimmed list. Empty input
// yields an empty, non-nil slice so downstream iteration is always safe.
func splitTags(s string) []string {
	tags := []string{}
	if s == "" {
		return tags
	}
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// joinTags is the reverse mapping for create payloads.
func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// translateJob maps a backend job record to the frontend view model.
func translateJob(b backendJob) types.Job {
	return types.Job{
		ID:          b.ID,
		Title:       b.Title,
		Company:     b.CompanyName,
		Location:    b.Location,
		Salary:      b.Salary,
		Experience:  b.Role,
		Tags:        splitTags(b.SkillTags),
		Description: b.Description,
		Applicants:  0,
		MatchScore:  b.MatchScore,
		CreatedAt:   b.CreatedAt,
	}
}

func translateJobs(backendJobs []backendJob) []types.Job {
	jobs := make([]types.Job, 0, len(backendJobs))
	for _, b := range backendJobs {
		jobs = append(jobs, translateJob(b))
	}
	return jobs
}

// jobCreateToBackend maps a frontend create payload to the backend wire shape.
func jobCreateToBackend(j types.JobCreate) backendJobCreate {
	employment := j.EmploymentType
	if employment == "" {
		employment = defaultEmploymentType
	}
	return backendJobCreate{
		Title:       j.Title,
		CompanyName: j.Company,
		Location:    j.Location,
		Salary:      j.Salary,
		Role:        j.Experience,
		Employment:  employment,
		SkillTags:   joinTags(j.Tags),
		Description: j.Description,
	}
}

// translateCandidate maps a backend applicant record to the frontend view model.
func translateCandidate(b backendCandidate) types.Candidate {
	return types.Candidate{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		University:      b.University,
		Major:           b.Major,
		Year:            b.Year,
		Skills:          splitTags(b.SkillTags),
		DesiredRole:     b.DesiredRole,
		DesiredLocation: b.DesiredLocation,
	}
}

func translateCandidates(backendCandidates []backendCandidate) []types.Candidate {
	candidates := make([]types.Candidate, 0, len(backendCandidates))
	for _, b := range backendCandidates {
		candidates = append(candidates, translateCandidate(b))
	}
	return candidates
}
