// Package types provides the view-model definitions shared across the
// recruitment portal client.
package types

// Job is the frontend view model for a job listing.
//
// Tags is always non-nil: an absent or empty backend tag string translates to
// an empty slice so iteration is always safe.
type Job struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Salary      string   `json:"salary"`
	Experience  string   `json:"experience"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"` // HTML as served by the backend
	Applicants  int      `json:"applicants"`
	MatchScore  *int     `json:"matchScore,omitempty"`
	Feedback    string   `json:"feedback,omitempty"`
	CreatedAt   string   `json:"createdAt"`

	// IsApplied is client-side state, set after a successful application.
	IsApplied bool `json:"isApplied,omitempty"`
}

// JobCreate carries the fields a recruiter supplies when posting a job.
// Tags are joined into the backend's comma-separated skill_tags string by the
// translator; EmploymentType defaults to "full-time" when empty.
type JobCreate struct {
	Title          string   `json:"title" validate:"required"`
	Company        string   `json:"company" validate:"required"`
	Location       string   `json:"location" validate:"required"`
	Salary         string   `json:"salary"`
	Experience     string   `json:"experience"`
	Tags           []string `json:"tags"`
	Description    string   `json:"description"`
	EmploymentType string   `json:"employmentType"`
}
