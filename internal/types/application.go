package types

// Application statuses form a fixed progression; Rejected is terminal and can
// follow any non-terminal status.
const (
	StatusApplied            = "applied"
	StatusUnderReview        = "under_review"
	StatusInterviewScheduled = "interview_scheduled"
	StatusFinalReview        = "final_review"
	StatusAccepted           = "accepted"
	StatusRejected           = "rejected"
)

// Application links an applicant to a job. Status is the single source of
// truth for progress rendering.
type Application struct {
	ID              int    `json:"id"`
	ApplicantID     int    `json:"applicant_id"`
	JobID           int    `json:"job_id"`
	JobAssessmentID *int   `json:"job_assessment_id,omitempty"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ApplicationRow is one line of the applications page: the application joined
// with its job and the derived progress percentage.
type ApplicationRow struct {
	JobID     int
	JobTitle  string
	Company   string
	Status    string
	AppliedAt string
	Progress  int
}

// ApplicationRecord is the client-side record written to the fallback cache
// after a successful application, keyed by "application_{jobId}".
type ApplicationRecord struct {
	JobID     int    `json:"jobId"`
	JobTitle  string `json:"jobTitle"`
	Company   string `json:"company"`
	AppliedAt string `json:"appliedAt"`
	Status    string `json:"status"`
}
