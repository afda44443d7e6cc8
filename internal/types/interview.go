package types

// Interview statuses.
const (
	InterviewPending   = "Pending"
	InterviewConfirmed = "Confirmed"
	InterviewCancelled = "Cancelled"
	InterviewCompleted = "Completed"
)

// ValidInterviewStatus reports whether s is one of the four interview states.
func ValidInterviewStatus(s string) bool {
	switch s {
	case InterviewPending, InterviewConfirmed, InterviewCancelled, InterviewCompleted:
		return true
	}
	return false
}

// Interview links an application to a scheduled interview slot.
type Interview struct {
	ID              int     `json:"id"`
	ApplicationID   int     `json:"application_id"`
	JobID           int     `json:"job_id"`
	ApplicantID     int     `json:"applicant_id"`
	CompanyID       int     `json:"company_id"`
	InterviewerID   *int    `json:"interviewer_id,omitempty"`
	ScheduledTime   string  `json:"scheduled_time"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Type            string  `json:"type"`
	LocationURL     *string `json:"location_url,omitempty"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

// InterviewCreate is the payload for scheduling an interview.
type InterviewCreate struct {
	ApplicationID   int     `json:"application_id" validate:"required"`
	JobID           int     `json:"job_id" validate:"required"`
	ApplicantID     int     `json:"applicant_id" validate:"required"`
	CompanyID       int     `json:"company_id" validate:"required"`
	InterviewerID   *int    `json:"interviewer_id,omitempty"`
	ScheduledTime   string  `json:"scheduled_time" validate:"required"`
	DurationMinutes *int    `json:"duration_minutes,omitempty"`
	Type            string  `json:"type" validate:"required"`
	LocationURL     *string `json:"location_url,omitempty"`
	Status          string  `json:"status,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}
