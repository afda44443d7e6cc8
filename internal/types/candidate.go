package types

// Candidate is the frontend view model for an applicant profile.
//
// Skills follows the same never-nil rule as Job.Tags.
type Candidate struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	University      string   `json:"university"`
	Major           string   `json:"major"`
	Year            string   `json:"year"`
	Skills          []string `json:"skills"`
	DesiredRole     string   `json:"desired_role"`
	DesiredLocation string   `json:"desired_location,omitempty"`
}

// CandidateWithScore pairs a candidate with their latest assessment outcome
// for a specific job. Score is nil until the candidate has been assessed;
// rendering coerces nil to 0, ranking treats nil as below any real score.
type CandidateWithScore struct {
	Candidate
	ApplicationID int    `json:"applicationId"`
	Status        string `json:"status"`
	AppliedAt     string `json:"appliedAt"`
	Score         *int   `json:"score,omitempty"`
}
