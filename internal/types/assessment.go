package types

// Score holds the overall match score and its four sub-dimensions, each on a
// 0-100 scale.
type Score struct {
	Overall         int `json:"overall"`
	SkillsMatch     int `json:"skills_match"`
	ExperienceDepth int `json:"experience_depth"`
	EducationMatch  int `json:"education_match"`
	PotentialFit    int `json:"potential_fit"`
}

// AssessmentResult is the scored outcome of matching one applicant's résumé
// against one job, as computed by the backend.
type AssessmentResult struct {
	JobID                       int      `json:"jobId"`
	ApplicantID                 int      `json:"applicantId"`
	Summary                     string   `json:"summary"`
	Score                       Score    `json:"score"`
	AssessmentHighlights        []string `json:"assessment_highlights"`
	RecommendationsForCandidate []string `json:"recommendations_for_candidate"`
	CreatedAt                   string   `json:"createdAt"`
}

// AssessmentCheck reports whether an applicant has a prior assessment for a
// job, carrying the assessment when one exists.
type AssessmentCheck struct {
	HasAssessment bool              `json:"hasAssessment"`
	Assessment    *AssessmentResult `json:"assessment,omitempty"`
}
