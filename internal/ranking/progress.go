package ranking

import "github.com/HanDonoo/recruitment-frontend/internal/types"

// statusSteps is the fixed progression table behind progress bars. Rejected
// is terminal and renders as 100% to indicate closure even though it is not
// a progression step.
var statusSteps = map[string]int{
	types.StatusApplied:            20,
	types.StatusUnderReview:        40,
	types.StatusInterviewScheduled: 60,
	types.StatusFinalReview:        80,
	types.StatusAccepted:           100,
	types.StatusRejected:           100,
}

// ProgressPercent maps an application status to its progress percentage.
// Unrecognized statuses map to 0.
func ProgressPercent(status string) int {
	return statusSteps[status]
}

// ValidApplicationStatus reports whether status is part of the fixed
// progression (including the terminal rejected state).
func ValidApplicationStatus(status string) bool {
	_, ok := statusSteps[status]
	return ok
}
