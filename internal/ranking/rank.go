// Package ranking provides the pure derivation logic view controllers apply
// to fetched data: candidate ranking, status-to-progress mapping and live
// search filtering. Nothing here performs I/O.
package ranking

import (
	"sort"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

// unscored ranks below any real 0-100 score.
const unscored = -1

// DefaultTopN is the leaderboard size shown on the recruiter board.
const DefaultTopN = 5

// scoreValue maps an optional score to its sort key.
func scoreValue(score *int) int {
	if score == nil {
		return unscored
	}
	return *score
}

// RankCandidates sorts candidates by descending score. Candidates without a
// score sink below every scored candidate; ties keep their arrival order.
func RankCandidates(candidates []types.CandidateWithScore) []types.CandidateWithScore {
	ranked := make([]types.CandidateWithScore, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreValue(ranked[i].Score) > scoreValue(ranked[j].Score)
	})
	return ranked
}

// TopCandidates ranks candidates and returns at most n, highest first.
func TopCandidates(candidates []types.CandidateWithScore, n int) []types.CandidateWithScore {
	ranked := RankCandidates(candidates)
	if n < 0 {
		n = 0
	}
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
