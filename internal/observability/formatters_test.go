package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

func TestBar(t *testing.T) {
	tests := []struct {
		name   string
		value  int
		filled int
	}{
		{"zero", 0, 0},
		{"quarter", 25, 5},
		{"full", 100, barWidth},
		{"clamped low", -10, 0},
		{"clamped high", 250, barWidth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bar(tt.value)
			assert.Equal(t, tt.filled, strings.Count(got, "█"))
			assert.Equal(t, barWidth-tt.filled, strings.Count(got, "░"))
		})
	}
}

func TestScoreLabel(t *testing.T) {
	assert.Equal(t, "not assessed", scoreLabel(nil))
	score := 87
	assert.Equal(t, "87% match", scoreLabel(&score))
}

func TestPrintJobList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := 92
	p.PrintJobList("Recommended Jobs", []types.Job{
		{ID: 1, Title: "Frontend Engineer", Company: "Acme", MatchScore: &score},
		{ID: 2, Title: "Backend Engineer", Company: "Initech", IsApplied: true},
	})

	out := buf.String()
	assert.Contains(t, out, "Recommended Jobs")
	assert.Contains(t, out, "2 job(s)")
	assert.Contains(t, out, "Frontend Engineer")
	assert.Contains(t, out, "applied")
}

func TestPrintCandidateLeaderboard_CapsOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	candidates := make([]types.CandidateWithScore, 7)
	for i := range candidates {
		candidates[i] = types.CandidateWithScore{
			Candidate: types.Candidate{ID: i + 1, Name: "Candidate"},
		}
	}
	p.PrintCandidateLeaderboard(candidates)

	assert.Contains(t, buf.String(), "and 2 more candidates")
}

func TestPrintApplications_FlagsOfflineCopy(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rows := []types.ApplicationRow{
		{JobTitle: "Frontend Engineer", Company: "Acme", Status: "under_review", Progress: 40},
	}
	p.PrintApplications(rows, true)

	out := buf.String()
	assert.Contains(t, out, "offline copy")
	assert.Contains(t, out, "under_review")
}

func TestPrintAssessment_BarsSurviveBoxWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAssessment(&types.AssessmentResult{
		Score: types.Score{
			Overall:         82,
			SkillsMatch:     88,
			ExperienceDepth: 75,
			EducationMatch:  90,
			PotentialFit:    100,
		},
	})

	out := buf.String()
	assert.True(t, utf8.ValidString(out))

	barLines := 0
	for _, line := range strings.Split(out, "\n") {
		cells := strings.Count(line, "█") + strings.Count(line, "░")
		if cells > 0 {
			barLines++
			assert.Equal(t, barWidth, cells)
		}
		if line != "" {
			assert.Equal(t, boxWidth, utf8.RuneCountInString(line))
		}
	}
	assert.Equal(t, 5, barLines)

	assert.Contains(t, out, " 82 ")
	assert.Contains(t, out, "100 ")
}

func TestPrintAssessment_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAssessment(nil)
	assert.Empty(t, buf.String())
}
