// Package observability provides formatted terminal output for the portal
// pages.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/HanDonoo/recruitment-frontend/internal/htmltext"
	"github.com/HanDonoo/recruitment-frontend/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of score and progress bars
	barWidth = 20
)

// Printer handles formatted page output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", boxLine(title))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %s │\n", boxLine(line))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// boxLine fits a line to the box's inner width. Width is counted in runes,
// not bytes, so bar glyphs and separators never get split or misalign the
// borders.
func boxLine(line string) string {
	runes := []rune(line)
	if len(runes) > boxWidth-4 {
		runes = append(runes[:boxWidth-7], '.', '.', '.')
	}
	return string(runes) + strings.Repeat(" ", boxWidth-4-len(runes))
}

// bar renders a fixed-width meter for a 0-100 value.
func bar(value int) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	filled := value * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// scoreLabel coerces an optional score for display only.
func scoreLabel(score *int) string {
	if score == nil {
		return "not assessed"
	}
	return fmt.Sprintf("%d%% match", *score)
}

// PrintJobList outputs a compact listing of jobs.
func (p *Printer) PrintJobList(title string, jobs []types.Job) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d job(s)\n\n", len(jobs)))

	for i, job := range jobs {
		applied := ""
		if job.IsApplied {
			applied = "  [applied]"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s - %s%s\n", job.ID, job.Title, job.Company, applied))
		sb.WriteString(fmt.Sprintf("    %s · %s", job.Location, job.Salary))
		if job.MatchScore != nil {
			sb.WriteString(fmt.Sprintf(" · %d%% match", *job.MatchScore))
		}
		sb.WriteString("\n")
		if len(job.Tags) > 0 {
			tags := strings.Join(job.Tags, ", ")
			if r := []rune(tags); len(r) > 44 {
				tags = string(r[:41]) + "..."
			}
			sb.WriteString(fmt.Sprintf("    [%s]\n", tags))
		}
		if i < len(jobs)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobDetail outputs a full job card, flattening the HTML description for
// the terminal.
func (p *Printer) PrintJobDetail(job *types.Job) {
	if job == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s\n", job.Title))
	sb.WriteString(fmt.Sprintf("%s · %s\n", job.Company, job.Location))
	sb.WriteString(fmt.Sprintf("Salary:     %s\n", job.Salary))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", job.Experience))
	sb.WriteString(fmt.Sprintf("Applicants: %d\n", job.Applicants))
	if len(job.Tags) > 0 {
		sb.WriteString(fmt.Sprintf("Tags:       %s\n", strings.Join(job.Tags, ", ")))
	}

	if job.Description != "" {
		text, err := htmltext.Flatten(job.Description)
		if err != nil {
			text = job.Description
		}
		sb.WriteString("\n")
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	p.printBox("JOB DETAILS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidateLeaderboard outputs the ranked candidate list for a job.
func (p *Printer) PrintCandidateLeaderboard(candidates []types.CandidateWithScore) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Top candidates (%d), sorted by match score\n\n", len(candidates)))

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		sb.WriteString(fmt.Sprintf("#%d  %s (%s)\n", i+1, c.Name, scoreLabel(c.Score)))
		sb.WriteString(fmt.Sprintf("    %s, %s · %s\n", c.University, c.Major, c.Status))
		if len(c.Skills) > 0 {
			skills := strings.Join(c.Skills, ", ")
			if r := []rune(skills); len(r) > 40 {
				skills = string(r[:37]) + "..."
			}
			sb.WriteString(fmt.Sprintf("    [%s]\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(candidates)-maxItemsToShow))
	}

	p.printBox("CANDIDATE LEADERBOARD", sb.String())
}

// PrintApplicantList outputs a compact applicant listing.
func (p *Printer) PrintApplicantList(title string, applicants []types.Candidate) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d applicant(s)\n\n", len(applicants)))

	count := min(len(applicants), maxItemsToShow)
	for i := 0; i < count; i++ {
		a := applicants[i]
		sb.WriteString(fmt.Sprintf("#%d  %s", a.ID, a.Name))
		if a.DesiredRole != "" {
			sb.WriteString(fmt.Sprintf("  (%s)", a.DesiredRole))
		}
		sb.WriteString("\n")
	}
	if len(applicants) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(applicants)-maxItemsToShow))
	}

	p.printBox(strings.ToUpper(title), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCandidateProfile outputs one applicant's profile.
func (p *Printer) PrintCandidateProfile(c *types.Candidate) {
	if c == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s <%s>\n", c.Name, c.Email))
	sb.WriteString(fmt.Sprintf("%s, %s (%s)\n", c.University, c.Major, c.Year))
	if c.DesiredRole != "" {
		sb.WriteString(fmt.Sprintf("Looking for: %s", c.DesiredRole))
		if c.DesiredLocation != "" {
			sb.WriteString(fmt.Sprintf(" in %s", c.DesiredLocation))
		}
		sb.WriteString("\n")
	}
	if len(c.Skills) > 0 {
		sb.WriteString(fmt.Sprintf("Skills: %s\n", strings.Join(c.Skills, ", ")))
	}

	p.printBox("CANDIDATE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAssessmentHistory outputs a candidate's past assessments, one line per
// job.
func (p *Printer) PrintAssessmentHistory(history []types.AssessmentResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d assessment(s)\n\n", len(history)))

	count := min(len(history), maxItemsToShow)
	for i := 0; i < count; i++ {
		h := history[i]
		sb.WriteString(fmt.Sprintf("Job #%d  %s %3d  %s\n", h.JobID, bar(h.Score.Overall), h.Score.Overall, h.CreatedAt))
	}
	if len(history) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more", len(history)-maxItemsToShow))
	}

	p.printBox("ASSESSMENT HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAssessment outputs the scored assessment with per-dimension bars.
func (p *Printer) PrintAssessment(result *types.AssessmentResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall      %s %3d\n", bar(result.Score.Overall), result.Score.Overall))
	sb.WriteString(fmt.Sprintf("Skills       %s %3d\n", bar(result.Score.SkillsMatch), result.Score.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Experience   %s %3d\n", bar(result.Score.ExperienceDepth), result.Score.ExperienceDepth))
	sb.WriteString(fmt.Sprintf("Education    %s %3d\n", bar(result.Score.EducationMatch), result.Score.EducationMatch))
	sb.WriteString(fmt.Sprintf("Potential    %s %3d\n", bar(result.Score.PotentialFit), result.Score.PotentialFit))

	if result.Summary != "" {
		sb.WriteString("\n")
		sb.WriteString(result.Summary)
		sb.WriteString("\n")
	}

	if len(result.AssessmentHighlights) > 0 {
		sb.WriteString("\nHighlights:\n")
		for _, h := range result.AssessmentHighlights {
			sb.WriteString(fmt.Sprintf("  • %s\n", h))
		}
	}
	if len(result.RecommendationsForCandidate) > 0 {
		sb.WriteString("\nRecommendations:\n")
		for _, r := range result.RecommendationsForCandidate {
			sb.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}

	p.printBox("CV ASSESSMENT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintApplications outputs the application tracker with progress bars.
func (p *Printer) PrintApplications(rows []types.ApplicationRow, fromFallback bool) {
	var sb strings.Builder
	if fromFallback {
		sb.WriteString("(offline copy, may be out of date)\n\n")
	}
	sb.WriteString(fmt.Sprintf("%d application(s)\n\n", len(rows)))

	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%s - %s\n", row.JobTitle, row.Company))
		sb.WriteString(fmt.Sprintf("  %s %3d%%  %s\n", bar(row.Progress), row.Progress, row.Status))
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MY APPLICATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDashboard outputs the organizer analytics view.
func (p *Printer) PrintDashboard(stats types.Stats, trend []types.TrendPoint, statusCounts map[string]int, companies []types.CompanyCount) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs: %d   Applicants: %d   Applications: %d\n", stats.Jobs, stats.Applicants, stats.Applications))

	if len(trend) > 0 {
		sb.WriteString("\nApplications by month:\n")
		for _, point := range trend {
			sb.WriteString(fmt.Sprintf("  %s  %d\n", point.Month, point.Count))
		}
	}

	if len(statusCounts) > 0 {
		sb.WriteString("\nBy status:\n")
		for _, status := range []string{
			types.StatusApplied, types.StatusUnderReview, types.StatusInterviewScheduled,
			types.StatusFinalReview, types.StatusAccepted, types.StatusRejected,
		} {
			if count := statusCounts[status]; count > 0 {
				sb.WriteString(fmt.Sprintf("  %-20s %d\n", status, count))
			}
		}
	}

	if len(companies) > 0 {
		sb.WriteString("\nTop companies:\n")
		for _, company := range companies {
			sb.WriteString(fmt.Sprintf("  %-20s %d\n", company.Company, company.Count))
		}
	}

	p.printBox("ANALYTICS DASHBOARD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintInterviews outputs the interview schedule.
func (p *Printer) PrintInterviews(interviews []types.Interview) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d interview(s)\n\n", len(interviews)))

	for i, interview := range interviews {
		sb.WriteString(fmt.Sprintf("#%d  application %d · %s\n", interview.ID, interview.ApplicationID, interview.Type))
		sb.WriteString(fmt.Sprintf("    %s · %s\n", interview.ScheduledTime, interview.Status))
		if interview.LocationURL != nil && *interview.LocationURL != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", *interview.LocationURL))
		}
		if i < len(interviews)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("INTERVIEWS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintError outputs a failed page state with its retry affordance.
func (p *Printer) PrintError(pageTitle, message string) {
	var sb strings.Builder
	sb.WriteString(message)
	sb.WriteString("\n\nRun the command again to retry.")
	p.printBox(pageTitle, sb.String())
}
