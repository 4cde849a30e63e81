package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/export"
)

// FormatInstructions is the one-line reminder of both phase targets.
func FormatInstructions(s domain.AppSettings) string {
	return fmt.Sprintf("Design phase: %d min target | Coding phase: %d min target",
		s.DesignThresholdMin, s.CodingThresholdMin)
}

// FormatProblemLine renders "#42 Trapping Rain Water  Hard" for catalog
// problems and just the title for freeform ones.
func FormatProblemLine(p domain.Problem) string {
	if !p.IsLeetCode {
		return Bold(p.Title) + "  " + Dim("(custom)")
	}
	return fmt.Sprintf("%s %s  %s", Dim("#"+domain.StrOrEmpty(p.FrontendID)), Bold(p.Title), DifficultyBadge(p.Difficulty))
}

// FormatSearchResults lists catalog lookup results.
func FormatSearchResults(query string, results []domain.Problem) string {
	if len(results) == 0 {
		return Dim(fmt.Sprintf("No catalog match for %q. It can still be practiced as a custom problem.", query)) + "\n"
	}
	rows := make([][]string, 0, len(results))
	for _, p := range results {
		rows = append(rows, []string{
			domain.StrOrEmpty(p.FrontendID),
			p.Title,
			DifficultyBadge(p.Difficulty),
			Topics(p.Topics),
		})
	}
	return RenderTable([]string{"#", "TITLE", "DIFFICULTY", "TOPICS"}, rows)
}

// FormatSessionSummary renders the results card of a completed session.
func FormatSessionSummary(s domain.SessionData) string {
	var b strings.Builder
	if s.Problem != nil {
		b.WriteString(FormatProblemLine(*s.Problem))
		b.WriteString("\n")
		if s.Problem.URL != nil {
			b.WriteString(Dim(*s.Problem.URL))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	line := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-8s", label)), value)
	}
	line("Design", strings.TrimSpace(Clock(s.DesignTime, s.DesignOverThreshold)+" "+OverBadge(s.DesignOverThreshold)))
	line("Coding", strings.TrimSpace(Clock(s.CodingTime, s.CodingOverThreshold)+" "+OverBadge(s.CodingOverThreshold)))
	line("Total", Clock(s.TotalTime(), false))
	line("Grade", GradeBadge(s.Grade))

	if s.Problem != nil && len(s.Problem.Topics) > 0 {
		line("Topics", Topics(s.Problem.Topics))
	}
	if notes := strings.TrimSpace(s.Notes); notes != "" {
		b.WriteString("\n")
		b.WriteString(IndentWrapped(notes, "  ", 72))
		b.WriteString("\n")
	}
	return RenderBox("Session complete", strings.TrimRight(b.String(), "\n"))
}

// FormatExportPreview shows the TSV row that copy would place on the clipboard.
func FormatExportPreview(s domain.SessionData, header bool) string {
	row := export.FormatSession(s)
	if header {
		row = export.WithHeader(row)
	}
	return Dim(strings.ReplaceAll(row, "\t", " │ "))
}
