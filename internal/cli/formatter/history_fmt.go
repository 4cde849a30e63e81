package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/export"
)

// HistoryRow is the display cells of one history entry.
func HistoryRow(e domain.HistoryEntry) []string {
	title := e.ProblemTitle
	if e.ProblemID != nil {
		title = "#" + *e.ProblemID + " " + title
	}
	design := export.FormatDuration(e.DesignTime())
	if e.DesignOverThreshold {
		design = StyleRed.Render(design)
	}
	coding := export.FormatDuration(e.CodingTime())
	if e.CodingOverThreshold {
		coding = StyleRed.Render(coding)
	}
	return []string{
		TruncID(e.ID),
		e.Date,
		title,
		DifficultyBadge(e.Difficulty),
		design,
		coding,
		export.FormatDuration(e.TotalTime()),
		GradeBadge(e.Grade),
	}
}

var historyHeaders = []string{"ID", "DATE", "PROBLEM", "DIFF", "DESIGN", "CODING", "TOTAL", "GRADE"}

// FormatHistory renders shown entries out of total, with a
// "Showing N of M sessions" footer when some are hidden.
func FormatHistory(shown []domain.HistoryEntry, total int) string {
	if total == 0 || len(shown) == 0 {
		return Dim("No sessions yet.") + "\n"
	}
	rows := make([][]string, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, HistoryRow(e))
	}

	var b strings.Builder
	b.WriteString(Header("Recent sessions"))
	b.WriteString("\n")
	b.WriteString(RenderTable(historyHeaders, rows))
	if total > len(shown) {
		b.WriteString(Dim(fmt.Sprintf("Showing %d of %d sessions", len(shown), total)))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatHistoryDetail renders one entry with its notes.
func FormatHistoryDetail(e domain.HistoryEntry) string {
	return FormatSessionSummary(e.Session())
}
