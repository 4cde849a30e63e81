// Package export renders practice sessions as tab-separated rows for pasting
// into a spreadsheet.
package export

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/leettomato/internal/domain"
)

var columns = []string{
	"Date",
	"Problem",
	"URL",
	"Difficulty",
	"Design Time",
	"Coding Time",
	"Total Time",
	"Design Time Exceeded",
	"Coding Time Exceeded",
	"Grade",
	"Topics",
	"Notes",
}

var whitespaceRun = regexp.MustCompile(`[\t\r\n]+`)

// Header returns the column names matching FormatSession.
func Header() string {
	return strings.Join(columns, "\t")
}

// FormatSession renders one session as a tab-separated line. Sessions without
// a problem render as "".
func FormatSession(s domain.SessionData) string {
	if s.Problem == nil {
		return ""
	}
	p := s.Problem

	grade := ""
	if s.Grade != nil {
		grade = strconv.Itoa(*s.Grade)
	}

	return strings.Join([]string{
		s.Date,
		p.Label(),
		domain.StrOrEmpty(p.URL),
		domain.DifficultyOrEmpty(p.Difficulty).Label(),
		FormatDuration(s.DesignTime),
		FormatDuration(s.CodingTime),
		FormatDuration(s.TotalTime()),
		flag(s.DesignOverThreshold),
		flag(s.CodingOverThreshold),
		grade,
		strings.Join(p.Topics, ", "),
		sanitize(s.Notes),
	}, "\t")
}

// FormatEntry renders a stored history entry with the same columns.
func FormatEntry(e domain.HistoryEntry) string {
	return FormatSession(e.Session())
}

// FormatEntries renders entries one per line, optionally preceded by Header.
func FormatEntries(entries []domain.HistoryEntry, header bool) string {
	lines := make([]string, 0, len(entries)+1)
	if header {
		lines = append(lines, Header())
	}
	for _, e := range entries {
		lines = append(lines, FormatEntry(e))
	}
	return strings.Join(lines, "\n")
}

// WithHeader prefixes a formatted row with the header line.
func WithHeader(row string) string {
	return Header() + "\n" + row
}

// FormatDuration renders whole minutes and seconds as "Xm Ys", dropping the
// seconds segment when it is zero ("Xm").
func FormatDuration(d time.Duration) string {
	total := int64(d / time.Second)
	minutes := total / 60
	seconds := total % 60
	if seconds == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dm %ds", minutes, seconds)
}

// FormatClock renders a duration as zero-padded "MM:SS"; minutes grow past
// two digits rather than rolling into hours.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func flag(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}

func sanitize(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}
