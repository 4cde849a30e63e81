package domain

import "time"

// DateLayout is the calendar date format stored on sessions.
const DateLayout = "2006-01-02"

// SessionData is the record a practice session builds up phase by phase.
type SessionData struct {
	Problem             *Problem
	DesignTime          time.Duration
	CodingTime          time.Duration
	DesignOverThreshold bool
	CodingOverThreshold bool
	Grade               *int
	Notes               string
	Date                string
}

// NewSessionData returns an empty session dated at now (UTC calendar date).
func NewSessionData(now time.Time) SessionData {
	return SessionData{Date: FormatDate(now)}
}

// TotalTime is the sum of the design and coding phases.
func (s SessionData) TotalTime() time.Duration {
	return s.DesignTime + s.CodingTime
}

// FormatDate renders the UTC calendar date of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// HistoryEntry is a persisted, denormalized snapshot of a completed session.
// Durations are stored as milliseconds.
type HistoryEntry struct {
	ID                  string      `json:"id"`
	Date                string      `json:"date"`
	ProblemTitle        string      `json:"problemTitle"`
	ProblemID           *string     `json:"problemId"`
	IsLeetCode          bool        `json:"isLeetCode"`
	Difficulty          *Difficulty `json:"difficulty"`
	URL                 *string     `json:"url,omitempty"`
	Topics              []string    `json:"topics,omitempty"`
	DesignMs            int64       `json:"designTime"`
	CodingMs            int64       `json:"codingTime"`
	TotalMs             int64       `json:"totalTime"`
	DesignOverThreshold bool        `json:"designOverThreshold,omitempty"`
	CodingOverThreshold bool        `json:"codingOverThreshold,omitempty"`
	Grade               *int        `json:"grade"`
	Notes               string      `json:"notes"`
}

// NewHistoryEntry copies a session into an independent entry. The session
// must have a problem.
func NewHistoryEntry(id string, s SessionData) HistoryEntry {
	p := s.Problem
	e := HistoryEntry{
		ID:                  id,
		Date:                s.Date,
		ProblemTitle:        p.Title,
		IsLeetCode:          p.IsLeetCode,
		DesignMs:            s.DesignTime.Milliseconds(),
		CodingMs:            s.CodingTime.Milliseconds(),
		TotalMs:             s.TotalTime().Milliseconds(),
		DesignOverThreshold: s.DesignOverThreshold,
		CodingOverThreshold: s.CodingOverThreshold,
		Notes:               s.Notes,
	}
	if p.FrontendID != nil {
		v := *p.FrontendID
		e.ProblemID = &v
	}
	if p.Difficulty != nil {
		v := *p.Difficulty
		e.Difficulty = &v
	}
	if p.URL != nil {
		v := *p.URL
		e.URL = &v
	}
	if len(p.Topics) > 0 {
		e.Topics = append([]string(nil), p.Topics...)
	}
	if s.Grade != nil {
		v := *s.Grade
		e.Grade = &v
	}
	return e
}

func (e HistoryEntry) DesignTime() time.Duration {
	return time.Duration(e.DesignMs) * time.Millisecond
}

func (e HistoryEntry) CodingTime() time.Duration {
	return time.Duration(e.CodingMs) * time.Millisecond
}

func (e HistoryEntry) TotalTime() time.Duration {
	return time.Duration(e.TotalMs) * time.Millisecond
}

// Session rebuilds the exportable session view of an entry.
func (e HistoryEntry) Session() SessionData {
	p := Problem{
		Title:      e.ProblemTitle,
		FrontendID: e.ProblemID,
		Difficulty: e.Difficulty,
		URL:        e.URL,
		Topics:     e.Topics,
		IsLeetCode: e.IsLeetCode,
	}
	if p.Topics == nil {
		p.Topics = []string{}
	}
	return SessionData{
		Problem:             &p,
		DesignTime:          e.DesignTime(),
		CodingTime:          e.CodingTime(),
		DesignOverThreshold: e.DesignOverThreshold,
		CodingOverThreshold: e.CodingOverThreshold,
		Grade:               e.Grade,
		Notes:               e.Notes,
		Date:                e.Date,
	}
}
