package testutil

import (
	"sync"
	"time"

	"github.com/alexanderramin/leettomato/internal/domain"
)

// Problem options
type ProblemOption func(*domain.CompressedProblem)

func WithFrontendID(id string) ProblemOption {
	return func(p *domain.CompressedProblem) {
		p.FrontendID = id
	}
}

func WithDifficulty(d domain.Difficulty) ProblemOption {
	return func(p *domain.CompressedProblem) {
		p.Difficulty = d
	}
}

func WithSlug(slug string) ProblemOption {
	return func(p *domain.CompressedProblem) {
		p.Slug = slug
	}
}

func WithTopics(topics ...string) ProblemOption {
	return func(p *domain.CompressedProblem) {
		p.Topics = topics
	}
}

// NewTestProblem returns a catalog problem, defaulting to LeetCode #1.
func NewTestProblem(title string, opts ...ProblemOption) domain.Problem {
	c := domain.CompressedProblem{
		Title:      title,
		FrontendID: "1",
		Difficulty: domain.DifficultyEasy,
		Slug:       "two-sum",
		Topics:     []string{"Array", "Hash Table"},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c.Decompress()
}

// TrappingRainWater is catalog problem #42.
func TrappingRainWater() domain.Problem {
	return NewTestProblem("Trapping Rain Water",
		WithFrontendID("42"),
		WithDifficulty(domain.DifficultyHard),
		WithSlug("trapping-rain-water"),
		WithTopics("Array", "Two Pointers", "Dynamic Programming", "Stack", "Monotonic Stack"),
	)
}

// Session options
type SessionOption func(*domain.SessionData)

func WithTimes(design, coding time.Duration) SessionOption {
	return func(s *domain.SessionData) {
		s.DesignTime = design
		s.CodingTime = coding
	}
}

func WithGrade(g int) SessionOption {
	return func(s *domain.SessionData) {
		s.Grade = &g
	}
}

func WithNotes(notes string) SessionOption {
	return func(s *domain.SessionData) {
		s.Notes = notes
	}
}

func WithOverThreshold(design, coding bool) SessionOption {
	return func(s *domain.SessionData) {
		s.DesignOverThreshold = design
		s.CodingOverThreshold = coding
	}
}

func WithDate(date string) SessionOption {
	return func(s *domain.SessionData) {
		s.Date = date
	}
}

// NewTestSession returns a completed session for p dated 2024-01-01.
func NewTestSession(p domain.Problem, opts ...SessionOption) domain.SessionData {
	s := domain.SessionData{
		Problem:    &p,
		DesignTime: 5 * time.Minute,
		CodingTime: 15 * time.Minute,
		Date:       "2024-01-01",
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// FakeClock is a manually advanced clock. Safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock starts at 2024-01-01 09:00 UTC.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set moves the clock to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}
