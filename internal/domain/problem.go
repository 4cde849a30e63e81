package domain

import "fmt"

// LeetCodeURLPrefix is the base for catalog problem links.
const LeetCodeURLPrefix = "https://leetcode.com/problems/"

// CompressedProblem is one record of the static catalog as shipped on disk.
type CompressedProblem struct {
	Title      string     `json:"t"`
	FrontendID string     `json:"fid"`
	Difficulty Difficulty `json:"d"`
	Slug       string     `json:"s"`
	Topics     []string   `json:"tp"`
}

// Problem is the practice target of a session. Catalog problems have every
// optional field populated; freeform problems leave them nil.
type Problem struct {
	Title      string      `json:"title"`
	FrontendID *string     `json:"frontendId"`
	Difficulty *Difficulty `json:"difficulty"`
	Slug       *string     `json:"slug"`
	Topics     []string    `json:"topics"`
	URL        *string     `json:"url"`
	IsLeetCode bool        `json:"isLeetCode"`
}

// Decompress expands a catalog record into a Problem.
func (c CompressedProblem) Decompress() Problem {
	fid := c.FrontendID
	diff := c.Difficulty
	slug := c.Slug
	url := BuildProblemURL(c.Slug)
	topics := make([]string, len(c.Topics))
	copy(topics, c.Topics)
	return Problem{
		Title:      c.Title,
		FrontendID: &fid,
		Difficulty: &diff,
		Slug:       &slug,
		Topics:     topics,
		URL:        &url,
		IsLeetCode: true,
	}
}

// NewFreeformProblem wraps user-typed text into a problem that is not in the catalog.
func NewFreeformProblem(title string) Problem {
	return Problem{
		Title:  title,
		Topics: []string{},
	}
}

// BuildProblemURL returns the canonical problem URL for a slug.
func BuildProblemURL(slug string) string {
	return LeetCodeURLPrefix + slug + "/"
}

// Label returns "Leetcode {id} {title}" for catalog problems, otherwise the bare title.
func (p Problem) Label() string {
	if p.IsLeetCode && p.FrontendID != nil && *p.FrontendID != "" {
		return fmt.Sprintf("Leetcode %s %s", *p.FrontendID, p.Title)
	}
	return p.Title
}

// DisplayTitle returns "#{id} {title}" for catalog problems, otherwise the bare title.
func (p Problem) DisplayTitle() string {
	if p.IsLeetCode && p.FrontendID != nil && *p.FrontendID != "" {
		return fmt.Sprintf("#%s %s", *p.FrontendID, p.Title)
	}
	return p.Title
}
