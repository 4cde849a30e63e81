package catalog

import (
	"strings"

	"github.com/alexanderramin/leettomato/internal/domain"
)

// Selection is the state of the problem search box: the query text, its
// results and the problem the user has settled on.
type Selection struct {
	catalog  *Catalog
	query    string
	results  []domain.Problem
	selected *domain.Problem
}

func NewSelection(c *Catalog) *Selection {
	return &Selection{catalog: c}
}

func (s *Selection) Query() string            { return s.query }
func (s *Selection) Results() []domain.Problem { return s.results }

// Selected returns the chosen problem, if any.
func (s *Selection) Selected() (domain.Problem, bool) {
	if s.selected == nil {
		return domain.Problem{}, false
	}
	return *s.selected, true
}

// SetQuery replaces the query text. Editing the query drops any selection.
func (s *Selection) SetQuery(q string) {
	if q == s.query {
		return
	}
	s.query = q
	s.selected = nil
	s.results = s.catalog.Search(q)
}

// Select fixes p as the selection and mirrors its title into the query.
func (s *Selection) Select(p domain.Problem) {
	s.query = p.Title
	s.results = s.catalog.Search(p.Title)
	s.selected = &p
}

// SelectFreeform selects the trimmed query text as a freeform problem.
// Returns false when the query is blank.
func (s *Selection) SelectFreeform() bool {
	if strings.TrimSpace(s.query) == "" {
		return false
	}
	p := Freeform(s.query)
	s.selected = &p
	return true
}

// Clear empties the query and the selection.
func (s *Selection) Clear() {
	s.query = ""
	s.results = nil
	s.selected = nil
}
