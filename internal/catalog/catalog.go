// Package catalog resolves search queries against the static LeetCode
// problem list.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/problems.json
var embedded []byte

// MaxTextResults caps title-substring matches.
const MaxTextResults = 10

// schemaJSON describes the compressed catalog file.
const schemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["t", "fid", "d", "s"],
    "properties": {
      "t":   {"type": "string", "minLength": 1},
      "fid": {"type": "string", "pattern": "^[0-9]+$"},
      "d":   {"type": "string", "enum": ["E", "M", "H"]},
      "s":   {"type": "string", "pattern": "^[a-z0-9-]+$"},
      "tp":  {"type": "array", "items": {"type": "string"}}
    }
  }
}`

var (
	slugPattern   = regexp.MustCompile(`(?i)leetcode\.com/problems/([a-z0-9-]+)`)
	numberPattern = regexp.MustCompile(`^\s*#?(\d+)\s*$`)
)

// ValidationError lists the schema violations of a catalog file.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed: %s", strings.Join(e.Errors, "; "))
}

// Catalog is an immutable, insertion-ordered problem list. Records are
// decompressed only when returned.
type Catalog struct {
	records []domain.CompressedProblem
	bySlug  map[string]int
	byID    map[string]int
}

// New indexes records. The first record wins on duplicate slugs or ids.
func New(records []domain.CompressedProblem) *Catalog {
	c := &Catalog{
		records: records,
		bySlug:  make(map[string]int, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for i, r := range records {
		if _, ok := c.bySlug[r.Slug]; !ok {
			c.bySlug[r.Slug] = i
		}
		if _, ok := c.byID[r.FrontendID]; !ok {
			c.byID[r.FrontendID] = i
		}
	}
	return c
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads and validates a catalog file. An empty path yields the bundled
// catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse validates data against the catalog schema and decodes it.
func Parse(data []byte) (*Catalog, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, &ValidationError{Errors: msgs}
	}

	var records []domain.CompressedProblem
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(records), nil
}

// Len is the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// BySlug returns the problem with the given slug.
func (c *Catalog) BySlug(slug string) (domain.Problem, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return domain.Problem{}, false
	}
	return c.records[i].Decompress(), true
}

// ByFrontendID returns the problem with the given public number.
func (c *Catalog) ByFrontendID(id string) (domain.Problem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Problem{}, false
	}
	return c.records[i].Decompress(), true
}

// Search resolves query, first match wins:
//  1. a leetcode.com/problems/{slug} URL matches that slug exactly;
//  2. "#42" or "42" matches that frontend id exactly;
//  3. otherwise a case-insensitive title substring match, up to
//     MaxTextResults in catalog order.
//
// A blank query returns nil.
func (c *Catalog) Search(query string) []domain.Problem {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	if slug, ok := ExtractSlug(query); ok {
		if p, found := c.BySlug(slug); found {
			return []domain.Problem{p}
		}
		return nil
	}

	if m := numberPattern.FindStringSubmatch(query); m != nil {
		if p, found := c.ByFrontendID(m[1]); found {
			return []domain.Problem{p}
		}
		return nil
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	var out []domain.Problem
	for _, r := range c.records {
		if strings.Contains(strings.ToLower(r.Title), needle) {
			out = append(out, r.Decompress())
			if len(out) == MaxTextResults {
				break
			}
		}
	}
	return out
}

// Freeform wraps the trimmed text into a problem outside the catalog.
func Freeform(title string) domain.Problem {
	return domain.NewFreeformProblem(strings.TrimSpace(title))
}

// ExtractSlug pulls the lowercased problem slug out of a leetcode.com URL.
func ExtractSlug(s string) (string, bool) {
	m := slugPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// BuildURL returns the canonical problem URL for slug.
func BuildURL(slug string) string {
	return domain.BuildProblemURL(slug)
}
