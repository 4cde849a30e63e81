package quiz

// ProblemSummary is one row of the problem list.
type ProblemSummary struct {
	ID         int      `json:"id"`
	SourceID   string   `json:"source_id"`
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Difficulty string   `json:"difficulty"`
	Topics     []string `json:"topics"`
}

// Problem is the full problem statement.
type Problem struct {
	ProblemSummary
	Source         string    `json:"source"`
	Description    string    `json:"description"`
	Examples       []Example `json:"examples"`
	Constraints    []string  `json:"constraints"`
	Hints          []string  `json:"hints"`
	Python3Snippet string    `json:"python3_snippet"`
}

type Example struct {
	Number int    `json:"example_num"`
	Text   string `json:"example_text"`
}

// ListParams filters GET /api/problems. Zero values are omitted.
type ListParams struct {
	Q          string
	Difficulty string
	Topic      string
	Limit      int
	Offset     int
}

type ListResponse struct {
	Problems []ProblemSummary `json:"problems"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// CriterionResult is one pass/fail rubric line.
type CriterionResult struct {
	Score   bool   `json:"score"`
	Comment string `json:"comment"`
}

type GradingResult struct {
	PatternIdentified  CriterionResult `json:"pattern_identified"`
	SolutionWorks      CriterionResult `json:"solution_works"`
	ComplexityAnalysis CriterionResult `json:"complexity_analysis"`
	OptimalSolution    CriterionResult `json:"optimal_solution"`
	OverallFeedback    string          `json:"overall_feedback"`
}

// Criteria returns the rubric lines in display order.
func (g GradingResult) Criteria() []NamedCriterion {
	return []NamedCriterion{
		{Name: "Pattern identified", CriterionResult: g.PatternIdentified},
		{Name: "Solution works", CriterionResult: g.SolutionWorks},
		{Name: "Complexity analysis", CriterionResult: g.ComplexityAnalysis},
		{Name: "Optimal solution", CriterionResult: g.OptimalSolution},
	}
}

// Passed counts criteria scored true.
func (g GradingResult) Passed() int {
	n := 0
	for _, c := range g.Criteria() {
		if c.Score {
			n++
		}
	}
	return n
}

type NamedCriterion struct {
	Name string
	CriterionResult
}

type GradeRequest struct {
	ProblemID int    `json:"problem_id"`
	Answer    string `json:"answer"`
}

type GradeResponse struct {
	ProblemID int           `json:"problem_id"`
	Result    GradingResult `json:"result"`
}

type SmokeResponse struct {
	OK         bool   `json:"ok"`
	ModelReply string `json:"model_reply,omitempty"`
	Error      string `json:"error,omitempty"`
}
