package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/quiz"
)

func quizDifficulty(name string) string {
	if name == "" {
		return Dim("--")
	}
	d := domain.DifficultyFromName(name)
	return DifficultyColor(d).Render(d.Name())
}

// FormatQuizList renders one page of the quiz service's problem list.
func FormatQuizList(resp quiz.ListResponse) string {
	if len(resp.Problems) == 0 {
		return Dim("No problems matched.") + "\n"
	}
	rows := make([][]string, 0, len(resp.Problems))
	for _, p := range resp.Problems {
		rows = append(rows, []string{
			strconv.Itoa(p.ID),
			p.Title,
			quizDifficulty(p.Difficulty),
			Topics(p.Topics),
		})
	}
	out := RenderTable([]string{"ID", "TITLE", "DIFFICULTY", "TOPICS"}, rows)
	end := resp.Offset + len(resp.Problems)
	return out + Dim(fmt.Sprintf("%d-%d of %d", resp.Offset+1, end, resp.Total)) + "\n"
}

// FormatQuizProblem renders a full problem statement.
func FormatQuizProblem(p quiz.Problem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(fmt.Sprintf("%d. %s", p.ID, p.Title)), quizDifficulty(p.Difficulty))
	if len(p.Topics) > 0 {
		b.WriteString(Topics(p.Topics) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(IndentWrapped(p.Description, "", 80))
	b.WriteString("\n")

	for _, ex := range p.Examples {
		fmt.Fprintf(&b, "\n%s\n%s\n", Header(fmt.Sprintf("Example %d", ex.Number)), ex.Text)
	}
	if len(p.Constraints) > 0 {
		b.WriteString("\n" + Header("Constraints") + "\n")
		for _, c := range p.Constraints {
			b.WriteString("  • " + c + "\n")
		}
	}
	if len(p.Hints) > 0 {
		b.WriteString("\n" + Header("Hints") + "\n")
		for i, h := range p.Hints {
			b.WriteString(IndentWrapped(h, fmt.Sprintf("  %d. ", i+1), 80) + "\n")
		}
	}
	if p.Python3Snippet != "" {
		b.WriteString("\n" + Header("Starter code") + "\n")
		b.WriteString(StyleBlue.Render(p.Python3Snippet) + "\n")
	}
	return b.String()
}

// FormatTopics lists the quiz service's topic tags one per line.
func FormatTopics(topics []string) string {
	if len(topics) == 0 {
		return Dim("No topics.") + "\n"
	}
	return Header("Topics") + "\n" + strings.Join(topics, "\n") + "\n"
}

// FormatGradeResult renders the rubric of a graded answer.
func FormatGradeResult(resp quiz.GradeResponse) string {
	var b strings.Builder
	criteria := resp.Result.Criteria()
	for _, c := range criteria {
		mark := StyleRed.Render("✖")
		if c.Score {
			mark = StyleGreen.Render("✔")
		}
		fmt.Fprintf(&b, "%s %s\n", mark, Bold(c.Name))
		if c.Comment != "" {
			b.WriteString(IndentWrapped(c.Comment, "    ", 80) + "\n")
		}
	}
	if fb := strings.TrimSpace(resp.Result.OverallFeedback); fb != "" {
		b.WriteString("\n" + IndentWrapped(fb, "", 80) + "\n")
	}
	title := fmt.Sprintf("Problem %d: %d/%d", resp.ProblemID, resp.Result.Passed(), len(criteria))
	return RenderBox(title, strings.TrimRight(b.String(), "\n"))
}

// FormatSmoke renders the quiz service health check.
func FormatSmoke(resp quiz.SmokeResponse) string {
	if resp.OK {
		out := StyleGreen.Render("● quiz service OK")
		if resp.ModelReply != "" {
			out += "  " + Dim(resp.ModelReply)
		}
		return out + "\n"
	}
	return StyleRed.Render("● quiz service unhealthy") + "  " + resp.Error + "\n"
}
