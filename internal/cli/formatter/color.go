package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DifficultyColor maps a catalog difficulty to its badge style.
func DifficultyColor(d domain.Difficulty) lipgloss.Style {
	switch d {
	case domain.DifficultyEasy:
		return StyleGreen
	case domain.DifficultyMedium:
		return StyleYellow
	case domain.DifficultyHard:
		return StyleRed
	default:
		return StyleDim
	}
}

// DifficultyBadge renders "Easy"/"Medium"/"Hard" in the difficulty color,
// or a dim placeholder for freeform problems.
func DifficultyBadge(d *domain.Difficulty) string {
	if d == nil || !d.Valid() {
		return StyleDim.Render("--")
	}
	return DifficultyColor(*d).Render(d.Name())
}

// GradeLabels are the self-grading scale captions, indexed by grade-1.
var GradeLabels = [domain.MaxGrade]string{"Struggled", "Partial", "Solved", "Nailed it"}

// GradeLabel returns the caption for g, or "" when g is off the scale.
func GradeLabel(g int) string {
	if !domain.ValidGrade(g) {
		return ""
	}
	return GradeLabels[g-1]
}

// GradeColor maps a grade to its badge style.
func GradeColor(g int) lipgloss.Style {
	switch g {
	case 1:
		return StyleRed
	case 2:
		return StyleYellow
	case 3:
		return StyleBlue
	case 4:
		return StyleGreen
	default:
		return StyleDim
	}
}

// GradeBadge renders "3/4 Solved" in the grade color.
func GradeBadge(g *int) string {
	if g == nil || !domain.ValidGrade(*g) {
		return StyleDim.Render("--")
	}
	return GradeColor(*g).Render(fmt.Sprintf("%d/%d %s", *g, domain.MaxGrade, GradeLabel(*g)))
}

// OverBadge marks a phase that ran past its threshold.
func OverBadge(over bool) string {
	if over {
		return StyleRed.Render("▲ over")
	}
	return ""
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
