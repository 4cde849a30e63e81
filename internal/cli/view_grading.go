package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/session"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// gradingView collects the 1..4 self-grade and optional notes.
type gradingView struct {
	state *SharedState
	grade int
	notes textarea.Model
}

func newGradingView(state *SharedState) *gradingView {
	ta := textarea.New()
	ta.Placeholder = "What went well? What to improve?"
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(60)
	ta.CharLimit = 2000
	return &gradingView{state: state, notes: ta}
}

func (v *gradingView) Init() tea.Cmd { return nil }

func (v *gradingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.notes, cmd = v.notes.Update(msg)
		return v, cmd
	}

	if keyMsg.Type == tea.KeyCtrlS {
		return v, v.submit()
	}

	if v.notes.Focused() {
		switch keyMsg.Type {
		case tea.KeyTab, tea.KeyEsc:
			v.notes.Blur()
			return v, nil
		}
		var cmd tea.Cmd
		v.notes, cmd = v.notes.Update(keyMsg)
		return v, cmd
	}

	switch keyMsg.String() {
	case "1", "2", "3", "4":
		v.grade = int(keyMsg.Runes[0] - '0')
	case "left", "h":
		v.grade = max(v.grade-1, domain.MinGrade)
	case "right", "l":
		v.grade = min(v.grade+1, domain.MaxGrade)
	case "tab":
		return v, v.notes.Focus()
	case "enter":
		return v, v.submit()
	}
	return v, nil
}

// submit completes the session. A failed history write still shows the
// results, with the error as a notice.
func (v *gradingView) submit() tea.Cmd {
	if !domain.ValidGrade(v.grade) {
		return output(formatter.Dim("Pick a grade from 1 to 4 first."))
	}
	_, err := v.state.Controller.Grade(v.state.Ctx(), v.grade, strings.TrimSpace(v.notes.Value()))
	if err != nil && errors.Is(err, session.ErrInvalidTransition) {
		return output(errorOutput(err))
	}
	next := replaceView(newResultsView(v.state))
	if err != nil {
		return tea.Batch(next, output(errorOutput(fmt.Errorf("history not saved: %w", err))))
	}
	return next
}

func (v *gradingView) View() string {
	var b strings.Builder
	b.WriteString(formatter.Header("Self-grading"))
	b.WriteString("\n")
	b.WriteString(formatter.Dim("How did you do overall?"))
	b.WriteString("\n\n  ")

	for g := domain.MinGrade; g <= domain.MaxGrade; g++ {
		cell := fmt.Sprintf(" %d ", g)
		if g == v.grade {
			cell = formatter.GradeColor(g).Bold(true).Reverse(true).Render(cell)
		} else {
			cell = formatter.Dim(cell)
		}
		b.WriteString(cell + " ")
	}
	b.WriteString("\n  ")
	b.WriteString(formatter.Dim(fmt.Sprintf("%-14s%s", formatter.GradeLabel(domain.MinGrade), formatter.GradeLabel(domain.MaxGrade))))
	b.WriteString("\n")
	if v.grade > 0 {
		b.WriteString("  " + formatter.GradeBadge(&v.grade) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("Notes (optional)"))
	b.WriteString("\n")
	b.WriteString(v.notes.View())
	b.WriteString("\n")
	return b.String()
}

func (v *gradingView) ID() ViewID    { return ViewGrading }
func (v *gradingView) Title() string { return "Grade" }
func (v *gradingView) ShortHelp() []key.Binding {
	if v.notes.Focused() {
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab", "esc"), key.WithHelp("tab", "done with notes")),
			key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "complete")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "grade")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "notes")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "complete")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}
