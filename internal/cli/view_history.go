package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/history"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// historyView lists the most recent sessions with delete and clear.
type historyView struct {
	state   *SharedState
	entries []domain.HistoryEntry
	total   int
	cursor  int
}

func newHistoryView(state *SharedState) *historyView {
	v := &historyView{state: state}
	v.reload()
	return v
}

func (v *historyView) reload() {
	shown, hidden := v.state.App.History.Recent(history.DisplayLimit)
	v.entries = shown
	v.total = len(shown) + hidden
	if v.cursor >= len(v.entries) {
		v.cursor = max(len(v.entries)-1, 0)
	}
}

func (v *historyView) Init() tea.Cmd { return nil }

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.entries)-1 {
				v.cursor++
			}
		case "d", "x", "delete":
			return v, v.deleteSelected()
		case "C":
			if v.total == 0 {
				return v, nil
			}
			return v, pushView(newClearHistoryFormView(v.state, v.total))
		}
	}
	return v, nil
}

func (v *historyView) deleteSelected() tea.Cmd {
	if len(v.entries) == 0 {
		return nil
	}
	e := v.entries[v.cursor]
	err := v.state.App.History.Delete(v.state.Ctx(), e.ID)
	v.reload()
	if err != nil {
		return output(errorOutput(err))
	}
	return output(formatter.Dim("Deleted " + e.ProblemTitle + "."))
}

func (v *historyView) View() string {
	if len(v.entries) == 0 {
		return formatter.Dim("No sessions yet.")
	}

	rows := make([][]string, 0, len(v.entries))
	for i, e := range v.entries {
		marker := " "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸")
		}
		rows = append(rows, append([]string{marker}, formatter.HistoryRow(e)...))
	}
	headers := []string{"", "ID", "DATE", "PROBLEM", "DIFF", "DESIGN", "CODING", "TOTAL", "GRADE"}

	var b strings.Builder
	b.WriteString(formatter.RenderTable(headers, rows))
	if v.total > len(v.entries) {
		b.WriteString(formatter.Dim(fmt.Sprintf("Showing %d of %d sessions", len(v.entries), v.total)))
		b.WriteString("\n")
	}
	if e := v.entries[v.cursor]; strings.TrimSpace(e.Notes) != "" {
		b.WriteString("\n")
		b.WriteString(formatter.IndentWrapped(e.Notes, "  ", max(v.state.Width, 40)))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "History" }
func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
	}
}
