package cli

import (
	"strings"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/clipboard"
	"github.com/alexanderramin/leettomato/internal/export"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// resultsView shows the completed session and exports it as a TSV row.
type resultsView struct {
	state         *SharedState
	includeHeader bool
	copied        bool
}

func newResultsView(state *SharedState) *resultsView {
	return &resultsView{state: state}
}

func (v *resultsView) Init() tea.Cmd { return nil }

func (v *resultsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch keyMsg.String() {
	case "c", "y":
		return v, v.copy()
	case "h":
		v.includeHeader = !v.includeHeader
		v.copied = false
	case "n", "enter":
		if err := v.state.Controller.Reset(v.state.Ctx()); err != nil {
			return v, output(errorOutput(err))
		}
		return v, replaceView(newHomeView(v.state))
	case "v":
		return v, pushView(newHistoryView(v.state))
	}
	return v, nil
}

// exportText is the row copy places on the clipboard.
func (v *resultsView) exportText() string {
	row := export.FormatSession(v.state.Controller.State().Session)
	if v.includeHeader {
		return export.WithHeader(row)
	}
	return row
}

func (v *resultsView) copy() tea.Cmd {
	ok, err := clipboard.Copy(v.state.App.Clipboard, v.exportText())
	v.copied = ok
	if err != nil {
		return output(errorOutput(err))
	}
	return nil
}

func (v *resultsView) View() string {
	s := v.state.Controller.State().Session

	var b strings.Builder
	b.WriteString(formatter.FormatSessionSummary(s))
	b.WriteString("\n\n")

	toggle := "[ ]"
	if v.includeHeader {
		toggle = "[x]"
	}
	b.WriteString(formatter.Dim(toggle + " Include header row"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatExportPreview(s, v.includeHeader))
	b.WriteString("\n")
	if v.copied {
		b.WriteString(formatter.StyleGreen.Render("Copied!"))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *resultsView) ID() ViewID    { return ViewResults }
func (v *resultsView) Title() string { return "Results" }
func (v *resultsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy to clipboard")),
		key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "toggle header")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new session")),
		key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "history")),
	}
}
