package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/leettomato/internal/catalog"
	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// homeView is the problem picker: a search box over the catalog, the
// matching problems and the phase targets for the next session.
type homeView struct {
	state  *SharedState
	sel    *catalog.Selection
	input  textinput.Model
	cursor int
}

func newHomeView(state *SharedState) *homeView {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.Placeholder = "Problem name, number or leetcode.com URL"
	ti.CharLimit = 200

	return &homeView{
		state: state,
		sel:   catalog.NewSelection(state.App.Catalog),
		input: ti,
	}
}

func (v *homeView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}

	switch keyMsg.Type {
	case tea.KeyEnter:
		return v, v.confirm()
	case tea.KeyUp:
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil
	case tea.KeyDown:
		if v.cursor < len(v.sel.Results())-1 {
			v.cursor++
		}
		return v, nil
	case tea.KeyEsc:
		v.sel.Clear()
		v.input.Reset()
		v.cursor = 0
		return v, nil
	case tea.KeyCtrlF:
		if !v.sel.SelectFreeform() {
			return v, output(formatter.Dim("Type a problem name first."))
		}
		return v, nil
	case tea.KeyCtrlS:
		return v, pushView(newSettingsFormView(v.state))
	case tea.KeyCtrlR:
		return v, pushView(newHistoryView(v.state))
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(keyMsg)
	v.sel.SetQuery(v.input.Value())
	if v.cursor >= len(v.sel.Results()) {
		v.cursor = max(len(v.sel.Results())-1, 0)
	}
	return v, cmd
}

// confirm starts the design phase once a problem is selected; otherwise it
// selects the highlighted result, or the typed text when nothing matched.
func (v *homeView) confirm() tea.Cmd {
	if p, ok := v.sel.Selected(); ok {
		return v.start(p)
	}
	if results := v.sel.Results(); len(results) > 0 {
		v.sel.Select(results[v.cursor])
		v.input.SetValue(v.sel.Query())
		v.input.CursorEnd()
		v.cursor = 0
		return nil
	}
	v.sel.SelectFreeform()
	return nil
}

func (v *homeView) start(p domain.Problem) tea.Cmd {
	ctl := v.state.Controller
	ctx := v.state.Ctx()
	if err := ctl.SelectProblem(ctx, p); err != nil {
		return output(errorOutput(err))
	}
	if err := ctl.StartDesign(ctx); err != nil {
		return output(errorOutput(err))
	}
	return replaceView(newTimerView(v.state))
}

func (v *homeView) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header("Problem"))
	b.WriteString("\n")
	b.WriteString(formatter.StyleHeader.Render("› ") + v.input.View())
	b.WriteString("\n\n")

	results := v.sel.Results()
	for i, p := range results {
		marker := "  "
		line := p.DisplayTitle()
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
			line = formatter.Bold(line)
		}
		fmt.Fprintf(&b, "%s%s  %s  %s\n", marker, line, formatter.DifficultyBadge(p.Difficulty), formatter.Topics(p.Topics))
	}
	if len(results) == 0 && strings.TrimSpace(v.sel.Query()) != "" {
		b.WriteString(formatter.Dim("No catalog match. enter or ctrl+f practices it as a custom problem."))
		b.WriteString("\n")
	}

	if p, ok := v.sel.Selected(); ok {
		b.WriteString("\n")
		b.WriteString(formatter.Dim("Selected: ") + formatter.FormatProblemLine(p))
		b.WriteString("\n")
		if p.URL != nil {
			b.WriteString(formatter.Dim(*p.URL))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim(formatter.FormatInstructions(v.state.App.Settings.Get())))
	b.WriteString("\n")
	return b.String()
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "Practice" }
func (v *homeView) ShortHelp() []key.Binding {
	enter := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select"))
	if _, ok := v.sel.Selected(); ok {
		enter = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start design"))
	}
	return []key.Binding{
		enter,
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "move")),
		key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "custom problem")),
		key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "settings")),
		key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "history")),
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func errorOutput(err error) string {
	return formatter.StyleRed.Render("Error: ") + err.Error()
}
