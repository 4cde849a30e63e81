package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const thresholdBarWidth = 40

// timerView runs one timed phase. The same view type serves design and
// coding; it is replaced by a fresh one when the phase advances.
type timerView struct {
	state *SharedState
	phase domain.Phase
}

func newTimerView(state *SharedState) *timerView {
	return &timerView{state: state, phase: state.Controller.Phase()}
}

func (v *timerView) Init() tea.Cmd {
	if t := v.state.Controller.ActiveTimer(); t != nil && t.IsRunning() {
		return tick()
	}
	return nil
}

func (v *timerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if t := v.state.Controller.ActiveTimer(); t != nil && t.IsRunning() {
			return v, tick()
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case " ", "s":
			return v, v.toggle()
		case "n", "enter":
			return v, v.next()
		case "o":
			if t := v.state.Controller.ActiveTimer(); t != nil && t.IsRunning() {
				return v, output(formatter.Dim("Pause the timer to add time already spent."))
			}
			return v, pushView(newOffsetFormView(v.state))
		case "r":
			if err := v.state.Controller.Reset(v.state.Ctx()); err != nil {
				return v, output(errorOutput(err))
			}
			return v, replaceView(newHomeView(v.state))
		}
	}
	return v, nil
}

func (v *timerView) toggle() tea.Cmd {
	ctl := v.state.Controller
	if err := ctl.ToggleTimer(); err != nil {
		return output(errorOutput(err))
	}
	if t := ctl.ActiveTimer(); t != nil && t.IsRunning() {
		return tick()
	}
	return nil
}

// next records the phase and moves to coding or to self-grading.
func (v *timerView) next() tea.Cmd {
	ctl := v.state.Controller
	if err := ctl.FinishPhase(v.state.Ctx()); err != nil {
		return output(errorOutput(err))
	}
	if ctl.Phase() == domain.PhaseGrading {
		return replaceView(newGradingView(v.state))
	}
	return replaceView(newTimerView(v.state))
}

func (v *timerView) View() string {
	ctl := v.state.Controller
	st := ctl.State()
	t := ctl.ActiveTimer()
	if t == nil {
		return formatter.Dim("No phase is running.")
	}

	var b strings.Builder
	label := "Design Phase"
	if v.phase == domain.PhaseCoding {
		label = "Coding Phase"
	}
	b.WriteString(formatter.Header(label))
	b.WriteString("\n")
	if p := st.Session.Problem; p != nil {
		b.WriteString(formatter.FormatProblemLine(*p))
		b.WriteString("\n")
	}
	if v.phase == domain.PhaseCoding {
		b.WriteString(formatter.Dim("Design took " + formatter.Clock(st.Session.DesignTime, st.Session.DesignOverThreshold)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	elapsed := t.Elapsed()
	over := t.IsOverThreshold()
	status := formatter.StyleYellow.Render("❚❚ paused")
	if t.IsRunning() {
		status = formatter.StyleGreen.Render("▶ running")
	}
	fmt.Fprintf(&b, "  %s   %s\n", formatter.Clock(elapsed, over), status)
	fmt.Fprintf(&b, "  %s %s\n", formatter.RenderThresholdBar(elapsed, t.Threshold(), thresholdBarWidth),
		formatter.Dim(fmt.Sprintf("target %d min", int(t.Threshold().Minutes()))))
	if over {
		b.WriteString("  " + formatter.StyleRed.Render("Over target") + "\n")
	}
	return b.String()
}

func (v *timerView) ID() ViewID { return ViewTimer }
func (v *timerView) Title() string {
	if v.phase == domain.PhaseCoding {
		return "Coding"
	}
	return "Design"
}

func (v *timerView) ShortHelp() []key.Binding {
	toggle := "start"
	if t := v.state.Controller.ActiveTimer(); t != nil && t.IsRunning() {
		toggle = "pause"
	}
	next := "start coding"
	if v.phase == domain.PhaseCoding {
		next = "complete"
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", toggle)),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", next)),
		key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "add time")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "abandon")),
	}
}
