package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg returns to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one. The session
// flow (search, timer, grading, results) moves forward this way so that
// esc never walks back into a finished phase.
type replaceViewMsg struct {
	view View
}

// cmdOutputMsg carries a one-line notice shown under the header until the
// next key press.
type cmdOutputMsg struct {
	output string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// refreshViewMsg asks every view on the stack to reload from the stores.
type refreshViewMsg struct{}

// tickMsg redraws a running timer.
type tickMsg time.Time

const redrawInterval = 100 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(redrawInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

func output(text string) tea.Cmd {
	return func() tea.Msg { return cmdOutputMsg{output: text} }
}
