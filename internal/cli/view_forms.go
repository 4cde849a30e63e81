package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/leettomato/internal/cli/formatter"
	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/export"
	"github.com/alexanderramin/leettomato/internal/settings"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const (
	maxOffsetMinutes = 120
	maxOffsetSeconds = 59
)

type settingsFields struct {
	design string
	coding string
	sound  bool
}

// newSettingsFormView edits both phase targets and the sound toggle.
func newSettingsFormView(state *SharedState) View {
	cur := state.App.Settings.Get()
	fields := &settingsFields{
		design: strconv.Itoa(cur.DesignThresholdMin),
		coding: strconv.Itoa(cur.CodingThresholdMin),
		sound:  cur.SoundEnabled,
	}

	form := newThemedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Design phase target (minutes)").
				Description(fmt.Sprintf("%d-%d", domain.MinThresholdMin, domain.MaxThresholdMin)).
				Value(&fields.design).
				Validate(validateWholeNumber),
			huh.NewInput().
				Title("Coding phase target (minutes)").
				Description(fmt.Sprintf("%d-%d", domain.MinThresholdMin, domain.MaxThresholdMin)).
				Value(&fields.coding).
				Validate(validateWholeNumber),
			huh.NewConfirm().
				Title("Sound cues").
				Affirmative("On").
				Negative("Off").
				Value(&fields.sound),
		),
	)

	return newWizardView(state, "Settings", form, func() tea.Cmd {
		return func() tea.Msg { return applySettings(state, fields) }
	})
}

// applySettings clamps the minute targets and saves the whole settings
// object. Blank or non-numeric input keeps the current value.
func applySettings(state *SharedState, f *settingsFields) tea.Msg {
	next := state.App.Settings.Get()
	next.DesignThresholdMin = settings.ClampMinutes(parseIntOr(f.design, next.DesignThresholdMin))
	next.CodingThresholdMin = settings.ClampMinutes(parseIntOr(f.coding, next.CodingThresholdMin))
	next.SoundEnabled = f.sound

	if err := state.App.Settings.Replace(state.Ctx(), next); err != nil {
		return cmdOutputMsg{output: errorOutput(err)}
	}
	return cmdOutputMsg{output: formatter.StyleGreen.Render("Saved. ") + formatter.Dim(formatter.FormatInstructions(next))}
}

type offsetFields struct {
	minutes string
	seconds string
}

// newOffsetFormView credits time spent before the timer was started.
func newOffsetFormView(state *SharedState) View {
	fields := &offsetFields{}
	form := newThemedForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes already spent").
				Placeholder("0").
				Value(&fields.minutes).
				Validate(validateIntRange(0, maxOffsetMinutes)),
			huh.NewInput().
				Title("Seconds").
				Placeholder("0").
				Value(&fields.seconds).
				Validate(validateIntRange(0, maxOffsetSeconds)),
		),
	)
	return newWizardView(state, "Add time", form, func() tea.Cmd {
		return func() tea.Msg { return applyOffset(state, fields) }
	})
}

// applyOffset adds the entered time to the paused phase timer. A zero
// offset changes nothing.
func applyOffset(state *SharedState, f *offsetFields) tea.Msg {
	m := min(max(parseIntOr(f.minutes, 0), 0), maxOffsetMinutes)
	s := min(max(parseIntOr(f.seconds, 0), 0), maxOffsetSeconds)
	d := time.Duration(m)*time.Minute + time.Duration(s)*time.Second
	if d <= 0 {
		return cmdOutputMsg{output: formatter.Dim("No time added.")}
	}
	if err := state.Controller.AddOffset(d); err != nil {
		return cmdOutputMsg{output: errorOutput(err)}
	}
	return cmdOutputMsg{output: formatter.Dim("Added " + export.FormatClock(d) + ".")}
}

// newClearHistoryFormView asks before deleting every session.
func newClearHistoryFormView(state *SharedState, total int) View {
	confirmed := false
	form := newThemedForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete all %d sessions?", total)).
				Affirmative("Clear all").
				Negative("Keep").
				Value(&confirmed),
		),
	)
	return newWizardView(state, "Clear history", form, func() tea.Cmd {
		return func() tea.Msg { return applyClearHistory(state, confirmed) }
	})
}

func applyClearHistory(state *SharedState, confirmed bool) tea.Msg {
	if !confirmed {
		return cmdOutputMsg{output: formatter.Dim("Cancelled.")}
	}
	if err := state.App.History.Clear(state.Ctx()); err != nil {
		return cmdOutputMsg{output: errorOutput(err)}
	}
	return cmdOutputMsg{output: formatter.Dim("History cleared.")}
}
