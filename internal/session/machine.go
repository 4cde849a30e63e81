// Package session drives a practice session through its phases.
//
// The phase machine is a pure function over (State, Event); side effects it
// requires are returned as Commands for the Controller to execute.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/sound"
)

var (
	// ErrInvalidTransition is returned for an event the current phase does
	// not accept.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrNoProblem is returned when the design phase is started without a
	// selected problem.
	ErrNoProblem = errors.New("no problem selected")
)

// State is the machine's phase plus the session record it has built.
type State struct {
	Phase   domain.Phase
	Session domain.SessionData
}

// Initial returns the idle state with an empty session dated at now.
func Initial(now time.Time) State {
	return State{Phase: domain.PhaseIdle, Session: domain.NewSessionData(now)}
}

// Event is an input to Transition.
type Event interface {
	eventName() string
}

type (
	SelectProblem struct{ Problem domain.Problem }
	StartDesign   struct{}
	FinishDesign  struct {
		Time          time.Duration
		OverThreshold bool
	}
	FinishCoding struct {
		Time          time.Duration
		OverThreshold bool
	}
	SetGrade        struct{ Grade int }
	SetNotes        struct{ Notes string }
	CompleteGrading struct{}
	Reset           struct{}
)

func (SelectProblem) eventName() string   { return "select_problem" }
func (StartDesign) eventName() string     { return "start_design" }
func (FinishDesign) eventName() string    { return "finish_design" }
func (FinishCoding) eventName() string    { return "finish_coding" }
func (SetGrade) eventName() string        { return "set_grade" }
func (SetNotes) eventName() string        { return "set_notes" }
func (CompleteGrading) eventName() string { return "complete_grading" }
func (Reset) eventName() string           { return "reset" }

// Command is a side effect requested by a transition.
type Command interface {
	command()
}

type (
	// PersistSession asks for the completed session to be written to history.
	PersistSession struct{ Session domain.SessionData }
	// PlayCue asks for a sound cue.
	PlayCue struct{ Cue sound.Cue }
	// ResetTimers asks for both phase accumulators to be zeroed.
	ResetTimers struct{}
)

func (PersistSession) command() {}
func (PlayCue) command()        {}
func (ResetTimers) command()    {}

// transitions lists, per event, the phases that accept it. Reset is accepted
// from every phase and handled separately.
var transitions = map[string][]domain.Phase{
	"select_problem":   {domain.PhaseIdle, domain.PhaseReady},
	"start_design":     {domain.PhaseReady},
	"finish_design":    {domain.PhaseDesign},
	"finish_coding":    {domain.PhaseCoding},
	"set_grade":        {domain.PhaseGrading},
	"set_notes":        {domain.PhaseGrading},
	"complete_grading": {domain.PhaseGrading},
}

// Allowed reports whether phase accepts ev.
func Allowed(phase domain.Phase, ev Event) bool {
	if _, ok := ev.(Reset); ok {
		return true
	}
	for _, p := range transitions[ev.eventName()] {
		if p == phase {
			return true
		}
	}
	return false
}

// Transition applies ev to s. On error s is returned unchanged.
func Transition(s State, ev Event, now time.Time) (State, []Command, error) {
	if !Allowed(s.Phase, ev) {
		return s, nil, fmt.Errorf("%s in phase %s: %w", ev.eventName(), s.Phase, ErrInvalidTransition)
	}

	next := State{Phase: s.Phase, Session: s.Session}
	switch e := ev.(type) {
	case SelectProblem:
		p := e.Problem
		next.Phase = domain.PhaseReady
		next.Session.Problem = &p
		next.Session.Date = domain.FormatDate(now)
	case StartDesign:
		next.Phase = domain.PhaseDesign
	case FinishDesign:
		next.Phase = domain.PhaseCoding
		next.Session.DesignTime = e.Time
		next.Session.DesignOverThreshold = e.OverThreshold
	case FinishCoding:
		next.Phase = domain.PhaseGrading
		next.Session.CodingTime = e.Time
		next.Session.CodingOverThreshold = e.OverThreshold
	case SetGrade:
		if !domain.ValidGrade(e.Grade) {
			return s, nil, fmt.Errorf("grade %d outside %d..%d: %w", e.Grade, domain.MinGrade, domain.MaxGrade, ErrInvalidTransition)
		}
		g := e.Grade
		next.Session.Grade = &g
	case SetNotes:
		next.Session.Notes = e.Notes
	case CompleteGrading:
		next.Phase = domain.PhaseComplete
		return next, []Command{
			PersistSession{Session: next.Session},
			PlayCue{Cue: sound.CueComplete},
		}, nil
	case Reset:
		return Initial(now), []Command{ResetTimers{}}, nil
	}
	return next, nil, nil
}
