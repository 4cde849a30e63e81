package session

import (
	"testing"
	"time"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/sound"
	"github.com/alexanderramin/leettomato/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	day1 = time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	day2 = time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)
)

func mustTransition(t *testing.T, s State, ev Event, now time.Time) (State, []Command) {
	t.Helper()
	next, cmds, err := Transition(s, ev, now)
	require.NoError(t, err)
	return next, cmds
}

func TestTransition_HappyPath(t *testing.T) {
	p := testutil.TrappingRainWater()
	s := Initial(day1)
	assert.Equal(t, domain.PhaseIdle, s.Phase)
	assert.Equal(t, "2024-01-01", s.Session.Date)

	s, cmds := mustTransition(t, s, SelectProblem{Problem: p}, day2)
	assert.Equal(t, domain.PhaseReady, s.Phase)
	assert.Equal(t, "2024-01-02", s.Session.Date, "selection re-dates the session")
	require.NotNil(t, s.Session.Problem)
	assert.Equal(t, "Trapping Rain Water", s.Session.Problem.Title)
	assert.Empty(t, cmds)

	s, _ = mustTransition(t, s, StartDesign{}, day2)
	assert.Equal(t, domain.PhaseDesign, s.Phase)

	s, _ = mustTransition(t, s, FinishDesign{Time: 125 * time.Second, OverThreshold: false}, day2)
	assert.Equal(t, domain.PhaseCoding, s.Phase)
	assert.Equal(t, 125*time.Second, s.Session.DesignTime)

	s, _ = mustTransition(t, s, FinishCoding{Time: 610 * time.Second, OverThreshold: true}, day2)
	assert.Equal(t, domain.PhaseGrading, s.Phase)
	assert.Equal(t, 610*time.Second, s.Session.CodingTime)
	assert.True(t, s.Session.CodingOverThreshold)
	assert.False(t, s.Session.DesignOverThreshold)

	s, _ = mustTransition(t, s, SetGrade{Grade: 3}, day2)
	s, _ = mustTransition(t, s, SetNotes{Notes: "went well"}, day2)
	assert.Equal(t, domain.PhaseGrading, s.Phase)

	s, cmds = mustTransition(t, s, CompleteGrading{}, day2)
	assert.Equal(t, domain.PhaseComplete, s.Phase)
	require.Len(t, cmds, 2)
	persist, ok := cmds[0].(PersistSession)
	require.True(t, ok)
	require.NotNil(t, persist.Session.Grade)
	assert.Equal(t, 3, *persist.Session.Grade)
	assert.Equal(t, "went well", persist.Session.Notes)
	assert.Equal(t, 735*time.Second, persist.Session.TotalTime())
	assert.Equal(t, PlayCue{Cue: sound.CueComplete}, cmds[1])
}

func TestTransition_ReselectInReady(t *testing.T) {
	s, _ := mustTransition(t, Initial(day1), SelectProblem{Problem: testutil.NewTestProblem("Two Sum")}, day1)
	s, _ = mustTransition(t, s, SelectProblem{Problem: domain.NewFreeformProblem("LRU cache")}, day1)

	assert.Equal(t, domain.PhaseReady, s.Phase)
	assert.Equal(t, "LRU cache", s.Session.Problem.Title)
	assert.False(t, s.Session.Problem.IsLeetCode)
}

func TestTransition_RejectsEventsOutsideTheirPhase(t *testing.T) {
	all := []Event{
		SelectProblem{Problem: testutil.NewTestProblem("Two Sum")},
		StartDesign{},
		FinishDesign{Time: time.Second},
		FinishCoding{Time: time.Second},
		SetGrade{Grade: 2},
		SetNotes{Notes: "x"},
		CompleteGrading{},
	}
	accepts := map[domain.Phase][]string{
		domain.PhaseIdle:     {"select_problem"},
		domain.PhaseReady:    {"select_problem", "start_design"},
		domain.PhaseDesign:   {"finish_design"},
		domain.PhaseCoding:   {"finish_coding"},
		domain.PhaseGrading:  {"set_grade", "set_notes", "complete_grading"},
		domain.PhaseComplete: {},
	}

	for phase, ok := range accepts {
		for _, ev := range all {
			s := State{Phase: phase, Session: testutil.NewTestSession(testutil.NewTestProblem("Two Sum"))}
			next, cmds, err := Transition(s, ev, day1)
			if contains(ok, ev.eventName()) {
				assert.NoError(t, err, "%s should accept %s", phase, ev.eventName())
				continue
			}
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s should reject %s", phase, ev.eventName())
			assert.Equal(t, s, next, "state is unchanged on rejection")
			assert.Nil(t, cmds)
		}
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func TestTransition_CompletePersistsExactlyOnce(t *testing.T) {
	s := State{Phase: domain.PhaseGrading, Session: testutil.NewTestSession(testutil.NewTestProblem("Two Sum"))}

	var persisted int
	for i := 0; i < 3; i++ {
		next, cmds, _ := Transition(s, CompleteGrading{}, day1)
		for _, c := range cmds {
			if _, ok := c.(PersistSession); ok {
				persisted++
			}
		}
		s = next
	}
	assert.Equal(t, 1, persisted)
	assert.Equal(t, domain.PhaseComplete, s.Phase)
}

func TestTransition_SetGradeValidatesRange(t *testing.T) {
	s := State{Phase: domain.PhaseGrading, Session: testutil.NewTestSession(testutil.NewTestProblem("Two Sum"))}

	for _, g := range []int{0, 5, -1} {
		_, _, err := Transition(s, SetGrade{Grade: g}, day1)
		assert.ErrorIs(t, err, ErrInvalidTransition, "grade %d", g)
	}
	for g := domain.MinGrade; g <= domain.MaxGrade; g++ {
		next, _, err := Transition(s, SetGrade{Grade: g}, day1)
		require.NoError(t, err)
		assert.Equal(t, g, *next.Session.Grade)
	}
}

func TestTransition_ResetFromAnyPhase(t *testing.T) {
	phases := []domain.Phase{
		domain.PhaseIdle, domain.PhaseReady, domain.PhaseDesign,
		domain.PhaseCoding, domain.PhaseGrading, domain.PhaseComplete,
	}
	for _, phase := range phases {
		t.Run(string(phase), func(t *testing.T) {
			s := State{
				Phase:   phase,
				Session: testutil.NewTestSession(testutil.TrappingRainWater(), testutil.WithGrade(4), testutil.WithNotes("n")),
			}
			next, cmds, err := Transition(s, Reset{}, day2)
			require.NoError(t, err)
			assert.Equal(t, Initial(day2), next)
			assert.Equal(t, "2024-01-02", next.Session.Date, "reset takes a fresh date")
			assert.Nil(t, next.Session.Problem)
			assert.Equal(t, []Command{ResetTimers{}}, cmds)
		})
	}
}

func TestTransition_DoesNotMutateInput(t *testing.T) {
	s := State{Phase: domain.PhaseDesign, Session: testutil.NewTestSession(testutil.NewTestProblem("Two Sum"))}
	before := s

	_, _, err := Transition(s, FinishDesign{Time: time.Hour, OverThreshold: true}, day1)
	require.NoError(t, err)
	assert.Equal(t, before, s)
}
