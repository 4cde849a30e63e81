package session

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/history"
	"github.com/alexanderramin/leettomato/internal/repository"
	"github.com/alexanderramin/leettomato/internal/sound"
	"github.com/alexanderramin/leettomato/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type cueRecorder struct {
	mu   sync.Mutex
	cues []sound.Cue
}

func (r *cueRecorder) Play(c sound.Cue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cues = append(r.cues, c)
}

func (r *cueRecorder) Cues() []sound.Cue {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]sound.Cue(nil), r.cues...)
}

func (r *cueRecorder) Count(c sound.Cue) int {
	n := 0
	for _, got := range r.Cues() {
		if got == c {
			n++
		}
	}
	return n
}

type fixedSettings struct{ s domain.AppSettings }

func (f *fixedSettings) Get() domain.AppSettings { return f.s }

type harness struct {
	ctl      *Controller
	clock    *testutil.FakeClock
	cues     *cueRecorder
	history  *history.Service
	settings *fixedSettings
	kv       *testutil.FailingKV
}

func newHarness(t *testing.T, tick time.Duration) *harness {
	t.Helper()
	kv := &testutil.FailingKV{Inner: repository.NewSQLiteKVRepo(testutil.NewTestDB(t))}
	h := &harness{
		clock:    testutil.NewFakeClock(),
		cues:     &cueRecorder{},
		history:  history.NewService(context.Background(), kv, nil),
		settings: &fixedSettings{s: domain.DefaultSettings()},
		kv:       kv,
	}
	h.ctl = NewController(Config{
		History:      h.history,
		Settings:     h.settings,
		Cues:         h.cues,
		Clock:        h.clock,
		TickInterval: tick,
	})
	t.Cleanup(h.ctl.Close)
	return h
}

func TestController_FullSession(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.TrappingRainWater()))
	require.NoError(t, h.ctl.StartDesign(ctx))
	assert.Equal(t, domain.PhaseDesign, h.ctl.Phase())
	assert.False(t, h.ctl.ActiveTimer().IsRunning(), "entering design does not start the timer")

	require.NoError(t, h.ctl.StartTimer())
	h.clock.Advance(2*time.Minute + 5*time.Second)
	require.NoError(t, h.ctl.FinishPhase(ctx))
	assert.Equal(t, domain.PhaseCoding, h.ctl.Phase())

	require.NoError(t, h.ctl.StartTimer())
	h.clock.Advance(10*time.Minute + 10*time.Second)
	require.NoError(t, h.ctl.FinishPhase(ctx))
	assert.Equal(t, domain.PhaseGrading, h.ctl.Phase())
	assert.Nil(t, h.ctl.ActiveTimer())

	entry, err := h.ctl.Grade(ctx, 3, "went well")
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, domain.PhaseComplete, h.ctl.Phase())

	s := h.ctl.State().Session
	assert.Equal(t, 125*time.Second, s.DesignTime)
	assert.Equal(t, 610*time.Second, s.CodingTime)
	assert.Equal(t, 735*time.Second, s.TotalTime())
	assert.False(t, s.DesignOverThreshold)
	assert.False(t, s.CodingOverThreshold)

	assert.Equal(t, 1, h.history.Len())
	assert.Equal(t, int64(735000), h.history.Entries()[0].TotalMs)
	assert.Same(t, entry, h.ctl.LastEntry())
	assert.Equal(t, []sound.Cue{sound.CueStart, sound.CueStart, sound.CueComplete}, h.cues.Cues())
}

func TestController_StartDesignRequiresProblem(t *testing.T) {
	h := newHarness(t, time.Hour)
	err := h.ctl.StartDesign(context.Background())
	assert.ErrorIs(t, err, ErrNoProblem)
	assert.Equal(t, domain.PhaseIdle, h.ctl.Phase())
}

func TestController_PausedTimeIsNotCounted(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))

	require.NoError(t, h.ctl.StartTimer())
	h.clock.Advance(30 * time.Second)
	require.NoError(t, h.ctl.PauseTimer())
	h.clock.Advance(10 * time.Minute)
	require.NoError(t, h.ctl.ToggleTimer())
	assert.True(t, h.ctl.ActiveTimer().IsRunning())
	h.clock.Advance(30 * time.Second)
	require.NoError(t, h.ctl.FinishPhase(ctx))

	assert.Equal(t, time.Minute, h.ctl.State().Session.DesignTime)
}

func TestController_FinishReadsTimeAfterPausing(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))
	require.NoError(t, h.ctl.StartTimer())
	h.clock.Advance(11 * time.Minute)

	require.NoError(t, h.ctl.FinishPhase(ctx))

	s := h.ctl.State().Session
	assert.Equal(t, 11*time.Minute, s.DesignTime)
	assert.True(t, s.DesignOverThreshold, "default design threshold is 10m")
	assert.False(t, h.ctl.ActiveTimer().IsRunning(), "coding timer waits for start")
}

func TestController_AddOffsetOnlyWhilePaused(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()

	assert.ErrorIs(t, h.ctl.AddOffset(time.Minute), ErrInvalidTransition)

	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))
	require.NoError(t, h.ctl.AddOffset(2*time.Minute+30*time.Second))
	assert.Equal(t, 150*time.Second, h.ctl.ActiveTimer().Elapsed())

	require.NoError(t, h.ctl.StartTimer())
	assert.ErrorIs(t, h.ctl.AddOffset(time.Minute), ErrTimerRunning)
}

func TestController_TimerActionsOutsideTimedPhases(t *testing.T) {
	h := newHarness(t, time.Hour)
	assert.ErrorIs(t, h.ctl.StartTimer(), ErrInvalidTransition)
	assert.ErrorIs(t, h.ctl.PauseTimer(), ErrInvalidTransition)
	assert.ErrorIs(t, h.ctl.FinishPhase(context.Background()), ErrInvalidTransition)
	assert.Empty(t, h.cues.Cues())
}

func TestController_StartWhileRunningPlaysNoCue(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))

	require.NoError(t, h.ctl.StartTimer())
	require.NoError(t, h.ctl.StartTimer())
	assert.Equal(t, 1, h.cues.Count(sound.CueStart))
}

func TestController_InvalidGradeLeavesStateUntouched(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))
	require.NoError(t, h.ctl.FinishPhase(ctx))
	require.NoError(t, h.ctl.FinishPhase(ctx))

	entry, err := h.ctl.Grade(ctx, 7, "notes")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Nil(t, entry)
	assert.Equal(t, domain.PhaseGrading, h.ctl.Phase())
	assert.Nil(t, h.ctl.State().Session.Grade)
	assert.Empty(t, h.ctl.State().Session.Notes)
	assert.Equal(t, 0, h.history.Len())
}

func TestController_GradeTwiceDoesNotDuplicateHistory(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))
	require.NoError(t, h.ctl.FinishPhase(ctx))
	require.NoError(t, h.ctl.FinishPhase(ctx))

	_, err := h.ctl.Grade(ctx, 2, "")
	require.NoError(t, err)
	_, err = h.ctl.Grade(ctx, 2, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, 1, h.history.Len())
}

func TestController_PersistFailureStillCompletes(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))
	require.NoError(t, h.ctl.FinishPhase(ctx))
	require.NoError(t, h.ctl.FinishPhase(ctx))

	h.kv.FailSet = true
	entry, err := h.ctl.Grade(ctx, 4, "")
	assert.ErrorIs(t, err, testutil.ErrInjected)
	require.NotNil(t, entry)
	assert.Equal(t, domain.PhaseComplete, h.ctl.Phase())
	assert.Equal(t, 1, h.history.Len(), "entry kept in memory")
	assert.Equal(t, 1, h.cues.Count(sound.CueComplete))
}

func TestController_ResetZeroesTimers(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()
	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))
	require.NoError(t, h.ctl.StartTimer())
	h.clock.Advance(time.Minute)
	timer := h.ctl.ActiveTimer()

	h.clock.Advance(24 * time.Hour)
	require.NoError(t, h.ctl.Reset(ctx))

	assert.Equal(t, domain.PhaseIdle, h.ctl.Phase())
	assert.Nil(t, h.ctl.State().Session.Problem)
	assert.Equal(t, "2024-01-02", h.ctl.State().Session.Date)
	assert.False(t, timer.IsRunning())
	assert.Equal(t, time.Duration(0), timer.Elapsed())
	assert.Nil(t, h.ctl.LastEntry())
}

func TestController_ThresholdsRefreshOnStartDesign(t *testing.T) {
	h := newHarness(t, time.Hour)
	ctx := context.Background()
	h.settings.s = domain.AppSettings{DesignThresholdMin: 1, CodingThresholdMin: 2}

	require.NoError(t, h.ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, h.ctl.StartDesign(ctx))
	assert.Equal(t, time.Minute, h.ctl.ActiveTimer().Threshold())

	require.NoError(t, h.ctl.FinishPhase(ctx))
	assert.Equal(t, 2*time.Minute, h.ctl.ActiveTimer().Threshold())
}

func TestController_WarningCueOnThresholdCrossing(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"))

	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	clock := testutil.NewFakeClock()
	cues := &cueRecorder{}
	ctl := NewController(Config{
		History:      history.NewService(context.Background(), kv, nil),
		Settings:     &fixedSettings{s: domain.AppSettings{DesignThresholdMin: 1, CodingThresholdMin: 1}},
		Cues:         cues,
		Clock:        clock,
		TickInterval: time.Millisecond,
	})
	ctx := context.Background()
	require.NoError(t, ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))
	require.NoError(t, ctl.StartDesign(ctx))
	require.NoError(t, ctl.StartTimer())

	clock.Advance(61 * time.Second)
	assert.Eventually(t, func() bool { return cues.Count(sound.CueWarning) == 1 },
		2*time.Second, 5*time.Millisecond)

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, cues.Count(sound.CueWarning), "fires once per run")

	ctl.Close()
}

func TestController_ObserverReceivesEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	kv := repository.NewSQLiteKVRepo(testutil.NewTestDB(t))
	ctl := NewController(Config{
		History:      history.NewService(context.Background(), kv, nil),
		Settings:     &fixedSettings{s: domain.DefaultSettings()},
		Clock:        testutil.NewFakeClock(),
		TickInterval: time.Hour,
		Observer:     NewLogUseCaseObserver(logger),
	})
	defer ctl.Close()

	ctx := context.Background()
	_ = ctl.StartDesign(ctx)
	require.NoError(t, ctl.SelectProblem(ctx, testutil.NewTestProblem("Two Sum")))

	out := buf.String()
	assert.Contains(t, out, "use_case=start_design")
	assert.Contains(t, out, "success=false")
	assert.Contains(t, out, "use_case=select_problem")
	assert.Contains(t, out, `problem="Leetcode 1 Two Sum"`)
}
