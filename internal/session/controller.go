package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/alexanderramin/leettomato/internal/domain"
	"github.com/alexanderramin/leettomato/internal/sound"
	"github.com/alexanderramin/leettomato/internal/timer"
)

// ErrTimerRunning is returned when an offset is added to a running timer.
var ErrTimerRunning = errors.New("timer is running")

// HistoryRecorder stores completed sessions.
type HistoryRecorder interface {
	Add(ctx context.Context, session domain.SessionData) (*domain.HistoryEntry, error)
}

// SettingsSource supplies the current thresholds.
type SettingsSource interface {
	Get() domain.AppSettings
}

// CuePlayer plays sound cues.
type CuePlayer interface {
	Play(c sound.Cue)
}

type noCues struct{}

func (noCues) Play(sound.Cue) {}

// Config wires a Controller. History and Settings are required.
type Config struct {
	History      HistoryRecorder
	Settings     SettingsSource
	Cues         CuePlayer
	Clock        timer.Clock
	TickInterval time.Duration
	Logger       *slog.Logger
	Observer     UseCaseObserver
}

// Controller owns one practice session: the phase machine state, the design
// and coding accumulators, and the side effects transitions request.
// Safe for concurrent use.
type Controller struct {
	history  HistoryRecorder
	settings SettingsSource
	cues     CuePlayer
	clock    timer.Clock
	logger   *slog.Logger
	observer UseCaseObserver

	design *timer.Accumulator
	coding *timer.Accumulator

	mu    sync.Mutex
	state State
	last  *domain.HistoryEntry
}

// NewController returns a controller in the idle phase.
func NewController(cfg Config) *Controller {
	c := &Controller{
		history:  cfg.History,
		settings: cfg.Settings,
		cues:     cfg.Cues,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}
	if c.cues == nil {
		c.cues = noCues{}
	}
	if c.clock == nil {
		c.clock = timer.SystemClock
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.observer == nil {
		c.observer = NoopUseCaseObserver{}
	}

	s := c.settings.Get()
	warn := func() { c.cues.Play(sound.CueWarning) }
	c.design = timer.New(timer.Options{
		Threshold:          s.DesignThreshold(),
		OnThresholdCrossed: warn,
		Clock:              c.clock,
		TickInterval:       cfg.TickInterval,
	})
	c.coding = timer.New(timer.Options{
		Threshold:          s.CodingThreshold(),
		OnThresholdCrossed: warn,
		Clock:              c.clock,
		TickInterval:       cfg.TickInterval,
	})
	c.state = Initial(c.clock.Now())
	return c
}

// State returns a snapshot of the machine state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Phase returns the current phase.
func (c *Controller) Phase() domain.Phase {
	return c.State().Phase
}

// LastEntry returns the history entry written by the most recent completed
// session, or nil.
func (c *Controller) LastEntry() *domain.HistoryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// ActiveTimer returns the accumulator for the current phase, or nil outside
// the design and coding phases.
func (c *Controller) ActiveTimer() *timer.Accumulator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timerFor(c.state.Phase)
}

func (c *Controller) timerFor(p domain.Phase) *timer.Accumulator {
	switch p {
	case domain.PhaseDesign:
		return c.design
	case domain.PhaseCoding:
		return c.coding
	default:
		return nil
	}
}

// SelectProblem fixes the problem for the session.
func (c *Controller) SelectProblem(ctx context.Context, p domain.Problem) (err error) {
	defer c.observe(ctx, "select_problem", time.Now(), &err, map[string]any{
		"problem": p.Label(),
	})
	return c.apply(ctx, SelectProblem{Problem: p})
}

// StartDesign enters the design phase. The timer is not started; thresholds
// are refreshed from the current settings.
func (c *Controller) StartDesign(ctx context.Context) (err error) {
	defer c.observe(ctx, "start_design", time.Now(), &err, nil)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Session.Problem == nil {
		return ErrNoProblem
	}
	s := c.settings.Get()
	c.design.SetThreshold(s.DesignThreshold())
	c.coding.SetThreshold(s.CodingThreshold())
	return c.applyLocked(ctx, StartDesign{})
}

// StartTimer starts the active phase's accumulator and plays the start cue.
// Starting a running timer is a no-op.
func (c *Controller) StartTimer() error {
	c.mu.Lock()
	t := c.timerFor(c.state.Phase)
	phase := c.state.Phase
	c.mu.Unlock()

	if t == nil {
		return fmt.Errorf("start timer in phase %s: %w", phase, ErrInvalidTransition)
	}
	if t.IsRunning() {
		return nil
	}
	t.Start()
	c.cues.Play(sound.CueStart)
	return nil
}

// PauseTimer pauses the active phase's accumulator.
func (c *Controller) PauseTimer() error {
	c.mu.Lock()
	t := c.timerFor(c.state.Phase)
	phase := c.state.Phase
	c.mu.Unlock()

	if t == nil {
		return fmt.Errorf("pause timer in phase %s: %w", phase, ErrInvalidTransition)
	}
	t.Pause()
	return nil
}

// ToggleTimer starts a paused timer or pauses a running one.
func (c *Controller) ToggleTimer() error {
	if t := c.ActiveTimer(); t != nil && t.IsRunning() {
		return c.PauseTimer()
	}
	return c.StartTimer()
}

// AddOffset credits time already spent before the timer was started. Only
// allowed while the active timer is paused.
func (c *Controller) AddOffset(d time.Duration) error {
	c.mu.Lock()
	t := c.timerFor(c.state.Phase)
	phase := c.state.Phase
	c.mu.Unlock()

	if t == nil {
		return fmt.Errorf("add offset in phase %s: %w", phase, ErrInvalidTransition)
	}
	if t.IsRunning() {
		return ErrTimerRunning
	}
	t.SetInitialOffset(d)
	return nil
}

// FinishPhase pauses the active timer, records its time and threshold flag,
// and advances design to coding or coding to grading.
func (c *Controller) FinishPhase(ctx context.Context) (err error) {
	defer c.observe(ctx, "finish_phase", time.Now(), &err, nil)

	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.timerFor(c.state.Phase)
	if t == nil {
		return fmt.Errorf("finish phase %s: %w", c.state.Phase, ErrInvalidTransition)
	}
	t.Pause()
	elapsed, over := t.Elapsed(), t.IsOverThreshold()

	var ev Event = FinishDesign{Time: elapsed, OverThreshold: over}
	if c.state.Phase == domain.PhaseCoding {
		ev = FinishCoding{Time: elapsed, OverThreshold: over}
	}
	return c.applyLocked(ctx, ev)
}

// Grade records the self-assessment and completes the session. The grade,
// notes and completion apply together or not at all. A history write
// failure is returned but the session still completes.
func (c *Controller) Grade(ctx context.Context, grade int, notes string) (entry *domain.HistoryEntry, err error) {
	defer c.observe(ctx, "complete_grading", time.Now(), &err, map[string]any{
		"grade": grade,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	next := c.state
	var cmds []Command
	for _, ev := range []Event{SetGrade{Grade: grade}, SetNotes{Notes: notes}, CompleteGrading{}} {
		var out []Command
		next, out, err = Transition(next, ev, now)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, out...)
	}
	c.state = next
	err = c.execLocked(ctx, cmds)
	return c.last, err
}

// Reset abandons or finishes the session and returns to idle with both
// timers zeroed.
func (c *Controller) Reset(ctx context.Context) error {
	err := c.apply(ctx, Reset{})
	c.observe(ctx, "reset", time.Now(), &err, nil)
	return err
}

// Close stops both accumulators' tickers.
func (c *Controller) Close() {
	c.design.Close()
	c.coding.Close()
}

func (c *Controller) apply(ctx context.Context, ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyLocked(ctx, ev)
}

func (c *Controller) applyLocked(ctx context.Context, ev Event) error {
	next, cmds, err := Transition(c.state, ev, c.clock.Now())
	if err != nil {
		return err
	}
	c.state = next
	return c.execLocked(ctx, cmds)
}

func (c *Controller) execLocked(ctx context.Context, cmds []Command) error {
	var errs []error
	for _, cmd := range cmds {
		switch cmd := cmd.(type) {
		case PersistSession:
			entry, err := c.history.Add(ctx, cmd.Session)
			c.last = entry
			if err != nil {
				c.logger.WarnContext(ctx, "session_persist_failed", "error", err)
				errs = append(errs, fmt.Errorf("save session: %w", err))
			}
		case PlayCue:
			c.cues.Play(cmd.Cue)
		case ResetTimers:
			c.design.Reset()
			c.coding.Reset()
			c.last = nil
		}
	}
	return errors.Join(errs...)
}

func (c *Controller) observe(ctx context.Context, name string, started time.Time, errp *error, fields map[string]any) {
	var err error
	if errp != nil {
		err = *errp
	}
	c.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
