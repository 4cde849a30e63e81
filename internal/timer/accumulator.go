// Package timer implements the elapsed-time accumulator behind each practice
// phase.
//
// An Accumulator sums wall-clock time across start/pause cycles:
//
//	elapsed = accumulated + (running ? now - startedAt : 0)
//
// While running, a ticker wakes every TickInterval to publish the elapsed
// time and to fire the threshold callback the first time elapsed exceeds the
// threshold. The callback latch re-arms only on Reset, so pausing and
// resuming within one run never fires it twice. The ticker goroutine is
// stopped by Pause, Reset and Close.
package timer

import (
	"sync"
	"time"
)

// DefaultTickInterval is the redraw cadence while a timer runs.
const DefaultTickInterval = 100 * time.Millisecond

// Clock supplies wall-clock instants.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads time.Now.
var SystemClock Clock = systemClock{}

// Options configures an Accumulator. Callbacks run on the ticker goroutine
// and must not call Close.
type Options struct {
	Threshold          time.Duration
	OnThresholdCrossed func()
	OnTick             func(elapsed time.Duration)
	Clock              Clock
	TickInterval       time.Duration
}

// Accumulator tracks running/paused duration for one phase. Safe for
// concurrent use.
type Accumulator struct {
	clock    Clock
	interval time.Duration
	onCross  func()
	onTick   func(time.Duration)

	mu          sync.Mutex
	threshold   time.Duration
	accumulated time.Duration
	startedAt   time.Time
	running     bool
	fired       bool
	stop        chan struct{}
	done        chan struct{}
}

// New creates a stopped accumulator at zero.
func New(opts Options) *Accumulator {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Accumulator{
		clock:     clock,
		interval:  interval,
		onCross:   opts.OnThresholdCrossed,
		onTick:    opts.OnTick,
		threshold: opts.Threshold,
	}
}

// Start begins timing. No-op if already running.
func (a *Accumulator) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		return
	}
	a.startedAt = a.clock.Now()
	a.running = true

	a.stop = make(chan struct{})
	a.done = make(chan struct{})
	go a.run(a.stop, a.done)
}

// Pause folds the running segment into the accumulated total. No-op if not
// running.
func (a *Accumulator) Pause() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return
	}
	a.accumulated += a.clock.Now().Sub(a.startedAt)
	a.startedAt = time.Time{}
	a.running = false
	a.stopTickerLocked()
}

// Reset zeroes the accumulator, stops it and re-arms the threshold callback.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopTickerLocked()
	a.accumulated = 0
	a.startedAt = time.Time{}
	a.running = false
	a.fired = false
}

// Elapsed returns accumulated time plus the in-flight segment. It has no
// side effects.
func (a *Accumulator) Elapsed() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.elapsedLocked()
}

// SetInitialOffset adds d to the accumulated total, for time spent before the
// timer was started. Non-positive offsets are ignored.
func (a *Accumulator) SetInitialOffset(d time.Duration) {
	if d <= 0 {
		return
	}
	a.mu.Lock()
	a.accumulated += d
	a.mu.Unlock()
}

// IsRunning reports whether the accumulator is timing.
func (a *Accumulator) IsRunning() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// IsOverThreshold reports Elapsed() > threshold.
func (a *Accumulator) IsOverThreshold() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.elapsedLocked() > a.threshold
}

// Threshold returns the warning threshold.
func (a *Accumulator) Threshold() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.threshold
}

// SetThreshold changes the warning threshold for subsequent checks.
func (a *Accumulator) SetThreshold(d time.Duration) {
	a.mu.Lock()
	a.threshold = d
	a.mu.Unlock()
}

// Close stops the ticker and waits for its goroutine to exit. Accumulated
// time is kept. Must not be called from a callback.
func (a *Accumulator) Close() {
	a.mu.Lock()
	if a.running {
		a.accumulated += a.clock.Now().Sub(a.startedAt)
		a.startedAt = time.Time{}
		a.running = false
	}
	a.stopTickerLocked()
	done := a.done
	a.done = nil
	a.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (a *Accumulator) elapsedLocked() time.Duration {
	if a.running {
		return a.accumulated + a.clock.Now().Sub(a.startedAt)
	}
	return a.accumulated
}

func (a *Accumulator) stopTickerLocked() {
	if a.stop != nil {
		close(a.stop)
		a.stop = nil
	}
}

func (a *Accumulator) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			a.tick()
		}
	}
}

// tick publishes the elapsed time and fires the threshold callback on first
// crossing.
func (a *Accumulator) tick() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	elapsed := a.elapsedLocked()
	crossed := !a.fired && elapsed > a.threshold
	if crossed {
		a.fired = true
	}
	onTick, onCross := a.onTick, a.onCross
	a.mu.Unlock()

	if onTick != nil {
		onTick(elapsed)
	}
	if crossed && onCross != nil {
		onCross()
	}
}
