package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/leettomato/internal/session"
	"github.com/alexanderramin/leettomato/internal/teatest"
	"github.com/alexanderramin/leettomato/internal/testutil"
)

// TestDriver wraps teatest.Driver with access to appModel internals (view
// stack, shared state, session controller) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
	Controller *session.Controller
	Clock      *testutil.FakeClock
}

// NewTestDriver builds the practice TUI for app at 120x40 and drains Init.
// app.Clock must be a *testutil.FakeClock.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	ctl := app.NewController()
	t.Cleanup(ctl.Close)

	m := newAppModel(app, ctl)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	clock, _ := app.Clock.(*testutil.FakeClock)
	return &TestDriver{Driver: d, Controller: ctl, Clock: clock}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// StartProblem types query, selects the first match (or the text as a
// custom problem) and starts the design phase.
func (d *TestDriver) StartProblem(query string) {
	d.T.Helper()
	d.Type(query)
	d.PressEnter()
	d.PressEnter()
}

// RunPhase starts the active timer, lets the fake clock run for the given
// duration, pauses and advances to the next phase.
func (d *TestDriver) RunPhase(elapsed time.Duration) {
	d.T.Helper()
	d.PressSpace()
	d.Clock.Advance(elapsed)
	d.PressSpace()
	d.PressKey('n')
}

// ── inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveView returns the top view on the stack.
func (d *TestDriver) ActiveView() View {
	m := d.appModel()
	return m.activeView()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the notice line, without styling.
func (d *TestDriver) LastOutput() string {
	return teatest.StripANSI(d.appModel().lastOutput)
}
