// Package sound plays the practice cues (start, warning, complete) through
// the system audio command, falling back to the terminal bell.
package sound

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"
)

// Cue names one of the bundled sound effects.
type Cue string

const (
	CueStart    Cue = "start"
	CueWarning  Cue = "warning"
	CueComplete Cue = "complete"
)

// File is the asset file name for the cue.
func (c Cue) File() string {
	return string(c) + ".wav"
}

// playbackTimeout bounds a single playback command.
const playbackTimeout = 10 * time.Second

// commands are tried in order; the first one on PATH is used.
var commands = []string{"afplay", "paplay", "aplay"}

// Runner executes an audio command.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// Option configures a Player.
type Option func(*Player)

// WithRunner replaces the process runner.
func WithRunner(r Runner) Option {
	return func(p *Player) { p.run = r }
}

// WithLookPath replaces the PATH lookup used to pick an audio command.
func WithLookPath(fn func(string) (string, error)) Option {
	return func(p *Player) { p.lookPath = fn }
}

// WithBell sets where the terminal bell is written when no audio command or
// asset is available.
func WithBell(w io.Writer) Option {
	return func(p *Player) { p.bell = w }
}

// Player is fire-and-forget: Play returns immediately and failures are only
// debug-logged.
type Player struct {
	dir      string
	enabled  func() bool
	logger   *slog.Logger
	run      Runner
	lookPath func(string) (string, error)
	bell     io.Writer

	once    sync.Once
	command string

	wg sync.WaitGroup
}

// NewPlayer builds a player for assets under dir. enabled is consulted on
// every play so settings changes apply immediately; nil means always off.
func NewPlayer(dir string, enabled func() bool, logger *slog.Logger, opts ...Option) *Player {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p := &Player{
		dir:      dir,
		enabled:  enabled,
		logger:   logger,
		run:      execRunner,
		lookPath: exec.LookPath,
		bell:     os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Player) PlayStart()    { p.Play(CueStart) }
func (p *Player) PlayWarning()  { p.Play(CueWarning) }
func (p *Player) PlayComplete() { p.Play(CueComplete) }

// Play starts playback of c in the background. No-op when sound is disabled.
func (p *Player) Play(c Cue) {
	if p == nil || p.enabled == nil || !p.enabled() {
		return
	}

	path, ok := p.asset(c)
	cmd := p.resolveCommand()
	if !ok || cmd == "" {
		p.ring(c)
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), playbackTimeout)
		defer cancel()
		if err := p.run(ctx, cmd, path); err != nil {
			p.logger.Debug("sound_play_failed", "cue", string(c), "command", cmd, "error", err)
		}
	}()
}

// Wait blocks until in-flight playback finishes.
func (p *Player) Wait() {
	if p == nil {
		return
	}
	p.wg.Wait()
}

func (p *Player) asset(c Cue) (string, bool) {
	if p.dir == "" {
		return "", false
	}
	path := filepath.Join(p.dir, c.File())
	if _, err := os.Stat(path); err != nil {
		p.logger.Debug("sound_asset_missing", "cue", string(c), "path", path)
		return "", false
	}
	return path, true
}

func (p *Player) resolveCommand() string {
	p.once.Do(func() {
		for _, name := range commands {
			if _, err := p.lookPath(name); err == nil {
				p.command = name
				return
			}
		}
	})
	return p.command
}

func (p *Player) ring(c Cue) {
	if p.bell == nil {
		return
	}
	if _, err := io.WriteString(p.bell, "\a"); err != nil {
		p.logger.Debug("sound_bell_failed", "cue", string(c), "error", err)
	}
}
