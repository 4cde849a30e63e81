package sound

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (r *recorder) run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func (r *recorder) Calls() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func onlyOnPath(names ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, n := range names {
			if n == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func writeAssets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, c := range []Cue{CueStart, CueWarning, CueComplete} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, c.File()), []byte("RIFF"), 0o644))
	}
	return dir
}

func on() bool  { return true }
func off() bool { return false }

func TestCueFile(t *testing.T) {
	assert.Equal(t, "start.wav", CueStart.File())
	assert.Equal(t, "warning.wav", CueWarning.File())
	assert.Equal(t, "complete.wav", CueComplete.File())
}

func TestPlayer_DisabledIsSilent(t *testing.T) {
	rec := &recorder{}
	var bell bytes.Buffer
	p := NewPlayer(writeAssets(t), off, nil,
		WithRunner(rec.run), WithLookPath(onlyOnPath("paplay")), WithBell(&bell))

	p.PlayStart()
	p.PlayWarning()
	p.PlayComplete()
	p.Wait()

	assert.Empty(t, rec.Calls())
	assert.Zero(t, bell.Len())
}

func TestPlayer_NilEnabledIsSilent(t *testing.T) {
	rec := &recorder{}
	p := NewPlayer(writeAssets(t), nil, nil, WithRunner(rec.run), WithLookPath(onlyOnPath("aplay")))
	p.PlayStart()
	p.Wait()
	assert.Empty(t, rec.Calls())
}

func TestPlayer_UsesFirstAvailableCommand(t *testing.T) {
	dir := writeAssets(t)
	rec := &recorder{}
	p := NewPlayer(dir, on, nil, WithRunner(rec.run), WithLookPath(onlyOnPath("paplay", "aplay")))

	p.PlayWarning()
	p.Wait()

	require.Len(t, rec.Calls(), 1)
	assert.Equal(t, []string{"paplay", filepath.Join(dir, "warning.wav")}, rec.Calls()[0])
}

func TestPlayer_FallsBackToBell(t *testing.T) {
	t.Run("no audio command", func(t *testing.T) {
		rec := &recorder{}
		var bell bytes.Buffer
		p := NewPlayer(writeAssets(t), on, nil,
			WithRunner(rec.run), WithLookPath(onlyOnPath()), WithBell(&bell))

		p.PlayComplete()
		p.Wait()

		assert.Empty(t, rec.Calls())
		assert.Equal(t, "\a", bell.String())
	})

	t.Run("missing asset", func(t *testing.T) {
		rec := &recorder{}
		var bell bytes.Buffer
		p := NewPlayer(t.TempDir(), on, nil,
			WithRunner(rec.run), WithLookPath(onlyOnPath("afplay")), WithBell(&bell))

		p.PlayStart()
		p.Wait()

		assert.Empty(t, rec.Calls())
		assert.Equal(t, "\a", bell.String())
	})

	t.Run("no sounds directory", func(t *testing.T) {
		var bell bytes.Buffer
		p := NewPlayer("", on, nil, WithLookPath(onlyOnPath("afplay")), WithBell(&bell))
		p.PlayStart()
		assert.Equal(t, "\a", bell.String())
	})
}

func TestPlayer_RunnerErrorIsSwallowed(t *testing.T) {
	rec := &recorder{err: errors.New("device busy")}
	p := NewPlayer(writeAssets(t), on, nil, WithRunner(rec.run), WithLookPath(onlyOnPath("aplay")))

	assert.NotPanics(t, func() {
		p.PlayStart()
		p.Wait()
	})
	assert.Len(t, rec.Calls(), 1)
}

func TestPlayer_EnabledIsReadOnEveryPlay(t *testing.T) {
	rec := &recorder{}
	enabled := false
	p := NewPlayer(writeAssets(t), func() bool { return enabled }, nil,
		WithRunner(rec.run), WithLookPath(onlyOnPath("afplay")))

	p.PlayStart()
	enabled = true
	p.PlayStart()
	p.Wait()

	assert.Len(t, rec.Calls(), 1)
}

func TestPlayer_NilReceiver(t *testing.T) {
	var p *Player
	assert.NotPanics(t, func() {
		p.PlayStart()
		p.Wait()
	})
}
