// Package clipboard is the single outbound write of exported session rows.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard unavailable")

// Writer copies text to the system clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes through the platform clipboard (pbcopy, xclip, xsel,
// wl-copy or the Windows API).
type System struct{}

func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory keeps the last written text. Used by tests and headless runs.
type Memory struct {
	Text string
	Err  error
}

func (m *Memory) WriteAll(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	return nil
}

// Copy writes text and reports whether it landed. A nil writer never copies.
func Copy(w Writer, text string) (bool, error) {
	if w == nil {
		return false, ErrUnsupported
	}
	if err := w.WriteAll(text); err != nil {
		return false, err
	}
	return true, nil
}
