package cli

import (
	"context"

	"github.com/alexanderramin/leettomato/internal/session"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App        *App
	Controller *session.Controller

	// Terminal dimensions
	Width  int
	Height int
}

// Ctx is the context handed to store and controller calls made from views.
func (s *SharedState) Ctx() context.Context {
	return context.Background()
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints) and the notice line.
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
