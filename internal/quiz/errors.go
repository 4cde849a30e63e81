package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the quiz server is unreachable.
	ErrUnavailable = errors.New("quiz server unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("quiz request timed out")

	// ErrNotConfigured indicates no quiz server URL is set.
	ErrNotConfigured = errors.New("quiz server not configured")

	// ErrInvalidResponse indicates a 2xx body that could not be decoded.
	ErrInvalidResponse = errors.New("invalid quiz response")
)

// APIError is a non-2xx reply from the quiz server.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Body)
}
