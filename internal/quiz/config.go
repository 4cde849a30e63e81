package quiz

import "time"

// Config holds the quiz client settings.
type Config struct {
	BaseURL   string
	Password  string
	TimeoutMs int
	LogCalls  bool
}

// DefaultConfig returns a Config with no server and a 60s timeout; grading
// calls wait on a model.
func DefaultConfig() Config {
	return Config{TimeoutMs: 60000}
}

// Enabled reports whether a server URL is configured.
func (c Config) Enabled() bool {
	return c.BaseURL != ""
}

// Timeout is the per-call deadline.
func (c Config) Timeout() time.Duration {
	if c.TimeoutMs <= 0 {
		return time.Duration(DefaultConfig().TimeoutMs) * time.Millisecond
	}
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
