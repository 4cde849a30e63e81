package quiz

import (
	"log/slog"
)

// CallEvent records metadata about a single quiz API call.
type CallEvent struct {
	Method     string
	Path       string
	StatusCode int
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// Observer receives events about quiz API calls.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes one log line per call.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	o.logger.Info("quiz_call",
		"method", event.Method,
		"path", event.Path,
		"http_status", event.StatusCode,
		"latency_ms", event.LatencyMs,
		"status", status,
	)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
