package submodular

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with submodular-specific fields.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithWorkers adds a workers field to the logger.
func (l *Logger) WithWorkers(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("workers", n),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogOperation logs the outcome of a batch or marginal-gain operation.
// Size, worker and dimension fields come from the With helpers.
func (l *Logger) LogOperation(op Operation, duration time.Duration, err error) {
	if err != nil {
		l.Error("operation failed",
			"op", op.String(),
			"kind", KindOf(err).String(),
			"error", err,
		)
	} else {
		l.Debug("operation completed",
			"op", op.String(),
			"duration", duration,
		)
	}
}

// LogWorkerCount logs a worker count change.
func (l *Logger) LogWorkerCount(requested, resolved int) {
	l.Debug("worker count updated",
		"requested", requested,
		"workers", resolved,
	)
}
