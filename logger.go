package studentdir

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with directory-specific context.
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

// WithID adds an ID field to the logger.
func (l *Logger) WithID(id ID) *Logger {
	return &Logger{
		Logger: l.Logger.With("id", id),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSave logs a save operation.
func (l *Logger) LogSave(ctx context.Context, rec Record, created bool, err error) {
	l = l.WithID(rec.ID)
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"major", rec.Major,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "save completed",
			"major", rec.Major,
			"created", created,
		)
	}
}

// LogBatchSave logs a batch save operation.
func (l *Logger) LogBatchSave(ctx context.Context, count, failed int) {
	l = l.WithCount(count)
	if failed > 0 {
		l.WarnContext(ctx, "batch save completed with failures",
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch save completed")
	}
}

// LogDelete logs a delete operation.
func (l *Logger) LogDelete(ctx context.Context, id ID, err error) {
	l = l.WithID(id)
	if err != nil {
		l.ErrorContext(ctx, "delete failed", "error", err)
	} else {
		l.DebugContext(ctx, "delete completed")
	}
}
