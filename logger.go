package blockgraph

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with blockgraph-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogInsert logs a completed insert. Inserts are on the hot path, so the
// record is only built when debug logging is enabled.
func (l *Logger) LogInsert(requested, assigned string, attributes int) {
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	if requested != assigned {
		l.DebugContext(ctx, "block renamed",
			"requested", requested,
			"name", assigned,
			"attributes", attributes,
		)
		return
	}
	l.DebugContext(ctx, "block inserted",
		"name", assigned,
		"attributes", attributes,
	)
}

// LogBatchInsert logs the outcome of an InsertAll call.
func (l *Logger) LogBatchInsert(count, rejected int) {
	ctx := context.Background()
	if rejected > 0 {
		l.WithCount(count).WarnContext(ctx, "batch insert completed with rejections",
			"rejected", rejected,
			"inserted", count-rejected,
		)
		return
	}
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.WithCount(count).DebugContext(ctx, "batch insert completed")
}

// LogRejected logs an insert that was refused.
func (l *Logger) LogRejected(name string, err error) {
	l.WarnContext(context.Background(), "insert rejected",
		"name", name,
		"error", err,
	)
}
