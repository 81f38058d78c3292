package seqeq

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with seqeq-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithType adds an element type field to the logger.
func (l *Logger) WithType(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("type", name),
	}
}

// WithCount adds an element count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogStrategy logs the strategy chosen for an element type.
func (l *Logger) LogStrategy(ctx context.Context, strategy Strategy, class string, lanes int, isa ISA) {
	l.DebugContext(ctx, "sequence strategy selected",
		"strategy", strategy.String(),
		"class", class,
		"lanes", lanes,
		"isa", isa.String(),
	)
}

// LogParallel logs the outcome of a sharded comparison.
func (l *Logger) LogParallel(ctx context.Context, shards, workers int, equal bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "parallel comparison failed",
			"shards", shards,
			"workers", workers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "parallel comparison completed",
			"shards", shards,
			"workers", workers,
			"equal", equal,
		)
	}
}

// LogMismatches logs the size of a mismatch set.
func (l *Logger) LogMismatches(ctx context.Context, count int, mismatches uint64) {
	l.DebugContext(ctx, "mismatch scan completed",
		"count", count,
		"mismatches", mismatches,
	)
}
