package rowkit

import (
	"context"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Logger wraps slog.Logger with rowkit-specific context.
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

// NewPrettyLogger creates a Logger with colorized, human-friendly output
// for interactive use.
func NewPrettyLogger(level slog.Level) *Logger {
	handler := tint.NewHandler(os.Stderr, &tint.Options{
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

// WithField adds a field name to the logger.
func (l *Logger) WithField(field string) *Logger {
	return &Logger{
		Logger: l.Logger.With("field", field),
	}
}

// WithCount adds a record count to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogFilter logs a filter operation.
func (l *Logger) LogFilter(ctx context.Context, total, matched int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "filter failed",
			"total", total,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "filter completed",
			"total", total,
			"matched", matched,
		)
	}
}

// LogErase logs an erase operation.
func (l *Logger) LogErase(ctx context.Context, before, after int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "erase failed",
			"total", before,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "erase completed",
			"removed", before-after,
			"remaining", after,
		)
	}
}

// LogPivot logs a pivot operation.
func (l *Logger) LogPivot(ctx context.Context, records, rows int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "pivot failed",
			"records", records,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "pivot completed",
			"records", records,
			"rows", rows,
		)
	}
}

// LogTableRead logs a tabular read operation.
func (l *Logger) LogTableRead(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table read failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "table read",
			"name", name,
			"records", records,
		)
	}
}

// LogTableWrite logs a tabular write operation.
func (l *Logger) LogTableWrite(ctx context.Context, name string, records int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "table write failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "table written",
			"name", name,
			"records", records,
		)
	}
}

// LogValueRead logs a structured read operation.
func (l *Logger) LogValueRead(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "value read failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "value read",
			"name", name,
		)
	}
}

// LogValueWrite logs a structured write operation.
func (l *Logger) LogValueWrite(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "value write failed",
			"name", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "value written",
			"name", name,
		)
	}
}

// LogSort logs a sort operation.
func (l *Logger) LogSort(ctx context.Context, keys []string, order Order, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sort failed",
			"keys", keys,
			"order", string(order),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "sort completed",
			"keys", keys,
			"order", string(order),
		)
	}
}
