package dynoq

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/dynoq/model"
)

// Logger wraps slog.Logger with dynoq-specific context.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithEntry adds an entry field to the logger.
func (l *Logger) WithEntry(key model.EntryKey) *Logger {
	return &Logger{
		Logger: l.Logger.With("entry", key.DisplayName()),
	}
}

// WithAttribute adds an attribute field to the logger.
func (l *Logger) WithAttribute(attr model.Attribute) *Logger {
	return &Logger{
		Logger: l.Logger.With("attribute", attr.String()),
	}
}

// LogResolve logs an identifier resolution.
func (l *Logger) LogResolve(key model.EntryKey, err error) {
	if err != nil {
		l.Error("resolve failed",
			"error", err,
		)
	} else {
		l.Debug("resolve completed",
			"entry", key.DisplayName(),
		)
	}
}

// LogSearch logs a range query.
func (l *Logger) LogSearch(kind string, key model.EntryKey, items int, err error) {
	if err != nil {
		l.Error("search failed",
			"kind", kind,
			"entry", key.DisplayName(),
			"error", err,
		)
	} else {
		l.Debug("search completed",
			"kind", kind,
			"entry", key.DisplayName(),
			"items", items,
		)
	}
}

// LogCompare logs a comparison query.
func (l *Logger) LogCompare(a, b model.EntryKey, attributes int, err error) {
	if err != nil {
		l.Error("comparison failed",
			"entry1", a.DisplayName(),
			"entry2", b.DisplayName(),
			"attributes", attributes,
			"error", err,
		)
	} else {
		l.Debug("comparison completed",
			"entry1", a.DisplayName(),
			"entry2", b.DisplayName(),
			"attributes", attributes,
		)
	}
}

// LogSnapshotLoad logs a snapshot load.
func (l *Logger) LogSnapshotLoad(ctx context.Context, name string, entries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"name", name,
			"entries", entries,
		)
	}
}

// LogSnapshotSave logs a snapshot save.
func (l *Logger) LogSnapshotSave(ctx context.Context, name string, entries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
			"entries", entries,
		)
	}
}
