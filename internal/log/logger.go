// Package log provides the structured JSON logger shared by the slite
// command-line tools.
package log

import (
	"context"
	"io"
	"log/slog"
)

// Logger is a thin structured logger on top of slog.Logger that writes
// JSON entries. The zero value silently drops everything; check
// IsInitialized when a log sink is optional.
type Logger struct {
	slogger *slog.Logger
}

// NewLogger creates a Logger that writes to the given writer, typically
// a file or os.Stderr.
func NewLogger(writer io.Writer) Logger {
	return Logger{
		slogger: slog.New(slog.NewJSONHandler(writer, nil)),
	}
}

// IsInitialized reports whether the logger was built with NewLogger.
func (l *Logger) IsInitialized() bool {
	return l.slogger != nil
}

func (l *Logger) log(level slog.Level, msg string, args []any) {
	if l.slogger == nil {
		return
	}
	l.slogger.Log(context.Background(), level, msg, args...)
}

// Info logs a structured info message with optional key-value pairs.
func (l *Logger) Info(msg string, keyVals ...KV) {
	l.log(slog.LevelInfo, msg, kvToArgs(keyVals...))
}

// InfoNs logs a structured info message under a namespace. The namespace
// is included as the first key-value pair of the entry.
func (l *Logger) InfoNs(namespace string, msg string, keyVals ...KV) {
	l.log(slog.LevelInfo, msg, kvToArgsNs(namespace, keyVals...))
}

// Debug logs a structured debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, keyVals ...KV) {
	l.log(slog.LevelDebug, msg, kvToArgs(keyVals...))
}

// DebugNs logs a structured debug message under a namespace.
func (l *Logger) DebugNs(namespace string, msg string, keyVals ...KV) {
	l.log(slog.LevelDebug, msg, kvToArgsNs(namespace, keyVals...))
}

// Warn logs a structured warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, keyVals ...KV) {
	l.log(slog.LevelWarn, msg, kvToArgs(keyVals...))
}

// WarnNs logs a structured warning message under a namespace.
func (l *Logger) WarnNs(namespace string, msg string, keyVals ...KV) {
	l.log(slog.LevelWarn, msg, kvToArgsNs(namespace, keyVals...))
}

// Error logs a structured error message with optional key-value pairs.
func (l *Logger) Error(msg string, keyVals ...KV) {
	l.log(slog.LevelError, msg, kvToArgs(keyVals...))
}

// ErrorNs logs a structured error message under a namespace.
func (l *Logger) ErrorNs(namespace string, msg string, keyVals ...KV) {
	l.log(slog.LevelError, msg, kvToArgsNs(namespace, keyVals...))
}
