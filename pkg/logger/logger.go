// Package logger provides a simple, clean logging interface.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Logger defines the logging interface.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...Field)
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)

	Named(name string) Logger
}

// Field represents a key-value pair for structured logging.
type Field struct {
	Key   string
	Value interface{}
}

// Field constructors.
func String(key, val string) Field          { return Field{Key: key, Value: val} }
func Int(key string, val int) Field         { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field { return Field{Key: key, Value: val} }
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Value: val.String()}
}
func Any(key string, val interface{}) Field { return Field{Key: key, Value: val} }
func Error(err error) Field                 { return Field{Key: "error", Value: err} }

// slogLogger implements Logger using slog.
type slogLogger struct {
	Logger *slog.Logger
}

func (l *slogLogger) Named(name string) Logger {
	return &slogLogger{Logger: l.Logger.WithGroup(name)}
}

func (l *slogLogger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.Logger.LogAttrs(ctx, slog.LevelDebug, msg, convertFields(fields)...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, fields ...Field) {
	l.Logger.LogAttrs(ctx, slog.LevelInfo, msg, convertFields(fields)...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.Logger.LogAttrs(ctx, slog.LevelWarn, msg, convertFields(fields)...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, fields ...Field) {
	l.Logger.LogAttrs(ctx, slog.LevelError, msg, convertFields(fields)...)
}

// convertFields converts our Field type to slog.Attr.
func convertFields(fields []Field) []slog.Attr {
	attrs := make([]slog.Attr, len(fields))
	for i, f := range fields {
		attrs[i] = slog.Any(f.Key, f.Value)
	}
	return attrs
}

var global Logger
var levelVar slog.LevelVar

// Init initializes the global logger writing to stderr. Batch output
// (inspect/query results) goes to stdout, so diagnostics must not.
func Init() error {
	return InitWithWriter(os.Stderr)
}

// InitWithWriter initializes the global logger with a custom destination.
func InitWithWriter(w io.Writer) error {
	levelVar.Set(slog.LevelInfo)
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar})
	global = &slogLogger{Logger: slog.New(h)}
	return nil
}

// Get returns the global logger.
func Get() Logger {
	if global == nil {
		panic("logger not initialized. Call logger.Init() first")
	}
	return global
}

// Named creates a named logger.
func Named(name string) Logger {
	return Get().Named(name)
}

// SetLevel updates the current logging level for the global logger handler.
func SetLevel(level slog.Level) { levelVar.Set(level) }

// SetLevelString parses and sets the logging level.
// Accepts: debug, info, warn/warning, error (case-insensitive).
func SetLevelString(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		SetLevel(slog.LevelDebug)
	case "", "info":
		SetLevel(slog.LevelInfo)
	case "warn", "warning":
		SetLevel(slog.LevelWarn)
	case "error":
		SetLevel(slog.LevelError)
	default:
		return fmt.Errorf("unknown log level: %s", level)
	}
	return nil
}
