package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Logger provides structured logging with level-based filtering.
type Logger interface {
	Debug(v ...any)
	Debugf(format string, a ...any)
	Info(v ...any)
	Infof(format string, a ...any)
	Error(v ...any)
	Errorf(format string, a ...any)
	With(args ...any) Logger
}

type slogLogger struct {
	logger *slog.Logger
}

// New creates a logger with the specified level.
// Accepts: "debug", "dbg", "info", "inf", "error", "err" (case-insensitive).
// Defaults to info if the level string is unrecognized.
// Output format is JSON if LOG_FORMAT=json, otherwise human-readable text.
func New(logLevelStr string) Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(logLevelStr)}

	var handler slog.Handler
	if os.Getenv("LOG_FORMAT") == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return &slogLogger{logger: slog.New(handler)}
}

func (l *slogLogger) Debug(v ...any) {
	l.logger.Debug(fmt.Sprint(v...))
}

func (l *slogLogger) Debugf(format string, a ...any) {
	l.logger.Debug(fmt.Sprintf(format, a...))
}

func (l *slogLogger) Info(v ...any) {
	l.logger.Info(fmt.Sprint(v...))
}

func (l *slogLogger) Infof(format string, a ...any) {
	l.logger.Info(fmt.Sprintf(format, a...))
}

func (l *slogLogger) Error(v ...any) {
	l.logger.Error(fmt.Sprint(v...))
}

func (l *slogLogger) Errorf(format string, a ...any) {
	l.logger.Error(fmt.Sprintf(format, a...))
}

// With returns a new logger with additional contextual fields.
func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

type noopLogger struct{}

func (noopLogger) Debug(v ...any)                 {}
func (noopLogger) Debugf(format string, a ...any) {}
func (noopLogger) Info(v ...any)                  {}
func (noopLogger) Infof(format string, a ...any)  {}
func (noopLogger) Error(v ...any)                 {}
func (noopLogger) Errorf(format string, a ...any) {}
func (noopLogger) With(args ...any) Logger        { return noopLogger{} }

// NewNoopLogger creates a no-op logger that discards all log output.
// Useful for testing or components that don't require logging.
func NewNoopLogger() Logger {
	return noopLogger{}
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug", "dbg":
		return slog.LevelDebug
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
