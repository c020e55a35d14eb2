// Package util provides common utilities including logging helpers,
// file system locations, and small numeric helpers.
package util

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetupLogging installs a text slog handler writing to w as the default
// logger. Unknown levels fall back to INFO.
func SetupLogging(w io.Writer, level string) *slog.Logger {
	var l slog.Level
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		l = slog.LevelDebug
	case "WARN":
		l = slog.LevelWarn
	case "ERROR":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l}))
	slog.SetDefault(logger)
	return logger
}

// OpenLogFile appends to path, creating it if needed.
func OpenLogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Logger returns the default logger tagged with a component name.
func Logger(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		slog.Error(context, "err", err)
	}
}
