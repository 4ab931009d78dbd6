// ABOUTME: Structured logging configuration using log/slog.
// ABOUTME: Supports routing output to a file so TUI rendering is not disturbed.

package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Init configures the default slog logger based on environment variables.
// LOG_LEVEL: debug, info, warn, error (default: info)
// LOG_FORMAT: text, json (default: text)
func Init() {
	configure(os.Stderr)
}

// InitFile routes log output to a file under the given config directory.
// The TUI owns the terminal, so logs must not be written to it.
// If the directory is empty or the file cannot be opened, logging is discarded.
func InitFile(configDir string) {
	if configDir == "" {
		configure(io.Discard)
		return
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		configure(io.Discard)
		return
	}
	logPath := filepath.Join(configDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		configure(io.Discard)
		return
	}
	configure(f)
}

func configure(w io.Writer) {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	format := strings.ToLower(os.Getenv("LOG_FORMAT"))

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
