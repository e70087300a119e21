// Package logger provides the process-wide structured logger. Commands
// configure it once at startup from the loaded configuration and log
// through the package-level functions; the zero configuration logs
// human-readable text at info level to stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum level to emit: DEBUG, INFO, WARN or ERROR
	// (case-insensitive).
	Level string

	// Format selects the output encoding: text or json.
	Format string

	// Output is where logs go: stderr, stdout, or a file path.
	Output string
}

// Init configures the default logger. It is called once at startup; the
// configuration is not changed afterwards.
func Init(cfg Config) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}
	w, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return fmt.Errorf("invalid log format %q (valid: text, json)", cfg.Format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q (valid: DEBUG, INFO, WARN, ERROR)", s)
	}
}

func openOutput(s string) (io.Writer, error) {
	switch s {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		f, err := os.OpenFile(s, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log output: %w", err)
		}
		return f, nil
	}
}

// Debug logs at debug level through the default logger.
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

// Info logs at info level through the default logger.
func Info(msg string, args ...any) { slog.Info(msg, args...) }

// Warn logs at warn level through the default logger.
func Warn(msg string, args ...any) { slog.Warn(msg, args...) }

// Error logs at error level through the default logger.
func Error(msg string, args ...any) { slog.Error(msg, args...) }
