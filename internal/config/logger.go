package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// InitLogger installs the default slog handler described by the logging
// config. The returned closer releases the log file, if one was opened.
func InitLogger(c LoggingConfig) (io.Closer, error) {
	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	slog.SetDefault(slog.New(newHandler(w, c)))

	logger := slog.With("component", "logger")
	logger.Debug("Logger initialized", "level", c.Level, "format", c.Format, "file", c.File)
	return closer, nil
}

func newHandler(w io.Writer, c LoggingConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLogLevel(c.Level)}
	if c.Format == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLogLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
