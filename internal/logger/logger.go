// Package logger builds the structured slog logger used across the client.
// Text output for interactive use, JSON when LOG_FORMAT=json so runs can be
// shipped to a log aggregator.
package logger

import (
	"log/slog"
	"os"
	"strings"

	"crust-connect/internal/config"
)

// New returns a logger configured from cfg. Logs go to stderr so they never
// mix with the rendered storefront output on stdout.
func New(cfg config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
