// Package logging configures colored structured logging with tint.
//
// The level comes from the PENNY_LOG environment variable: debug, info,
// warn or error (default: warn, so normal CLI output stays clean).
package logging

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures the process-wide slog default at the level given by
// PENNY_LOG.
func Setup() {
	SetupWithLevel(levelFromEnv())
}

// SetupWithLevel configures the process-wide slog default at the given
// level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("PENNY_LOG")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
