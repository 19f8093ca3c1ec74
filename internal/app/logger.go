package app

import (
	"io"
	"log/slog"
)

// newLogger builds the logger a meshsweep App reports its run through. It
// never touches the global slog default, so concurrently constructed apps
// (one per test, typically) stay isolated from each other.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(levelStr)}

	if formatStr == "json" {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}

// parseLevel maps a log-level string to its slog level. The CLI layer
// rejects unknown values before they reach here; anything else falls back
// to info rather than failing a run over a log flag.
func parseLevel(levelStr string) slog.Level {
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
