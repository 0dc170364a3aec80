package logger

import (
	"log/slog"
	"os"
)

// New returns a JSON logger writing to stdout. The level is debug in
// development so locally suppressed telemetry remains visible.
func New(development bool) *slog.Logger {
	level := slog.LevelInfo
	if development {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
