package app

import (
	"io"
	"log/slog"
)

// newLogger builds the calculator's diagnostic logger writing to w, which is
// always the error stream so that the dialogue on stdout stays clean. A level
// slog cannot parse falls back to warn, keeping a default run silent.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn
	}
	return l
}
