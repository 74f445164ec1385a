package logger

import (
	"os"
	"strings"

	"golang.org/x/exp/slog"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// New builds the process logger: readable text locally, JSON everywhere else.
func New(env string) *slog.Logger {
	switch strings.ToLower(env) {
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

// WithLevel overrides the level chosen by env when level is set.
func WithLevel(env, level string) *slog.Logger {
	var lvl slog.Level
	if level == "" || lvl.UnmarshalText([]byte(level)) != nil {
		return New(env)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.ToLower(env) == envLocal || env == "" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
