package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		env       string
		debugOn   bool
		jsonLines bool
	}{
		{env: "local", debugOn: true},
		{env: "dev", debugOn: true, jsonLines: true},
		{env: "prod", debugOn: false, jsonLines: true},
		{env: "", debugOn: true},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log := New(tt.env)
			assert.NotNil(t, log)
			assert.Equal(t, tt.debugOn, log.Enabled(context.Background(), slog.LevelDebug))
			if tt.jsonLines {
				_, ok := log.Handler().(*slog.JSONHandler)
				assert.True(t, ok)
			}
		})
	}
}

func TestWithLevel(t *testing.T) {
	log := WithLevel("local", "warn")
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelWarn))

	fallback := WithLevel("prod", "nonsense")
	assert.True(t, fallback.Enabled(context.Background(), slog.LevelInfo))
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
