package breaker

import (
	"errors"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestBreaker_PassesThrough(t *testing.T) {
	b := New[string]("test-pass", slog.Default())

	res, err := b.Execute(func() (string, error) { return "ok", nil })
	require.NoError(t, err)
	assert.Equal(t, "ok", res)

	boom := errors.New("boom")
	_, err = b.Execute(func() (string, error) { return "", boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}

func TestBreaker_OpensAfterFailures(t *testing.T) {
	b := New[int]("test-open", slog.Default())
	boom := errors.New("boom")

	for i := 0; i < 10; i++ {
		_, _ = b.Execute(func() (int, error) { return 0, boom })
	}
	assert.Equal(t, gobreaker.StateOpen, b.State())

	called := false
	_, err := b.Execute(func() (int, error) {
		called = true
		return 1, nil
	})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, called)
}
