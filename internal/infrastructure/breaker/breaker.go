package breaker

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/exp/slog"

	"safetrip/internal/metrics"
)

// ErrUnavailable is returned when the breaker rejects a call without trying it.
var ErrUnavailable = errors.New("upstream temporarily unavailable")

// Breaker guards calls to one third-party service.
type Breaker[T any] struct {
	cb   *gobreaker.CircuitBreaker[T]
	name string
	log  *slog.Logger
}

// New opens after 60% failures across at least 10 requests in a minute and
// tries again after 30 seconds.
func New[T any](name string, log *slog.Logger) *Breaker[T] {
	log = log.With("component", "breaker", "upstream", name)
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", "from", from.String(), "to", to.String())
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &Breaker[T]{cb: cb, name: name, log: log}
}

// Execute runs fn through the breaker and records the outcome.
func (b *Breaker[T]) Execute(fn func() (T, error)) (T, error) {
	start := time.Now()
	res, err := b.cb.Execute(fn)
	metrics.UpstreamRequestDuration.WithLabelValues(b.name).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.UpstreamRequestsTotal.WithLabelValues(b.name, "rejected").Inc()
		b.log.Warn("request rejected by circuit breaker", "error", err)
		var zero T
		return zero, ErrUnavailable
	case err != nil:
		metrics.UpstreamRequestsTotal.WithLabelValues(b.name, "failure").Inc()
		return res, err
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(b.name, "success").Inc()
	return res, nil
}

// State exposes the current breaker state.
func (b *Breaker[T]) State() gobreaker.State {
	return b.cb.State()
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
