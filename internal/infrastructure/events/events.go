package events

import (
	"context"
	"time"
)

const (
	TypeSOSDispatched     = "sos.dispatched"
	TypeLostFoundReported = "lostfound.reported"
)

// Event is the envelope written to the broker.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher hands events to the outside world.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
