package events

import (
	"context"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	sdk "github.com/segmentio/kafka-go"
	"golang.org/x/exp/slog"

	"safetrip/internal/metrics"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...sdk.Message) error
	Close() error
}

const defaultPublishTimeout = 2 * time.Second

// Kafka publishes events as JSON messages keyed by Event.Key. Each write is
// bounded by the publish timeout.
type Kafka struct {
	writer  MessageWriter
	timeout time.Duration
	log     *slog.Logger
}

func NewKafkaWriter(brokers []string, topic string) *sdk.Writer {
	return &sdk.Writer{
		Addr:                   sdk.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &sdk.Hash{},
		RequiredAcks:           sdk.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		MaxAttempts:            3,
		WriteTimeout:           time.Second,
		AllowAutoTopicCreation: true,
	}
}

func NewKafka(writer MessageWriter, timeout time.Duration, log *slog.Logger) *Kafka {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &Kafka{
		writer:  writer,
		timeout: timeout,
		log:     log.With("component", "kafka_publisher"),
	}
}

func (k *Kafka) Publish(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	value, err := json.Marshal(e)
	if err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(e.Type, "failure").Inc()
		return fmt.Errorf("encode event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, k.timeout)
	defer cancel()

	err = k.writer.WriteMessages(ctx, sdk.Message{
		Key:   []byte(e.Key),
		Value: value,
		Headers: []sdk.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	})
	if err != nil {
		metrics.EventsPublishedTotal.WithLabelValues(e.Type, "failure").Inc()
		k.log.Error("failed to publish event", "type", e.Type, "id", e.ID, "error", err)
		return fmt.Errorf("write event: %w", err)
	}

	metrics.EventsPublishedTotal.WithLabelValues(e.Type, "success").Inc()
	return nil
}

func (k *Kafka) Close() error {
	return k.writer.Close()
}
