// Package kafka carries order desk events over Kafka, both out of the desk and into the production worker.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"orderdesk/internal/domain/drafts"
)

// messageWriter is the subset of *kafkaGo.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// Publisher implements drafts.EventPublisher on a single long-lived writer.
type Publisher struct {
	writer messageWriter
	topic  string
}

var _ drafts.EventPublisher = (*Publisher)(nil)

// Config configures the order event writer.
type Config struct {
	Brokers []string
	Topic   string

	// WriteTimeout bounds a single publish; zero keeps the kafka-go default.
	WriteTimeout time.Duration

	// BatchTimeout caps how long a write waits for a batch to fill.
	// Publishes happen inside the invoice request, so zero means DefaultBatchTimeout.
	BatchTimeout time.Duration
}

// DefaultBatchTimeout replaces kafka-go's one second batch wait.
const DefaultBatchTimeout = 10 * time.Millisecond

// NewPublisher creates a publisher for the order topic.
func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}
	if cfg.Topic == "" {
		return nil, errors.New("kafka: topic is required")
	}

	batchTimeout := cfg.BatchTimeout
	if batchTimeout <= 0 {
		batchTimeout = DefaultBatchTimeout
	}

	w := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkaGo.LeastBytes{},
		WriteTimeout:           cfg.WriteTimeout,
		BatchTimeout:           batchTimeout,
		AllowAutoTopicCreation: true,
	}
	return newPublisher(w, cfg.Topic), nil
}

func newPublisher(w messageWriter, topic string) *Publisher {
	return &Publisher{writer: w, topic: topic}
}

// PublishOrderCreated writes the event keyed by order ID so one order stays on one partition.
func (p *Publisher) PublishOrderCreated(ctx context.Context, event drafts.OrderCreated) error {
	msg, err := orderCreatedMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close flushes pending messages and releases connections.
func (p *Publisher) Close() error {
	return p.writer.Close()
}

func orderCreatedMessage(event drafts.OrderCreated) (kafkaGo.Message, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal event: %w", err)
	}
	return kafkaGo.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Headers: []kafkaGo.Header{
			{Key: "event-type", Value: []byte("order.created")},
		},
	}, nil
}
