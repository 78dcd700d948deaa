package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"

	"orderdesk/internal/domain/drafts"
	"orderdesk/pkg/logger"
)

// messageReader is the subset of *kafkaGo.Reader the consumer uses.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafkaGo.Message, error)
	Close() error
}

// OrderHandler processes one decoded order event.
type OrderHandler func(ctx context.Context, event drafts.OrderCreated) error

// ConsumerConfig configures a consumer group reader.
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string

	// RetryBackoff is the pause after a failed read.
	RetryBackoff time.Duration
}

// Consumer reads order events for the production floor.
type Consumer struct {
	reader  messageReader
	topic   string
	backoff time.Duration
	log     *logger.Logger
}

// NewConsumer creates a consumer group reader on the order topic.
func NewConsumer(cfg ConsumerConfig, log *logger.Logger) (*Consumer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("kafka: at least one broker is required")
	}
	if cfg.Topic == "" || cfg.GroupID == "" {
		return nil, errors.New("kafka: topic and group id are required")
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
	return newConsumer(reader, cfg.Topic, cfg.RetryBackoff, log), nil
}

func newConsumer(r messageReader, topic string, backoff time.Duration, log *logger.Logger) *Consumer {
	if backoff <= 0 {
		backoff = time.Second
	}
	if log == nil {
		log = logger.Default()
	}
	return &Consumer{
		reader:  r,
		topic:   topic,
		backoff: backoff,
		log:     log.WithComponent("kafka-consumer").With("topic", topic),
	}
}

// Run reads until ctx is cancelled. Undecodable messages and handler failures are
// logged and skipped; the group offset still advances past them.
func (c *Consumer) Run(ctx context.Context, handle OrderHandler) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Info("consumer shutting down")
				return
			}
			c.log.Errorw("error reading message", "error", err)
			select {
			case <-ctx.Done():
				c.log.Info("consumer shutting down")
				return
			case <-time.After(c.backoff):
			}
			continue
		}

		var event drafts.OrderCreated
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warnw("skipping undecodable message",
				"offset", msg.Offset,
				"partition", msg.Partition,
				"error", err,
			)
			continue
		}

		if err := handle(ctx, event); err != nil {
			c.log.Errorw("error handling message",
				"order_id", event.OrderID,
				"offset", msg.Offset,
				"error", err,
			)
		}
	}
}

// Close stops the reader and leaves the consumer group.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
