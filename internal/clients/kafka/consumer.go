package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"campaign-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

// MessageHandler processes one Kafka message
type MessageHandler func(ctx context.Context, message kafka.Message) error

// Consumer reads a topic and hands every message to a handler
type Consumer struct {
	reader  *kafka.Reader
	logger  *observability.Logger
	handler MessageHandler
}

// ConsumerConfig holds configuration for the Kafka consumer
type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
	MaxWait time.Duration // Max time to wait for new data (default 1s)
}

// NewConsumer creates a consumer that starts at the newest offset the first
// time its group is seen
func NewConsumer(config ConsumerConfig, handler MessageHandler, logger *observability.Logger) *Consumer {
	maxWait := config.MaxWait
	if maxWait == 0 {
		maxWait = time.Second
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        config.Brokers,
		Topic:          config.Topic,
		GroupID:        config.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6, // 10MB
		MaxWait:        maxWait,
		StartOffset:    kafka.LastOffset,
		CommitInterval: time.Second, // Commit offsets every second
		// Session timeout - consumer is considered dead if no heartbeat in this time
		SessionTimeout: 30 * time.Second,
		// Heartbeat interval
		HeartbeatInterval: 3 * time.Second,
	})

	return &Consumer{
		reader:  reader,
		logger:  logger,
		handler: handler,
	}
}

// Start consumes until ctx is cancelled. A message whose handler fails is
// logged and committed so it is never redelivered.
func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, fmt.Sprintf("starting consumer for topic %s with group %s", c.reader.Config().Topic, c.reader.Config().GroupID))

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			// io.EOF means the reader was closed
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, io.EOF) {
				c.logger.Info(ctx, "consumer stopped")
				return nil
			}
			c.logger.Error(ctx, "error fetching message", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(time.Second): // Back off on error
			}
			continue
		}

		msgCtx := observability.WithFields(ctx,
			observability.Field{Key: "topic", Value: msg.Topic},
			observability.Field{Key: "partition", Value: msg.Partition},
			observability.Field{Key: "offset", Value: msg.Offset},
		)
		if err := c.handler(msgCtx, msg); err != nil {
			c.logger.Error(msgCtx, "failed to process message", err)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			c.logger.Error(msgCtx, "failed to commit offset", err)
		}
	}
}

// Close closes the consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
