// Package stream publishes dispatch outcomes to Kafka for downstream
// analytics. Publishing is best-effort: the dispatcher treats failures the
// same way it treats audit-log write failures.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/estatedesk/lead-notification-service/internal/domain"
	"github.com/estatedesk/lead-notification-service/pkg/backoff"
	"github.com/estatedesk/lead-notification-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher implements stream.Publisher using a kafka-go writer.
type KafkaPublisher struct {
	writer     *kafka.Writer
	topic      string
	maxRetries int
	baseDelay  time.Duration
}

// Config holds configuration for the KafkaPublisher.
type Config struct {
	Brokers    []string
	Topic      string
	MaxRetries int
	BaseDelay  time.Duration
}

// NewKafkaPublisher creates a publisher. Both brokers and topic must be set;
// callers that leave Kafka unconfigured should skip construction entirely.
func NewKafkaPublisher(cfg Config) (*KafkaPublisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers cannot be empty")
	}
	if cfg.Topic == "" {
		return nil, fmt.Errorf("kafka topic cannot be empty")
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 200 * time.Millisecond
	}

	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}

	logger.L().Info("kafka dispatch publisher initialized",
		zap.String("topic", cfg.Topic),
		zap.Strings("brokers", cfg.Brokers),
	)

	return &KafkaPublisher{
		writer:     w,
		topic:      cfg.Topic,
		maxRetries: cfg.MaxRetries,
		baseDelay:  cfg.BaseDelay,
	}, nil
}

// PublishDispatch writes one dispatch outcome, keyed by correlation id.
// Transient failures are retried with exponential backoff before giving up.
func (p *KafkaPublisher) PublishDispatch(ctx context.Context, outcome domain.DispatchOutcome) error {
	value, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("error marshalling dispatch outcome: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(outcome.CorrelationID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(outcome.EventType)},
		},
	}

	var lastErr error
	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		if delay := backoff.Delay(attempt, p.baseDelay); delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if lastErr = p.writer.WriteMessages(ctx, msg); lastErr == nil {
			return nil
		}
		logger.L().Warn("dispatch publish attempt failed",
			zap.String("topic", p.topic),
			zap.Int("attempt", attempt),
			zap.Error(lastErr),
		)
	}
	return fmt.Errorf("publishing dispatch outcome after %d attempts: %w", p.maxRetries, lastErr)
}

// Close flushes and closes the writer.
func (p *KafkaPublisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
