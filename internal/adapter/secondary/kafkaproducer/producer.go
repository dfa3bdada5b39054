package kafkaproducer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/skvare/redis-health/internal/config"
	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/port/secondary"
)

// Publisher implements secondary.AlertPublisher using segmentio/kafka-go.
// It maintains a single writer connection for all alert deliveries.
type Publisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// alertEvent is the wire form of a severity-transition alert.
type alertEvent struct {
	At       time.Time `json:"at"`
	Previous string    `json:"previous"`
	Current  string    `json:"current"`
	Failing  []string  `json:"failing,omitempty"`
	Summary  string    `json:"summary"`
}

// NewPublisher creates a Kafka alert publisher from the application configuration.
func NewPublisher(cfg *config.Config, logger *zap.Logger) secondary.AlertPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.AlertTopic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
	}

	logger.Info("kafka alert publisher initialized",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.AlertTopic),
	)

	return &Publisher{
		writer: writer,
		logger: logger.Named("kafka-alerts"),
	}
}

// Publish sends one alert event to the configured topic.
func (p *Publisher) Publish(ctx context.Context, alert *domain.Alert) error {
	event := alertEvent{
		At:       alert.At,
		Previous: alert.Previous.String(),
		Current:  alert.Current.String(),
		Failing:  alert.Failing,
		Summary:  alert.Summary,
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding alert event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%s|%s", event.Previous, event.Current)),
		Value: value,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrAlertPublishFailed, err)
	}

	p.logger.Debug("alert published",
		zap.String("previous", event.Previous),
		zap.String("current", event.Current),
	)

	return nil
}

// Close shuts down the Kafka writer and releases its resources.
func (p *Publisher) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
