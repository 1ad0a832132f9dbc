package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/straye-as/pipeline-api/internal/config"
	"go.uber.org/zap"
)

// RabbitMQPublisher publishes lead events to a durable topic exchange
type RabbitMQPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *zap.Logger
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

// NewRabbitMQPublisher dials the broker and declares the exchange
func NewRabbitMQPublisher(cfg *config.EventsConfig, logger *zap.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", cfg.Exchange, err)
	}

	logger.Info("RabbitMQ publisher ready", zap.String("exchange", cfg.Exchange))

	return &RabbitMQPublisher{
		conn:     conn,
		ch:       ch,
		exchange: cfg.Exchange,
		logger:   logger,
	}, nil
}

// PublishStatusChanged implements Publisher
func (p *RabbitMQPublisher) PublishStatusChanged(ctx context.Context, event LeadStatusChanged) error {
	msg, err := newPublishing(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, p.exchange, RoutingKeyStatusChanged, false, false, msg); err != nil {
		return fmt.Errorf("failed to publish %s: %w", RoutingKeyStatusChanged, err)
	}
	return nil
}

// Close closes the channel and the connection
func (p *RabbitMQPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.logger.Warn("failed to close RabbitMQ channel", zap.Error(err))
	}
	return p.conn.Close()
}

func newPublishing(event LeadStatusChanged) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to encode event: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.LeadID.String() + ":" + event.OccurredAt.UTC().Format("20060102T150405.000000000"),
		Timestamp:    event.OccurredAt,
		Type:         RoutingKeyStatusChanged,
		Body:         body,
	}, nil
}
