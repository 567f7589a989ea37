package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"inkpress/src/core/ports"
)

const ExchangeName = "inkpress.events"

var errPublisherClosed = errors.New("publisher closed")

// RabbitMQPublisher sends events to a durable topic exchange, using the
// event type as the routing key. Channel use is serialised.
type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	log     *slog.Logger
	mu      sync.Mutex
	once    sync.Once
}

func NewRabbitMQPublisher(url string, log *slog.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(ExchangeName, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	log.Info("rabbitmq publisher ready", "exchange", ExchangeName)
	return &RabbitMQPublisher{conn: conn, channel: ch, log: log}, nil
}

func (p *RabbitMQPublisher) PublishPostPublished(ctx context.Context, e ports.PostPublished) error {
	return p.publish(ctx, TypePostPublished, NewPostPublished(e), amqp.Persistent)
}

// Revalidate announces that cached renderings of path are stale. These are
// transient: a missed invalidation only delays freshness.
func (p *RabbitMQPublisher) Revalidate(ctx context.Context, path string) error {
	return p.publish(ctx, TypeViewRevalidate, NewViewRevalidate(path), amqp.Transient)
}

func (p *RabbitMQPublisher) publish(ctx context.Context, routingKey string, msg any, mode uint8) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return errPublisherClosed
	}
	err = p.channel.PublishWithContext(ctx, ExchangeName, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: mode,
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", routingKey, err)
	}
	return nil
}

// Health reports whether the broker connection is still open.
func (p *RabbitMQPublisher) Health(context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.conn.IsClosed() {
		return errPublisherClosed
	}
	return nil
}

func (p *RabbitMQPublisher) Close() error {
	var err error
	p.once.Do(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.channel != nil {
			err = p.channel.Close()
			p.channel = nil
		}
		if p.conn != nil {
			if closeErr := p.conn.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
			p.conn = nil
		}
		p.log.Info("rabbitmq publisher closed")
	})
	return err
}

var (
	_ ports.EventPublisher  = (*RabbitMQPublisher)(nil)
	_ ports.ViewInvalidator = (*RabbitMQPublisher)(nil)
)
