// Package rabbitmq publishes integration events to a RabbitMQ broker.
// Publishing is best-effort by contract: it runs after the database
// transaction commits, and a broker failure must never undo the committed
// transition.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"orderflow/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// exchangeName is the topic exchange carrying order lifecycle events.
	exchangeName = "orders.events"

	// routingKeyPrefix is completed with the destination status, lowercased,
	// e.g. "order.status_changed.inprogress". Consumers bind with patterns
	// like "order.status_changed.*".
	routingKeyPrefix = "order.status_changed."
)

// Publisher implements ports.EventPublisher on top of an AMQP connection.
// A fresh channel is opened per publish; channels are cheap and this keeps
// the publisher safe for concurrent use without channel-level locking.
type Publisher struct {
	conn *amqp.Connection
}

// NewPublisher creates a publisher on an established AMQP connection.
// The connection lifecycle is owned by the caller.
func NewPublisher(conn *amqp.Connection) *Publisher {
	return &Publisher{conn: conn}
}

// Connect dials the broker and returns the connection for NewPublisher.
func Connect(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

// PublishOrderStatusChanged publishes a status-changed event to the topic
// exchange as a persistent JSON message.
func (p *Publisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err = ch.ExchangeDeclare(exchangeName, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	routingKey := routingKeyPrefix + strings.ToLower(event.ToStatus)

	err = ch.PublishWithContext(ctx, exchangeName, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}
