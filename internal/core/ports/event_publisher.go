package ports

import (
	"context"
	"time"
)

// OrderStatusChangedEvent is the integration message emitted after a status
// transition commits. Statuses and identifiers are carried as strings since
// the message leaves the typed core.
type OrderStatusChangedEvent struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	ActorID     string    `json:"actor_id,omitempty"`
	Reason      string    `json:"reason,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher publishes integration events to the message broker.
// Publishing is best-effort: it happens after the transaction commits and a
// failure must never undo or abort the committed transition.
type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
