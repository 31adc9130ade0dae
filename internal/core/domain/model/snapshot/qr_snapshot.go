// Package snapshot models the versioned QR payload kept alongside each order.
// The payload captures the QR-affecting order fields; rendering it into an
// image is out of scope for this service. Refreshing the snapshot is a
// best-effort side effect of order mutations and a reconciliation job retries
// orders whose snapshot fell behind.
package snapshot

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// ErrQRSnapshotIsNotConstructed is returned when a QRSnapshot was not created
// through its factory methods.
var ErrQRSnapshotIsNotConstructed = errors.New(
	"QRSnapshot must be created via NewQRSnapshot or RestoreQRSnapshot",
)

// Payload is the JSON-serializable subset of order fields encoded into the QR
// code. Status is carried as its string form so a stale snapshot can be
// detected by comparing against the order row.
type Payload struct {
	OrderID             string    `json:"order_id"`
	OrderNumber         string    `json:"order_number"`
	Status              string    `json:"status"`
	TotalAmount         int64     `json:"total_amount"`
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
}

// PayloadFromOrder builds the QR payload for the order's current state.
func PayloadFromOrder(o *order.Order) Payload {
	return Payload{
		OrderID:             o.ID().String(),
		OrderNumber:         o.OrderNumber(),
		Status:              o.Status().String(),
		TotalAmount:         o.TotalAmount(),
		EstimatedDeliveryAt: o.EstimatedDeliveryAt(),
	}
}

// QRSnapshot is the stored snapshot for one order. Version counts refreshes;
// it starts at 1 and the repository bumps it on every upsert.
type QRSnapshot struct {
	orderID kernel.UUID

	payload Payload

	version int

	updatedAt time.Time

	isConstructed bool
}

// NewQRSnapshot creates the first snapshot version for an order.
func NewQRSnapshot(o *order.Order) (*QRSnapshot, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return RestoreQRSnapshot(o.ID(), PayloadFromOrder(o), 1, time.Now().UTC())
}

// RestoreQRSnapshot reconstructs a snapshot from persistence.
func RestoreQRSnapshot(orderID kernel.UUID, payload Payload, version int, updatedAt time.Time) (*QRSnapshot, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if version < 1 {
		version = 1
	}

	return &QRSnapshot{
		orderID:       orderID,
		payload:       payload,
		version:       version,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the snapshot was created through a factory method.
func (s *QRSnapshot) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrQRSnapshotIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the snapshotted order.
func (s *QRSnapshot) OrderID() kernel.UUID {
	return s.orderID
}

// Payload returns the encoded order fields.
func (s *QRSnapshot) Payload() Payload {
	return s.payload
}

// Version returns the refresh counter.
func (s *QRSnapshot) Version() int {
	return s.version
}

// UpdatedAt returns when the snapshot was last refreshed.
func (s *QRSnapshot) UpdatedAt() time.Time {
	return s.updatedAt
}
