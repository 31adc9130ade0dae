package ledger

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// ErrStatusHistoryEntryIsNotConstructed is returned when a StatusHistoryEntry
// was not created through its factory methods.
var ErrStatusHistoryEntryIsNotConstructed = errors.New(
	"StatusHistoryEntry must be created via NewStatusHistoryEntry or RestoreStatusHistoryEntry",
)

// ChangeMetadata carries structured context about a status change: where the
// change originated, when it happened, and the order number at the time for
// human-friendly ledger reading.
type ChangeMetadata struct {
	Source      string    `json:"source"`
	ChangedAt   time.Time `json:"changed_at"`
	OrderNumber string    `json:"order_number,omitempty"`
}

// StatusHistoryEntry is one row of the order's append-only status ledger.
// An entry is created exactly once per accepted transition (and once at order
// creation, with no source status) and is never updated or deleted afterwards.
//
// Invariant: an order's current status always equals the destination status of
// its most recent entry, ordered by creation time. The transactional discipline
// of the order service guarantees this; the entry itself only validates its own
// fields.
type StatusHistoryEntry struct {
	id kernel.UUID

	orderID kernel.UUID

	// fromStatus is nil only for the creation event
	fromStatus *order.Status

	toStatus order.Status

	// changedBy is nil for system-originated changes
	changedBy *kernel.UUID

	reason string

	metadata ChangeMetadata

	createdAt time.Time

	isConstructed bool
}

// NewStatusHistoryEntry creates a ledger entry for an accepted status change.
// A fresh identifier and creation timestamp are assigned; callers only supply
// the facts of the transition. fromStatus must be nil exactly when the entry
// records order creation.
func NewStatusHistoryEntry(
	orderID kernel.UUID,
	fromStatus *order.Status,
	toStatus order.Status,
	changedBy *kernel.UUID,
	reason string,
	metadata ChangeMetadata,
) (*StatusHistoryEntry, error) {
	return RestoreStatusHistoryEntry(
		kernel.NewUUID(), orderID, fromStatus, toStatus, changedBy, reason, metadata, time.Now().UTC(),
	)
}

// RestoreStatusHistoryEntry reconstructs an entry from persistence.
func RestoreStatusHistoryEntry(
	id kernel.UUID,
	orderID kernel.UUID,
	fromStatus *order.Status,
	toStatus order.Status,
	changedBy *kernel.UUID,
	reason string,
	metadata ChangeMetadata,
	createdAt time.Time,
) (*StatusHistoryEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if fromStatus != nil {
		if err := fromStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if err := toStatus.Validate(); err != nil {
		return nil, err
	}
	if changedBy != nil {
		if err := changedBy.Validate(); err != nil {
			return nil, err
		}
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &StatusHistoryEntry{
		id:            id,
		orderID:       orderID,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		changedBy:     changedBy,
		reason:        reason,
		metadata:      metadata,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a factory method.
func (e *StatusHistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrStatusHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *StatusHistoryEntry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the entry belongs to.
func (e *StatusHistoryEntry) OrderID() kernel.UUID {
	return e.orderID
}

// FromStatus returns the source status, or nil for the creation event.
func (e *StatusHistoryEntry) FromStatus() *order.Status {
	return e.fromStatus
}

// ToStatus returns the destination status.
func (e *StatusHistoryEntry) ToStatus() order.Status {
	return e.toStatus
}

// ChangedBy returns the acting user's identifier, or nil for system changes.
func (e *StatusHistoryEntry) ChangedBy() *kernel.UUID {
	return e.changedBy
}

// Reason returns the free-text reason supplied with the change.
func (e *StatusHistoryEntry) Reason() string {
	return e.reason
}

// Metadata returns the structured change context.
func (e *StatusHistoryEntry) Metadata() ChangeMetadata {
	return e.metadata
}

// CreatedAt returns when the entry was recorded.
func (e *StatusHistoryEntry) CreatedAt() time.Time {
	return e.createdAt
}
