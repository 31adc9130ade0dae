package ledger

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// ErrAuditLogEntryIsNotConstructed is returned when an AuditLogEntry was not
// created through its factory methods.
var ErrAuditLogEntryIsNotConstructed = errors.New(
	"AuditLogEntry must be created via NewAuditLogEntry or RestoreAuditLogEntry",
)

// AuditAction tags what kind of operation an audit entry records.
type AuditAction string

const (
	// ActionOrderCreate records the creation of an order.
	ActionOrderCreate AuditAction = "ORDER_CREATE"

	// ActionOrderStatusChange records an accepted status transition.
	ActionOrderStatusChange AuditAction = "ORDER_STATUS_CHANGE"
)

// Validate checks that the action is one of the known tags.
func (a AuditAction) Validate() error {
	switch a {
	case ActionOrderCreate, ActionOrderStatusChange:
		return nil
	default:
		return errs.NewValueIsInvalidError("action")
	}
}

// EntityTypeOrder is the entity type tag for order-related audit entries.
const EntityTypeOrder = "Order"

// StatusChangeDiff is the structured before/after payload of an audit entry.
// From is nil for the creation event.
type StatusChangeDiff struct {
	From   *order.Status `json:"from,omitempty"`
	To     order.Status  `json:"to"`
	Reason string        `json:"reason,omitempty"`
}

// AuditLogEntry is one row of the system-wide append-only audit trail. Its
// scope is broader than the status ledger (any entity, any action tag), though
// this service only writes order entries. Entries are created once and never
// updated or deleted.
type AuditLogEntry struct {
	id kernel.UUID

	action AuditAction

	entityType string

	entityID kernel.UUID

	// actorID is nil for system-originated actions
	actorID *kernel.UUID

	diff StatusChangeDiff

	createdAt time.Time

	isConstructed bool
}

// NewAuditLogEntry creates an audit entry with a fresh identifier and
// creation timestamp.
func NewAuditLogEntry(
	action AuditAction,
	entityType string,
	entityID kernel.UUID,
	actorID *kernel.UUID,
	diff StatusChangeDiff,
) (*AuditLogEntry, error) {
	return RestoreAuditLogEntry(kernel.NewUUID(), action, entityType, entityID, actorID, diff, time.Now().UTC())
}

// RestoreAuditLogEntry reconstructs an entry from persistence.
func RestoreAuditLogEntry(
	id kernel.UUID,
	action AuditAction,
	entityType string,
	entityID kernel.UUID,
	actorID *kernel.UUID,
	diff StatusChangeDiff,
	createdAt time.Time,
) (*AuditLogEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := action.Validate(); err != nil {
		return nil, err
	}
	if entityType == "" {
		return nil, errs.NewValueIsRequiredError("entityType")
	}
	if err := entityID.Validate(); err != nil {
		return nil, err
	}
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return nil, err
		}
	}
	if err := diff.To.Validate(); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &AuditLogEntry{
		id:            id,
		action:        action,
		entityType:    entityType,
		entityID:      entityID,
		actorID:       actorID,
		diff:          diff,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a factory method.
func (e *AuditLogEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrAuditLogEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *AuditLogEntry) ID() kernel.UUID {
	return e.id
}

// Action returns the operation tag.
func (e *AuditLogEntry) Action() AuditAction {
	return e.action
}

// EntityType returns the type of the audited entity.
func (e *AuditLogEntry) EntityType() string {
	return e.entityType
}

// EntityID returns the identifier of the audited entity.
func (e *AuditLogEntry) EntityID() kernel.UUID {
	return e.entityID
}

// ActorID returns the acting user's identifier, or nil for system actions.
func (e *AuditLogEntry) ActorID() *kernel.UUID {
	return e.actorID
}

// Diff returns the structured before/after payload.
func (e *AuditLogEntry) Diff() StatusChangeDiff {
	return e.diff
}

// CreatedAt returns when the entry was recorded.
func (e *AuditLogEntry) CreatedAt() time.Time {
	return e.createdAt
}
