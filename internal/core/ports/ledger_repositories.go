package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/ledger"
)

// StatusHistoryRepository defines the persistence contract for the append-only
// status ledger. There is deliberately no update or delete operation.
type StatusHistoryRepository interface {
	// Add appends one status history entry.
	Add(ctx context.Context, entry *ledger.StatusHistoryEntry) error

	// GetByOrderID retrieves all entries for an order, oldest first.
	// Ordering is by creation time; ties break on insertion sequence.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) ([]*ledger.StatusHistoryEntry, error)

	// GetLatestByOrderID retrieves the most recent entry for an order.
	GetLatestByOrderID(ctx context.Context, orderID kernel.UUID) (*ledger.StatusHistoryEntry, error)
}

// AuditLogRepository defines the persistence contract for the append-only
// audit trail.
type AuditLogRepository interface {
	// Add appends one audit entry.
	Add(ctx context.Context, entry *ledger.AuditLogEntry) error

	// GetByEntity retrieves all entries for one entity, oldest first.
	GetByEntity(ctx context.Context, entityType string, entityID kernel.UUID) ([]*ledger.AuditLogEntry, error)
}
