package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/snapshot"
)

// QRSnapshotRepository defines the persistence contract for versioned QR
// payload snapshots. One snapshot row per order.
type QRSnapshotRepository interface {
	// Upsert inserts the snapshot or replaces the existing one for the same
	// order, bumping the stored version.
	Upsert(ctx context.Context, snap *snapshot.QRSnapshot) error

	// Get retrieves the snapshot for an order.
	Get(ctx context.Context, orderID kernel.UUID) (*snapshot.QRSnapshot, error)

	// FindStaleOrderIDs returns identifiers of orders whose snapshot is
	// missing or no longer reflects the order's current status, up to limit.
	// Used by the reconciliation job to converge best-effort refreshes.
	FindStaleOrderIDs(ctx context.Context, limit int) ([]kernel.UUID, error)
}
