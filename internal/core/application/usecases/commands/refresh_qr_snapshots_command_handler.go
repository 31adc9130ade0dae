package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/snapshot"
	"orderflow/internal/pkg/errs"
)

// RefreshQRSnapshotsCommandHandler repairs QR snapshots that are missing or
// stale relative to their order's current status. Each order is repaired in
// its own short transaction so one failing order does not block the rest of
// the batch.
type RefreshQRSnapshotsCommandHandler struct {
	uowFactory SnapshotUoWFactory
}

// NewRefreshQRSnapshotsCommandHandler creates a handler for snapshot reconciliation.
func NewRefreshQRSnapshotsCommandHandler(uowFactory SnapshotUoWFactory) RefreshQRSnapshotsCommandHandler {
	return RefreshQRSnapshotsCommandHandler{uowFactory: uowFactory}
}

// Handle finds stale snapshots and rewrites them from the current order rows.
// Returns the number of snapshots refreshed. An order deleted between the
// stale scan and the repair is skipped, not treated as a failure.
func (h RefreshQRSnapshotsCommandHandler) Handle(ctx context.Context, cmd RefreshQRSnapshotsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	staleIDs, err := h.uowFactory.Create().QRSnapshotRepository().FindStaleOrderIDs(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, orderID := range staleIDs {
		if err = h.refreshOne(ctx, orderID); err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return refreshed, err
		}
		refreshed++
	}

	return refreshed, nil
}

// refreshOne rewrites one order's snapshot inside its own transaction.
// The row lock keeps the snapshot consistent with a transition committing
// concurrently.
func (h RefreshQRSnapshotsCommandHandler) refreshOne(ctx context.Context, orderID kernel.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	snap, err := snapshot.NewQRSnapshot(target)
	if err != nil {
		return err
	}

	if err = uow.QRSnapshotRepository().Upsert(ctx, snap); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
