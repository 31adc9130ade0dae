package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var ErrRefreshQRSnapshotsCommandIsNotConstructed = errors.New(
	"RefreshQRSnapshotsCommand must be created via NewRefreshQRSnapshotsCommand constructor",
)

// defaultRefreshBatchSize bounds how many stale snapshots one run repairs.
const defaultRefreshBatchSize = 50

// RefreshQRSnapshotsCommand requests reconciliation of QR snapshots that are
// missing or fell behind their order's status. Snapshot refreshes at
// transition time are best-effort, so this command is what makes them
// eventually converge.
type RefreshQRSnapshotsCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

// NewRefreshQRSnapshotsCommand creates a reconciliation command.
// A non-positive batch size falls back to the default.
func NewRefreshQRSnapshotsCommand(batchSize int) RefreshQRSnapshotsCommand {
	if batchSize <= 0 {
		batchSize = defaultRefreshBatchSize
	}
	return RefreshQRSnapshotsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RefreshQRSnapshotsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshQRSnapshotsCommandIsNotConstructed)
}

// BatchSize returns the maximum number of snapshots to repair in one run.
func (c RefreshQRSnapshotsCommand) BatchSize() int {
	return c.batchSize
}
