package commands

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/ledger"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/snapshot"
	"orderflow/internal/core/ports"
)

const changeSourceAPI = "api"

// CreateOrderCommandHandler handles the business logic for order creation.
// Creates the order in Pending status and, in the same transaction, the
// creation entry of the status ledger (no source status) and an ORDER_CREATE
// audit entry. The initial QR snapshot is written best-effort after commit.
type CreateOrderCommandHandler struct {
	uowFactory OrderLedgerUoWFactory
	snapshots  ports.QRSnapshotRepository
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// The snapshot repository may be nil, in which case the initial snapshot is
// left to the reconciliation job.
func NewCreateOrderCommandHandler(
	uowFactory OrderLedgerUoWFactory,
	snapshots ports.QRSnapshotRepository,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		snapshots:  snapshots,
		logger:     logger,
	}
}

// Handle processes the order creation command.
// The order row, its creation history entry and its audit entry commit
// together or not at all.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.CustomerID(),
		cmd.PlantID(),
		cmd.TotalAmount(),
		cmd.EstimatedDeliveryAt(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	historyEntry, err := ledger.NewStatusHistoryEntry(
		newOrder.ID(),
		nil, // creation event has no source status
		newOrder.Status(),
		cmd.ActorID(),
		"Order created",
		ledger.ChangeMetadata{
			Source:      changeSourceAPI,
			ChangedAt:   time.Now().UTC(),
			OrderNumber: newOrder.OrderNumber(),
		},
	)
	if err != nil {
		return err
	}

	if err = uow.StatusHistoryRepository().Add(ctx, historyEntry); err != nil {
		return err
	}

	auditEntry, err := ledger.NewAuditLogEntry(
		ledger.ActionOrderCreate,
		ledger.EntityTypeOrder,
		newOrder.ID(),
		cmd.ActorID(),
		ledger.StatusChangeDiff{To: newOrder.Status(), Reason: "Order created"},
	)
	if err != nil {
		return err
	}

	if err = uow.AuditLogRepository().Add(ctx, auditEntry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.refreshSnapshot(ctx, newOrder)
	return nil
}

// refreshSnapshot writes the initial QR snapshot. Best-effort: a failure is
// logged and left for the reconciliation job to retry.
func (h CreateOrderCommandHandler) refreshSnapshot(ctx context.Context, o *order.Order) {
	if h.snapshots == nil {
		return
	}

	snap, err := snapshot.NewQRSnapshot(o)
	if err == nil {
		err = h.snapshots.Upsert(ctx, snap)
	}
	if err != nil && h.logger != nil {
		h.logger.WarnContext(ctx, "initial QR snapshot write failed",
			"order_id", o.ID().String(), "error", err)
	}
}
