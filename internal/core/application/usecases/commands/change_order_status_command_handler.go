package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"orderflow/internal/core/domain/model/ledger"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/snapshot"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"
)

// ErrOrderNotFound is returned when the target order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// ChangeOrderStatusCommandHandler applies a status transition to an order.
//
// The handler implements the transition-apply contract: the order is loaded
// under a pessimistic row lock, the transition is validated against the fresh
// status (never against whatever the caller read earlier), and the three
// writes — order status, status history entry, audit entry — go through one
// unit of work so they commit together or not at all. Two concurrent requests
// against the same order serialize on the row lock; the loser re-reads the
// winner's committed status and fails validation cleanly instead of
// corrupting the record.
//
// After a successful commit the handler refreshes the QR snapshot and
// publishes a status-changed event. Both are best-effort: a failure is logged
// and never undoes the committed transition.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, snapshots, publisher, logger)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.InProgress, actorID, order.Operator, "start work")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderNotFound):
//	    // 404
//	case errors.Is(err, order.ErrTransitionNotAllowed):
//	    // 403, offer order.AllowedNextStates(role, current) to the client
//	case err != nil:
//	    // 500
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderLedgerUoWFactory
	snapshots  ports.QRSnapshotRepository
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// The snapshot repository and publisher may be nil; the corresponding
// best-effort side effects are then skipped.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderLedgerUoWFactory,
	snapshots ports.QRSnapshotRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		snapshots:  snapshots,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the status change command.
// Returns ErrOrderNotFound if the order does not exist and
// order.ErrTransitionNotAllowed if the role may not perform the transition
// from the order's current status. On any error the order and both ledgers
// are left untouched.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ordersRepo := uow.OrderRepository()

	// The lock serializes concurrent transitions; the status read here is the
	// committed one, so CanTransition never sees a stale source state.
	target, err := ordersRepo.GetForUpdate(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	fromStatus := target.Status()
	if err = target.ChangeStatus(cmd.Role(), cmd.ToStatus()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, target); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	historyEntry, err := ledger.NewStatusHistoryEntry(
		target.ID(),
		&fromStatus,
		target.Status(),
		&actorID,
		cmd.Reason(),
		ledger.ChangeMetadata{
			Source:      changeSourceAPI,
			ChangedAt:   time.Now().UTC(),
			OrderNumber: target.OrderNumber(),
		},
	)
	if err != nil {
		return err
	}

	if err = uow.StatusHistoryRepository().Add(ctx, historyEntry); err != nil {
		return err
	}

	auditEntry, err := ledger.NewAuditLogEntry(
		ledger.ActionOrderStatusChange,
		ledger.EntityTypeOrder,
		target.ID(),
		&actorID,
		ledger.StatusChangeDiff{From: &fromStatus, To: target.Status(), Reason: cmd.Reason()},
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

	h.refreshSnapshot(ctx, target)
	h.publishStatusChanged(ctx, target, fromStatus, cmd)
	return nil
}

// refreshSnapshot regenerates the QR snapshot for the order's new state.
// Best-effort: a failure is logged and left for the reconciliation job.
func (h ChangeOrderStatusCommandHandler) refreshSnapshot(ctx context.Context, o *order.Order) {
	if h.snapshots == nil {
		return
	}

	snap, err := snapshot.NewQRSnapshot(o)
	if err == nil {
		err = h.snapshots.Upsert(ctx, snap)
	}
	if err != nil && h.logger != nil {
		h.logger.WarnContext(ctx, "QR snapshot refresh failed",
			"order_id", o.ID().String(), "error", err)
	}
}

// publishStatusChanged emits the integration event for the committed
// transition. Best-effort: a failure is logged, never propagated.
func (h ChangeOrderStatusCommandHandler) publishStatusChanged(
	ctx context.Context,
	o *order.Order,
	fromStatus order.Status,
	cmd ChangeOrderStatusCommand,
) {
	if h.publisher == nil {
		return
	}

	event := ports.OrderStatusChangedEvent{
		OrderID:     o.ID().String(),
		OrderNumber: o.OrderNumber(),
		FromStatus:  fromStatus.String(),
		ToStatus:    o.Status().String(),
		ActorID:     cmd.ActorID().String(),
		Reason:      cmd.Reason(),
		OccurredAt:  time.Now().UTC(),
	}

	if err := h.publisher.PublishOrderStatusChanged(ctx, event); err != nil && h.logger != nil {
		h.logger.WarnContext(ctx, "status changed event publish failed",
			"order_id", o.ID().String(), "error", err)
	}
}
