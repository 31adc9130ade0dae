package commands_test

import (
	"errors"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/snapshot"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRefreshQRSnapshotsCommand(t *testing.T) {
	t.Run("should keep a positive batch size", func(t *testing.T) {
		cmd := commands.NewRefreshQRSnapshotsCommand(10)

		require.NoError(t, cmd.Validate())
		assert.Equal(t, 10, cmd.BatchSize())
	})

	t.Run("should default a non-positive batch size", func(t *testing.T) {
		assert.Equal(t, 50, commands.NewRefreshQRSnapshotsCommand(0).BatchSize())
		assert.Equal(t, 50, commands.NewRefreshQRSnapshotsCommand(-5).BatchSize())
	})

	t.Run("should fail validation when constructed directly", func(t *testing.T) {
		var cmd commands.RefreshQRSnapshotsCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrRefreshQRSnapshotsCommandIsNotConstructed, err)
	})
}

func TestRefreshQRSnapshotsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshQRSnapshotsCommand(10)

	first := newStoredOrder(t, order.InProgress)
	second := newStoredOrder(t, order.Delivered)
	staleIDs := []kernel.UUID{first.ID(), second.ID()}

	snapshots := new(MockQRSnapshotRepository)
	snapshots.On("FindStaleOrderIDs", mock.Anything, 10).Return(staleIDs, nil).Once()

	var upserted []*snapshot.QRSnapshot
	snapshots.On("Upsert", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			upserted = append(upserted, args.Get(1).(*snapshot.QRSnapshot))
		}).Return(nil).Twice()

	orders := new(MockOrderRepository)
	orders.On("GetForUpdate", mock.Anything, first.ID()).Return(first, nil).Once()
	orders.On("GetForUpdate", mock.Anything, second.ID()).Return(second, nil).Once()

	uow := new(MockOrderLedgerUoW)
	uow.On("QRSnapshotRepository").Return(snapshots)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	// One Create for the stale scan, one per repaired order.
	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewRefreshQRSnapshotsCommandHandler(factory)
	refreshed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, refreshed)
	require.Len(t, upserted, 2)
	assert.True(t, upserted[0].OrderID().IsEqual(first.ID()))
	assert.Equal(t, "InProgress", upserted[0].Payload().Status)
	assert.Equal(t, "Delivered", upserted[1].Payload().Status)
	snapshots.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRefreshQRSnapshotsCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshQRSnapshotsCommand(10)

	snapshots := new(MockQRSnapshotRepository)
	snapshots.On("FindStaleOrderIDs", mock.Anything, 10).Return([]kernel.UUID{}, nil).Once()

	uow := new(MockOrderLedgerUoW)
	uow.On("QRSnapshotRepository").Return(snapshots).Once()

	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshQRSnapshotsCommandHandler(factory)
	refreshed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, refreshed)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestRefreshQRSnapshotsCommandHandler_Handle_SkipsDeletedOrders(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshQRSnapshotsCommand(10)

	deletedID := kernel.NewUUID()
	survivor := newStoredOrder(t, order.Completed)
	staleIDs := []kernel.UUID{deletedID, survivor.ID()}

	snapshots := new(MockQRSnapshotRepository)
	snapshots.On("FindStaleOrderIDs", mock.Anything, 10).Return(staleIDs, nil).Once()
	snapshots.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()

	orders := new(MockOrderRepository)
	orders.On("GetForUpdate", mock.Anything, deletedID).
		Return(nil, errs.NewObjectNotFoundError("order", deletedID.String())).Once()
	orders.On("GetForUpdate", mock.Anything, survivor.ID()).Return(survivor, nil).Once()

	uow := new(MockOrderLedgerUoW)
	uow.On("QRSnapshotRepository").Return(snapshots)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewRefreshQRSnapshotsCommandHandler(factory)
	refreshed, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, refreshed, "a deleted order is skipped, not counted")
}

func TestRefreshQRSnapshotsCommandHandler_Handle_ScanError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshQRSnapshotsCommand(10)

	snapshots := new(MockQRSnapshotRepository)
	snapshots.On("FindStaleOrderIDs", mock.Anything, 10).
		Return(nil, errors.New("scan failed")).Once()

	uow := new(MockOrderLedgerUoW)
	uow.On("QRSnapshotRepository").Return(snapshots).Once()

	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRefreshQRSnapshotsCommandHandler(factory)
	refreshed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Zero(t, refreshed)
}

func TestRefreshQRSnapshotsCommandHandler_Handle_UpsertErrorStopsBatch(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewRefreshQRSnapshotsCommand(10)

	first := newStoredOrder(t, order.Pending)
	second := newStoredOrder(t, order.Executed)
	staleIDs := []kernel.UUID{first.ID(), second.ID()}

	snapshots := new(MockQRSnapshotRepository)
	snapshots.On("FindStaleOrderIDs", mock.Anything, 10).Return(staleIDs, nil).Once()
	snapshots.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("write failed")).Once()

	orders := new(MockOrderRepository)
	orders.On("GetForUpdate", mock.Anything, first.ID()).Return(first, nil).Once()

	uow := new(MockOrderLedgerUoW)
	uow.On("QRSnapshotRepository").Return(snapshots)
	uow.On("OrderRepository").Return(orders)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSnapshotUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewRefreshQRSnapshotsCommandHandler(factory)
	refreshed, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Zero(t, refreshed)
	orders.AssertNotCalled(t, "GetForUpdate", mock.Anything, second.ID())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRefreshQRSnapshotsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	factory := new(MockSnapshotUoWFactory)
	h := commands.NewRefreshQRSnapshotsCommandHandler(factory)

	_, err := h.Handle(ctx, commands.RefreshQRSnapshotsCommand{})

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
