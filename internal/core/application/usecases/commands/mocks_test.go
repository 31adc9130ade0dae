package commands_test

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/ledger"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/snapshot"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockStatusHistoryRepository struct{ mock.Mock }

func (m *MockStatusHistoryRepository) Add(ctx context.Context, entry *ledger.StatusHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockStatusHistoryRepository) GetByOrderID(
	ctx context.Context, orderID kernel.UUID,
) ([]*ledger.StatusHistoryEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.StatusHistoryEntry), args.Error(1)
}

func (m *MockStatusHistoryRepository) GetLatestByOrderID(
	ctx context.Context, orderID kernel.UUID,
) (*ledger.StatusHistoryEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.StatusHistoryEntry), args.Error(1)
}

type MockAuditLogRepository struct{ mock.Mock }

func (m *MockAuditLogRepository) Add(ctx context.Context, entry *ledger.AuditLogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogRepository) GetByEntity(
	ctx context.Context, entityType string, entityID kernel.UUID,
) ([]*ledger.AuditLogEntry, error) {
	args := m.Called(ctx, entityType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ledger.AuditLogEntry), args.Error(1)
}

type MockQRSnapshotRepository struct{ mock.Mock }

func (m *MockQRSnapshotRepository) Upsert(ctx context.Context, snap *snapshot.QRSnapshot) error {
	args := m.Called(ctx, snap)
	return args.Error(0)
}

func (m *MockQRSnapshotRepository) Get(ctx context.Context, orderID kernel.UUID) (*snapshot.QRSnapshot, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*snapshot.QRSnapshot), args.Error(1)
}

func (m *MockQRSnapshotRepository) FindStaleOrderIDs(ctx context.Context, limit int) ([]kernel.UUID, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockOrderLedgerUoW satisfies commands.OrderLedgerUoW and, with the snapshot
// getter, commands.SnapshotUoW.
type MockOrderLedgerUoW struct{ mock.Mock }

func (m *MockOrderLedgerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderLedgerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderLedgerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderLedgerUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderLedgerUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.StatusHistoryRepository)
}

func (m *MockOrderLedgerUoW) AuditLogRepository() ports.AuditLogRepository {
	args := m.Called()
	return args.Get(0).(ports.AuditLogRepository)
}

func (m *MockOrderLedgerUoW) QRSnapshotRepository() ports.QRSnapshotRepository {
	args := m.Called()
	return args.Get(0).(ports.QRSnapshotRepository)
}

type MockOrderLedgerUoWFactory struct{ mock.Mock }

func (m *MockOrderLedgerUoWFactory) Create() commands.OrderLedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderLedgerUoW)
}

type MockSnapshotUoWFactory struct{ mock.Mock }

func (m *MockSnapshotUoWFactory) Create() commands.SnapshotUoW {
	args := m.Called()
	return args.Get(0).(commands.SnapshotUoW)
}
