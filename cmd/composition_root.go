package cmd

import (
	"log/slog"

	"orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/snapshotrepo"
	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers. The publisher may be
// nil when the broker is not configured; status-changed events are then
// skipped and everything else keeps working.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	snapshots  ports.QRSnapshotRepository
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		snapshots:  snapshotrepo.NewGormQRSnapshotRepository(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderLedgerUoWFactory = FuncOrderLedgerUoWFactory(func() commands.OrderLedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.snapshots, c.logger)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderLedgerUoWFactory = FuncOrderLedgerUoWFactory(func() commands.OrderLedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.snapshots, c.publisher, c.logger)
}

func (c *CompositionRoot) CreateRefreshQRSnapshotsCommandHandler() commands.RefreshQRSnapshotsCommandHandler {
	var f commands.SnapshotUoWFactory = FuncSnapshotUoWFactory(func() commands.SnapshotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshQRSnapshotsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatusHistoryQueryHandler() queries.GetStatusHistoryQueryHandler {
	return queries.NewGetStatusHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAuditTrailQueryHandler() queries.GetAuditTrailQueryHandler {
	return queries.NewGetAuditTrailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllowedNextStatesQueryHandler() queries.GetAllowedNextStatesQueryHandler {
	return queries.NewGetAllowedNextStatesQueryHandler()
}

type FuncOrderLedgerUoWFactory func() commands.OrderLedgerUoW

func (f FuncOrderLedgerUoWFactory) Create() commands.OrderLedgerUoW {
	return f()
}

type FuncSnapshotUoWFactory func() commands.SnapshotUoW

func (f FuncSnapshotUoWFactory) Create() commands.SnapshotUoW {
	return f()
}
