package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repositories bound to the transaction.
// Client code must explicitly manage the transaction lifecycle.
//
// The transition-apply contract depends on this boundary: the order mutation,
// its status history entry and its audit entry are all written through
// repositories of one unit of work, so they commit together or not at all.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// StatusHistoryRepository returns a StatusHistoryRepository bound to the
	// current transaction.
	StatusHistoryRepository() StatusHistoryRepository

	// AuditLogRepository returns an AuditLogRepository bound to the current
	// transaction.
	AuditLogRepository() AuditLogRepository

	// QRSnapshotRepository returns a QRSnapshotRepository bound to the current
	// transaction.
	QRSnapshotRepository() QRSnapshotRepository
}
