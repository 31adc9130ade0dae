// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"orderflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusHistoryRepoFactory provides access to the status ledger within a transaction.
	StatusHistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	// AuditLogRepoFactory provides access to the audit trail within a transaction.
	AuditLogRepoFactory interface {
		AuditLogRepository() ports.AuditLogRepository
	}

	// QRSnapshotRepoFactory provides access to QR snapshots within a transaction.
	QRSnapshotRepoFactory interface {
		QRSnapshotRepository() ports.QRSnapshotRepository
	}

	// OrderLedgerUoW manages transactions spanning the order record and its two
	// append-only ledgers. Used by commands that must keep the order's status,
	// its history entry and its audit entry consistent: all three writes go
	// through this unit of work and commit together or not at all.
	OrderLedgerUoW interface {
		TxManager
		OrderRepoFactory
		StatusHistoryRepoFactory
		AuditLogRepoFactory
	}

	// OrderLedgerUoWFactory creates new order/ledger unit of work instances.
	OrderLedgerUoWFactory interface {
		Create() OrderLedgerUoW
	}

	// SnapshotUoW manages transactions for snapshot reconciliation, which only
	// touches the order record and its QR snapshot.
	SnapshotUoW interface {
		TxManager
		OrderRepoFactory
		QRSnapshotRepoFactory
	}

	// SnapshotUoWFactory creates new snapshot unit of work instances.
	SnapshotUoWFactory interface {
		Create() SnapshotUoW
	}
)
