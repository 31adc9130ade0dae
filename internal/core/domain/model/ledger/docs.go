// Package ledger provides the append-only record types that accompany every
// accepted order mutation: the per-order status history and the system-wide
// audit trail.
//
// Both entry types share a lifecycle of "created once, read many times".
// The order service writes one StatusHistoryEntry and one AuditLogEntry inside
// the same transaction that mutates the order's status, so the three records
// commit together or not at all.
package ledger
