package queries

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler reads an order's status ledger.
// Entries come back oldest first, ordered by creation time with the insertion
// sequence breaking ties — the same ordering that defines "most recent entry"
// in the status/ledger invariant.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for status ledger queries.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the query.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]GetStatusHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetStatusHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			from_status,
			to_status,
			changed_by,
			reason,
			created_at
		FROM status_history
		WHERE order_id = ?
		ORDER BY created_at, seq
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStatusHistoryQueryResponse
		var id uuid.UUID
		var changedBy *uuid.UUID

		err = rows.Scan(
			&id,
			&resp.FromStatus,
			&resp.ToStatus,
			&changedBy,
			&resp.Reason,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if changedBy != nil {
			actor, actorErr := kernel.UUIDFromBytes((*changedBy)[:])
			if actorErr != nil {
				return nil, actorErr
			}
			resp.ChangedBy = &actor
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
