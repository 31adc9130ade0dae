package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
	"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
)

// GetStatusHistoryQuery retrieves the full status ledger of one order,
// oldest entry first.
type GetStatusHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates a history query for one order.
func NewGetStatusHistoryQuery(orderID kernel.UUID) (GetStatusHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetStatusHistoryQuery{}, err
	}
	return GetStatusHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose ledger is requested.
func (q GetStatusHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetStatusHistoryQueryResponse is one ledger row. FromStatus is nil for the
// creation event, ChangedBy is nil for system changes.
type GetStatusHistoryQueryResponse struct {
	ID         kernel.UUID
	FromStatus *string
	ToStatus   string
	ChangedBy  *kernel.UUID
	Reason     string
	CreatedAt  time.Time
}
