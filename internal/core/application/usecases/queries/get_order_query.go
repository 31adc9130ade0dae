// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain model and read projections straight from
// the database, per the CQRS split used across the application.
package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order projection returned to the boundary.
// Status is the string form of the workflow state.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	OrderNumber         string
	CustomerID          kernel.UUID
	PlantID             kernel.UUID
	TotalAmount         int64
	EstimatedDeliveryAt time.Time
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
