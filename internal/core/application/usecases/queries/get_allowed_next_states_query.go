package queries

import (
	"errors"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrGetAllowedNextStatesQueryIsNotConstructed = errors.New(
	"GetAllowedNextStatesQuery must be created via NewGetAllowedNextStatesQuery constructor",
)

// GetAllowedNextStatesQuery asks which statuses a role may move an order to
// from its current status. The answer comes straight from the workflow table,
// no database access involved.
type GetAllowedNextStatesQuery struct {
	role       order.Role
	fromStatus order.Status

	guard guard.ConstructorGuard
}

// NewGetAllowedNextStatesQuery creates an allowed-next-states query.
func NewGetAllowedNextStatesQuery(role order.Role, fromStatus order.Status) (GetAllowedNextStatesQuery, error) {
	if err := role.Validate(); err != nil {
		return GetAllowedNextStatesQuery{}, errs.NewValueIsRequiredErrorWithCause("role", err)
	}
	if err := fromStatus.Validate(); err != nil {
		return GetAllowedNextStatesQuery{}, errs.NewValueIsInvalidErrorWithCause("fromStatus", err)
	}
	return GetAllowedNextStatesQuery{
		role:       role,
		fromStatus: fromStatus,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllowedNextStatesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedNextStatesQueryIsNotConstructed)
}

// Role returns the acting role.
func (q GetAllowedNextStatesQuery) Role() order.Role {
	return q.role
}

// FromStatus returns the current order status.
func (q GetAllowedNextStatesQuery) FromStatus() order.Status {
	return q.fromStatus
}
