package queries

import (
	"context"

	"orderflow/internal/core/domain/model/order"
)

// GetAllowedNextStatesQueryHandler answers allowed-next-states questions
// from the in-memory workflow table.
type GetAllowedNextStatesQueryHandler struct{}

// NewGetAllowedNextStatesQueryHandler creates a handler for
// allowed-next-states queries.
func NewGetAllowedNextStatesQueryHandler() GetAllowedNextStatesQueryHandler {
	return GetAllowedNextStatesQueryHandler{}
}

// Handle executes the query. The slice is empty (never nil) when the role
// has no moves from the given status.
func (h GetAllowedNextStatesQueryHandler) Handle(
	_ context.Context,
	query GetAllowedNextStatesQuery,
) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	allowed := order.AllowedNextStates(query.Role(), query.FromStatus())
	states := make([]string, 0, len(allowed))
	for _, s := range allowed {
		states = append(states, s.String())
	}

	return states, nil
}
