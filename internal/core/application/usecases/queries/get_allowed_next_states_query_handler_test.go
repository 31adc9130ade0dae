package queries_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllowedNextStatesQuery(t *testing.T) {
	t.Run("should create query with valid parameters", func(t *testing.T) {
		query, err := queries.NewGetAllowedNextStatesQuery(order.Operator, order.Pending)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, order.Operator, query.Role())
		assert.Equal(t, order.Pending, query.FromStatus())
	})

	t.Run("should reject a missing role", func(t *testing.T) {
		_, err := queries.NewGetAllowedNextStatesQuery(order.RoleUnknown, order.Pending)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("should reject an invalid status", func(t *testing.T) {
		_, err := queries.NewGetAllowedNextStatesQuery(order.Operator, order.Unknown)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "fromStatus")
	})

	t.Run("should fail validation when constructed directly", func(t *testing.T) {
		var query queries.GetAllowedNextStatesQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetAllowedNextStatesQueryIsNotConstructed, err)
	})
}

func TestGetAllowedNextStatesQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	handler := queries.NewGetAllowedNextStatesQueryHandler()

	newQuery := func(t *testing.T, role order.Role, from order.Status) queries.GetAllowedNextStatesQuery {
		t.Helper()
		query, err := queries.NewGetAllowedNextStatesQuery(role, from)
		require.NoError(t, err)
		return query
	}

	t.Run("should answer from the workflow table", func(t *testing.T) {
		tests := []struct {
			name string
			role order.Role
			from order.Status
			want []string
		}{
			{"operator from pending", order.Operator, order.Pending, []string{"InProgress", "Cancelled"}},
			{"operator from completed", order.Operator, order.Completed, []string{"Delivered", "PendingPayment"}},
			{"receptionist from pending", order.Receptionist, order.Pending, []string{"Cancelled"}},
			{"admin from delivered", order.Admin, order.Delivered, []string{"PendingPayment", "Paid"}},
			{"admin from pending payment", order.Admin, order.PendingPayment, []string{"Paid"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				states, err := handler.Handle(ctx, newQuery(t, tt.role, tt.from))

				require.NoError(t, err)
				assert.Equal(t, tt.want, states)
			})
		}
	})

	t.Run("should return empty slice for roles without moves", func(t *testing.T) {
		states, err := handler.Handle(ctx, newQuery(t, order.Receptionist, order.InProgress))

		require.NoError(t, err)
		require.NotNil(t, states)
		assert.Empty(t, states)
	})

	t.Run("should return empty slice for terminal statuses", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Cancelled, order.Paid} {
			states, err := handler.Handle(ctx, newQuery(t, order.Admin, terminal))

			require.NoError(t, err)
			require.NotNil(t, states)
			assert.Empty(t, states)
		}
	})

	t.Run("should fail for an unconstructed query", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.GetAllowedNextStatesQuery{})

		require.Error(t, err)
	})
}
