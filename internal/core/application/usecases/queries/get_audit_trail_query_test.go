package queries_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAuditTrailQuery(t *testing.T) {
	t.Run("should create query with valid parameters", func(t *testing.T) {
		entityID := kernel.NewUUID()

		query, err := queries.NewGetAuditTrailQuery(ledger.EntityTypeOrder, entityID)

		require.NoError(t, err)
		require.NoError(t, query.Validate())
		assert.Equal(t, ledger.EntityTypeOrder, query.EntityType())
		assert.True(t, query.EntityID().IsEqual(entityID))
	})

	t.Run("should fail with empty entity type", func(t *testing.T) {
		_, err := queries.NewGetAuditTrailQuery("", kernel.NewUUID())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "entityType")
	})

	t.Run("should fail with invalid entity id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := queries.NewGetAuditTrailQuery(ledger.EntityTypeOrder, invalidID)

		require.Error(t, err)
	})

	t.Run("should fail validation when constructed directly", func(t *testing.T) {
		var query queries.GetAuditTrailQuery

		err := query.Validate()

		require.Error(t, err)
		assert.Equal(t, queries.ErrGetAuditTrailQueryIsNotConstructed, err)
	})
}
