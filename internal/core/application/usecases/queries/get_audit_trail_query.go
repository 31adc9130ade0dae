package queries

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrGetAuditTrailQueryIsNotConstructed = errors.New(
	"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
)

// GetAuditTrailQuery retrieves the audit entries recorded for one entity,
// oldest first.
type GetAuditTrailQuery struct {
	entityType string
	entityID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates an audit trail query for one entity.
func NewGetAuditTrailQuery(entityType string, entityID kernel.UUID) (GetAuditTrailQuery, error) {
	if entityType == "" {
		return GetAuditTrailQuery{}, errs.NewValueIsRequiredError("entityType")
	}
	if err := entityID.Validate(); err != nil {
		return GetAuditTrailQuery{}, err
	}
	return GetAuditTrailQuery{
		entityType: entityType,
		entityID:   entityID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

// EntityType returns the type tag of the audited entity.
func (q GetAuditTrailQuery) EntityType() string {
	return q.entityType
}

// EntityID returns the identifier of the audited entity.
func (q GetAuditTrailQuery) EntityID() kernel.UUID {
	return q.entityID
}

// GetAuditTrailQueryResponse is one audit row. Diff carries the stored JSON
// payload verbatim; ActorID is nil for system actions.
type GetAuditTrailQueryResponse struct {
	ID        kernel.UUID
	Action    string
	ActorID   *kernel.UUID
	Diff      string
	CreatedAt time.Time
}
