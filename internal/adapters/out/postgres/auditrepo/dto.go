// Package auditrepo persists the append-only audit trail. Entries are only
// ever inserted; there is no update or delete path.
package auditrepo

import (
	"encoding/json"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/ledger"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// AuditLogDTO represents one row of the audit trail. Diff carries the
// structured before/after payload as JSON with statuses in string form so the
// trail stays readable without decoding the enum. Seq breaks creation-time
// ties the same way the status ledger does.
type AuditLogDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq        int64      `gorm:"uniqueIndex;autoIncrement;default:null"`
	Action     string     `gorm:"type:varchar(64)"`
	EntityType string     `gorm:"type:varchar(64);index:idx_audit_entity"`
	EntityID   uuid.UUID  `gorm:"type:uuid;index:idx_audit_entity"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Diff       string     `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for audit entries.
func (AuditLogDTO) TableName() string {
	return "audit_log"
}

// diffDTO is the JSON shape of the stored diff. Statuses are persisted as
// strings; from is omitted for creation events.
type diffDTO struct {
	From   *string `json:"from,omitempty"`
	To     string  `json:"to"`
	Reason string  `json:"reason,omitempty"`
}

// fromDomain converts an audit entry to its database representation.
func fromDomain(entry *ledger.AuditLogEntry) (AuditLogDTO, error) {
	diff := entry.Diff()

	var from *string
	if diff.From != nil {
		s := diff.From.String()
		from = &s
	}

	raw, err := json.Marshal(diffDTO{
		From:   from,
		To:     diff.To.String(),
		Reason: diff.Reason,
	})
	if err != nil {
		return AuditLogDTO{}, err
	}

	var actorID *uuid.UUID
	if actor := entry.ActorID(); actor != nil {
		id := actor.Bytes()
		actorID = &id
	}

	return AuditLogDTO{
		ID:         entry.ID().Bytes(),
		Action:     string(entry.Action()),
		EntityType: entry.EntityType(),
		EntityID:   entry.EntityID().Bytes(),
		ActorID:    actorID,
		Diff:       string(raw),
		CreatedAt:  entry.CreatedAt(),
	}, nil
}

// toDomain converts a database row to an audit entry.
func toDomain(dto AuditLogDTO) (*ledger.AuditLogEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	entityID, err := kernel.UUIDFromBytes(dto.EntityID[:])
	if err != nil {
		return nil, err
	}

	var actorID *kernel.UUID
	if dto.ActorID != nil {
		actor, actorErr := kernel.UUIDFromBytes((*dto.ActorID)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		actorID = &actor
	}

	var rawDiff diffDTO
	if dto.Diff != "" {
		if err = json.Unmarshal([]byte(dto.Diff), &rawDiff); err != nil {
			return nil, err
		}
	}

	var from *order.Status
	if rawDiff.From != nil {
		status, fromErr := order.StatusFromString(*rawDiff.From)
		if fromErr != nil {
			return nil, fromErr
		}
		from = &status
	}

	to, err := order.StatusFromString(rawDiff.To)
	if err != nil {
		return nil, err
	}

	return ledger.RestoreAuditLogEntry(
		id,
		ledger.AuditAction(dto.Action),
		dto.EntityType,
		entityID,
		actorID,
		ledger.StatusChangeDiff{From: from, To: to, Reason: rawDiff.Reason},
		dto.CreatedAt,
	)
}
