// Package historyrepo persists the append-only status ledger. Entries are
// only ever inserted; there is no update or delete path.
package historyrepo

import (
	"encoding/json"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/ledger"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusHistoryDTO represents one row of the status ledger. Seq is a
// database-assigned insertion counter used as the tiebreaker when two entries
// share a creation timestamp; together with CreatedAt it defines "most
// recent entry".
type StatusHistoryDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Seq        int64      `gorm:"uniqueIndex;autoIncrement;default:null"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	FromStatus *string    `gorm:"type:varchar(32)"`
	ToStatus   string     `gorm:"type:varchar(32)"`
	ChangedBy  *uuid.UUID `gorm:"type:uuid"`
	Reason     string
	Metadata   string `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for status history entries.
func (StatusHistoryDTO) TableName() string {
	return "status_history"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *ledger.StatusHistoryEntry) (StatusHistoryDTO, error) {
	metadata, err := json.Marshal(entry.Metadata())
	if err != nil {
		return StatusHistoryDTO{}, err
	}

	var fromStatus *string
	if from := entry.FromStatus(); from != nil {
		s := from.String()
		fromStatus = &s
	}

	var changedBy *uuid.UUID
	if actor := entry.ChangedBy(); actor != nil {
		raw := actor.Bytes()
		changedBy = &raw
	}

	return StatusHistoryDTO{
		ID:         entry.ID().Bytes(),
		OrderID:    entry.OrderID().Bytes(),
		FromStatus: fromStatus,
		ToStatus:   entry.ToStatus().String(),
		ChangedBy:  changedBy,
		Reason:     entry.Reason(),
		Metadata:   string(metadata),
		CreatedAt:  entry.CreatedAt(),
	}, nil
}

// toDomain converts a database row to a ledger entry.
func toDomain(dto StatusHistoryDTO) (*ledger.StatusHistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var fromStatus *order.Status
	if dto.FromStatus != nil {
		from, fromErr := order.StatusFromString(*dto.FromStatus)
		if fromErr != nil {
			return nil, fromErr
		}
		fromStatus = &from
	}

	toStatus, err := order.StatusFromString(dto.ToStatus)
	if err != nil {
		return nil, err
	}

	var changedBy *kernel.UUID
	if dto.ChangedBy != nil {
		actor, actorErr := kernel.UUIDFromBytes((*dto.ChangedBy)[:])
		if actorErr != nil {
			return nil, actorErr
		}
		changedBy = &actor
	}

	var metadata ledger.ChangeMetadata
	if dto.Metadata != "" {
		if err = json.Unmarshal([]byte(dto.Metadata), &metadata); err != nil {
			return nil, err
		}
	}

	return ledger.RestoreStatusHistoryEntry(
		id, orderID, fromStatus, toStatus, changedBy, dto.Reason, metadata, dto.CreatedAt,
	)
}
