// Package snapshotrepo persists the versioned QR payload snapshots, one row
// per order.
package snapshotrepo

import (
	"encoding/json"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/snapshot"

	"github.com/google/uuid"
)

// QRSnapshotDTO represents the stored snapshot row. Payload is kept as jsonb
// so the staleness check can compare payload->>'status' against the order row
// inside the database.
type QRSnapshotDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Payload   string    `gorm:"type:jsonb"`
	Version   int
	UpdatedAt time.Time
}

// TableName specifies the database table name for QR snapshots.
func (QRSnapshotDTO) TableName() string {
	return "qr_snapshots"
}

// fromDomain converts a snapshot to its database representation.
func fromDomain(snap *snapshot.QRSnapshot) (QRSnapshotDTO, error) {
	payload, err := json.Marshal(snap.Payload())
	if err != nil {
		return QRSnapshotDTO{}, err
	}

	return QRSnapshotDTO{
		OrderID:   snap.OrderID().Bytes(),
		Payload:   string(payload),
		Version:   snap.Version(),
		UpdatedAt: snap.UpdatedAt(),
	}, nil
}

// toDomain converts a database row to a snapshot.
func toDomain(dto QRSnapshotDTO) (*snapshot.QRSnapshot, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	var payload snapshot.Payload
	if dto.Payload != "" {
		if err = json.Unmarshal([]byte(dto.Payload), &payload); err != nil {
			return nil, err
		}
	}

	return snapshot.RestoreQRSnapshot(orderID, payload, dto.Version, dto.UpdatedAt)
}
