package snapshotrepo

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/snapshot"
	"orderflow/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormQRSnapshotRepository implements QRSnapshotRepository using GORM.
type GormQRSnapshotRepository struct {
	db *gorm.DB
}

// NewGormQRSnapshotRepository creates a new GORM QR snapshot repository.
func NewGormQRSnapshotRepository(db *gorm.DB) *GormQRSnapshotRepository {
	return &GormQRSnapshotRepository{db: db}
}

// Upsert inserts the snapshot or replaces the existing row for the same
// order. The stored version bumps on every replace regardless of the version
// carried by the argument, so repeated refreshes are observable.
func (r *GormQRSnapshotRepository) Upsert(ctx context.Context, snap *snapshot.QRSnapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(snap)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "order_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"payload":    dto.Payload,
				"updated_at": dto.UpdatedAt,
				"version":    gorm.Expr("qr_snapshots.version + 1"),
			}),
		}).
		Create(&dto).Error
}

// Get retrieves the snapshot for an order.
func (r *GormQRSnapshotRepository) Get(ctx context.Context, orderID kernel.UUID) (*snapshot.QRSnapshot, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto QRSnapshotDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("qrSnapshot", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindStaleOrderIDs returns identifiers of orders whose snapshot is missing
// or whose encoded status no longer matches the order row, up to limit.
func (r *GormQRSnapshotRepository) FindStaleOrderIDs(ctx context.Context, limit int) ([]kernel.UUID, error) {
	if limit <= 0 {
		return []kernel.UUID{}, nil
	}

	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id
		FROM orders o
		LEFT JOIN qr_snapshots s ON s.order_id = o.id
		WHERE s.order_id IS NULL OR s.payload->>'status' <> o.status
		ORDER BY o.created_at, o.id
		LIMIT ?
	`, limit).Scan(&ids).Error
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(ids))
	for _, id := range ids {
		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	return orderIDs, nil
}
