package auditrepo

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormAuditLogRepository implements AuditLogRepository using GORM.
type GormAuditLogRepository struct {
	db *gorm.DB
}

// NewGormAuditLogRepository creates a new GORM audit log repository.
func NewGormAuditLogRepository(db *gorm.DB) *GormAuditLogRepository {
	return &GormAuditLogRepository{db: db}
}

// Add appends one audit entry.
func (r *GormAuditLogRepository) Add(ctx context.Context, entry *ledger.AuditLogEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByEntity retrieves all entries for one entity, oldest first.
func (r *GormAuditLogRepository) GetByEntity(
	ctx context.Context,
	entityType string,
	entityID kernel.UUID,
) ([]*ledger.AuditLogEntry, error) {
	if err := entityID.Validate(); err != nil {
		return nil, err
	}

	var dtos []AuditLogDTO
	err := r.db.WithContext(ctx).
		Where("entity_type = ? AND entity_id = ?", entityType, entityID.Bytes()).
		Order("created_at, seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*ledger.AuditLogEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
