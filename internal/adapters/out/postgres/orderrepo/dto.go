// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored in its string form so the workboard queries and the QR
// snapshot staleness check can compare it without decoding.
type OrderDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber         string    `gorm:"uniqueIndex"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	PlantID             uuid.UUID `gorm:"type:uuid;index"`
	TotalAmount         int64
	EstimatedDeliveryAt time.Time
	Status              string `gorm:"index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		OrderNumber:         aggregate.OrderNumber(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		PlantID:             aggregate.PlantID().Bytes(),
		TotalAmount:         aggregate.TotalAmount(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		Status:              aggregate.Status().String(),
	}
}

// toDomain converts a database row to an order domain aggregate using
// RestoreOrder, which re-validates the stored status against the closed set.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	plantID, err := kernel.UUIDFromBytes(dto.PlantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, dto.OrderNumber, customerID, plantID, dto.TotalAmount, dto.EstimatedDeliveryAt, status,
	)
}
