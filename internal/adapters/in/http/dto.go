package http

import (
	"encoding/json"
	"time"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber         string    `json:"order_number"`
	CustomerID          string    `json:"customer_id"`
	PlantID             string    `json:"plant_id"`
	TotalAmount         int64     `json:"total_amount"`
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
}

// CreateOrderResponse returns the identifier and initial status of a newly
// created order.
type CreateOrderResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ChangeStatusRequest is the body of PATCH /api/v1/orders/:id/status.
// Reason is optional; the acting user and role come from request headers,
// not the body.
type ChangeStatusRequest struct {
	ToStatus string `json:"to_status"`
	Reason   string `json:"reason,omitempty"`
}

// OrderResponse is the read model of one order.
type OrderResponse struct {
	ID                  string    `json:"id"`
	OrderNumber         string    `json:"order_number"`
	CustomerID          string    `json:"customer_id"`
	PlantID             string    `json:"plant_id"`
	TotalAmount         int64     `json:"total_amount"`
	EstimatedDeliveryAt time.Time `json:"estimated_delivery_at"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// AllowedNextStatesResponse lists the statuses the requesting role may move
// the order to from its current status. Empty when the role has no moves.
type AllowedNextStatesResponse struct {
	CurrentStatus string   `json:"current_status"`
	AllowedNext   []string `json:"allowed_next"`
}

// StatusHistoryEntryResponse is one row of an order's status ledger.
// FromStatus is null for the creation event, ChangedBy for system changes.
type StatusHistoryEntryResponse struct {
	ID         string    `json:"id"`
	FromStatus *string   `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ChangedBy  *string   `json:"changed_by"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

// AuditLogEntryResponse is one row of an entity's audit trail. Diff carries
// the stored JSON payload verbatim.
type AuditLogEntryResponse struct {
	ID        string          `json:"id"`
	Action    string          `json:"action"`
	ActorID   *string         `json:"actor_id"`
	Diff      json.RawMessage `json:"diff"`
	CreatedAt time.Time       `json:"created_at"`
}
