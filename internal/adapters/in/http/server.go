// Package http exposes the order workflow over a REST API.
//
// Authentication is out of scope: the gateway in front of this service
// resolves the requesting user and forwards the identity in the X-Actor-Id
// and X-Actor-Role headers. The role header is required for every mutating
// or role-dependent request; a missing role is rejected with 403, it is
// never defaulted to a privileged role.
package http

import (
	"errors"
	"net/http"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/ledger"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	changeStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getOrderHandler         queries.GetOrderQueryHandler
	getActiveOrdersHandler  queries.GetActiveOrdersQueryHandler
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler
	getAuditTrailHandler    queries.GetAuditTrailQueryHandler
	getAllowedStatesHandler queries.GetAllowedNextStatesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeStatusHandler commands.ChangeOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getStatusHistoryHandler queries.GetStatusHistoryQueryHandler,
	getAuditTrailHandler queries.GetAuditTrailQueryHandler,
	getAllowedStatesHandler queries.GetAllowedNextStatesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		changeStatusHandler:     changeStatusHandler,
		getOrderHandler:         getOrderHandler,
		getActiveOrdersHandler:  getActiveOrdersHandler,
		getStatusHistoryHandler: getStatusHistoryHandler,
		getAuditTrailHandler:    getAuditTrailHandler,
		getAllowedStatesHandler: getAllowedStatesHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/active", s.GetActiveOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.GET("/orders/:id/status/next", s.GetAllowedNextStates)
	api.GET("/orders/:id/history", s.GetStatusHistory)
	api.GET("/orders/:id/audit", s.GetAuditTrail)
}

// CreateOrder handles POST /api/v1/orders - registers a new order in Pending.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer_id: "+err.Error())
	}
	plantID, err := kernel.UUIDFromString(req.PlantID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid plant_id: "+err.Error())
	}

	actorID, err := actorFromHeader(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid "+headerActorID+" header")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, req.OrderNumber, customerID, plantID, req.TotalAmount, req.EstimatedDeliveryAt, actorID,
	)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order data: "+err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorJSON(ctx, http.StatusConflict, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{
		ID:     orderID.String(),
		Status: order.Pending.String(),
	})
}

// ChangeOrderStatus handles PATCH /api/v1/orders/:id/status - applies a
// role-gated status transition.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	toStatus, err := order.StatusFromString(req.ToStatus)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid to_status: "+err.Error())
	}

	role, err := roleFromHeader(ctx)
	if err != nil {
		// A request without a resolvable role has no permissions at all.
		return errorJSON(ctx, http.StatusForbidden, "Role is required: "+err.Error())
	}

	actorID, err := actorFromHeader(ctx)
	if err != nil || actorID == nil {
		return errorJSON(ctx, http.StatusBadRequest, headerActorID+" header is required")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, toStatus, *actorID, role, req.Reason)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
		return s.GetOrder(ctx)
	case errors.Is(err, commands.ErrOrderNotFound):
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, order.ErrTransitionNotAllowed):
		return errorJSON(ctx, http.StatusForbidden, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to change order status")
	}
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Order not found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(resp))
}

// GetActiveOrders handles GET /api/v1/orders/active - retrieves all orders
// outside the terminal statuses.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetActiveOrdersQuery()

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAllowedNextStates handles GET /api/v1/orders/:id/status/next - lists the
// statuses the requesting role may move the order to from its current status.
func (s *Server) GetAllowedNextStates(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	role, err := roleFromHeader(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusForbidden, "Role is required: "+err.Error())
	}

	orderQuery, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	current, err := s.getOrderHandler.Handle(ctx.Request().Context(), orderQuery)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(ctx, http.StatusNotFound, "Order not found")
		}
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	currentStatus, err := order.StatusFromString(current.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	query, err := queries.NewGetAllowedNextStatesQuery(role, currentStatus)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	states, err := s.getAllowedStatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to compute allowed states")
	}

	return ctx.JSON(http.StatusOK, AllowedNextStatesResponse{
		CurrentStatus: current.Status,
		AllowedNext:   states,
	})
}

// GetStatusHistory handles GET /api/v1/orders/:id/history - retrieves the
// order's status ledger, oldest entry first.
func (s *Server) GetStatusHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetStatusHistoryQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	entries, err := s.getStatusHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve status history")
	}

	response := make([]StatusHistoryEntryResponse, len(entries))
	for i, entry := range entries {
		var changedBy *string
		if entry.ChangedBy != nil {
			v := entry.ChangedBy.String()
			changedBy = &v
		}
		response[i] = StatusHistoryEntryResponse{
			ID:         entry.ID.String(),
			FromStatus: entry.FromStatus,
			ToStatus:   entry.ToStatus,
			ChangedBy:  changedBy,
			Reason:     entry.Reason,
			CreatedAt:  entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetAuditTrail handles GET /api/v1/orders/:id/audit - retrieves the audit
// entries recorded for the order, oldest first.
func (s *Server) GetAuditTrail(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetAuditTrailQuery(ledger.EntityTypeOrder, orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request: "+err.Error())
	}

	entries, err := s.getAuditTrailHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve audit trail")
	}

	response := make([]AuditLogEntryResponse, len(entries))
	for i, entry := range entries {
		var actorID *string
		if entry.ActorID != nil {
			v := entry.ActorID.String()
			actorID = &v
		}
		response[i] = AuditLogEntryResponse{
			ID:        entry.ID.String(),
			Action:    entry.Action,
			ActorID:   actorID,
			Diff:      []byte(entry.Diff),
			CreatedAt: entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// roleFromHeader resolves the acting role from the X-Actor-Role header.
// An absent or unknown role is an error; there is no fallback role.
func roleFromHeader(ctx echo.Context) (order.Role, error) {
	raw := ctx.Request().Header.Get(headerActorRole)
	if raw == "" {
		return order.RoleUnknown, errs.NewValueIsRequiredError(headerActorRole)
	}
	return order.RoleFromString(raw)
}

// actorFromHeader resolves the acting user from the X-Actor-Id header.
// Returns nil when the header is absent.
func actorFromHeader(ctx echo.Context) (*kernel.UUID, error) {
	raw := ctx.Request().Header.Get(headerActorID)
	if raw == "" {
		return nil, nil //nolint:nilnil //absent header means anonymous actor
	}

	actorID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &actorID, nil
}

func toOrderResponse(resp queries.GetOrderQueryResponse) OrderResponse {
	return OrderResponse{
		ID:                  resp.ID.String(),
		OrderNumber:         resp.OrderNumber,
		CustomerID:          resp.CustomerID.String(),
		PlantID:             resp.PlantID.String(),
		TotalAmount:         resp.TotalAmount,
		EstimatedDeliveryAt: resp.EstimatedDeliveryAt,
		Status:              resp.Status,
		CreatedAt:           resp.CreatedAt,
		UpdatedAt:           resp.UpdatedAt,
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
