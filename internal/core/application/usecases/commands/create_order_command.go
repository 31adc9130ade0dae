package commands

import (
	"errors"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired         = errors.New("order number is required")
	ErrTotalAmountIsInvalid          = errors.New("total amount must not be negative")
	ErrEstimatedDeliveryAtIsRequired = errors.New("estimated delivery time is required")
)

// CreateOrderCommand represents a request to register a new service order.
// Every created order starts in the Pending status; the handler also writes
// the creation entry of the status ledger and the audit trail.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	orderNumber         string
	customerID          kernel.UUID
	plantID             kernel.UUID
	totalAmount         int64
	estimatedDeliveryAt time.Time

	// actorID is nil when the creation is not attributable to a user
	actorID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identifiers, the order number, and that the total is not negative.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	plantID kernel.UUID,
	totalAmount int64,
	estimatedDeliveryAt time.Time,
	actorID *kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomerID(customerID),
		cmd.setPlantID(plantID),
		cmd.setTotalAmount(totalAmount),
		cmd.setEstimatedDeliveryAt(estimatedDeliveryAt),
		cmd.setActorID(actorID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-facing order reference.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PlantID returns the fulfilling plant's identifier.
func (c CreateOrderCommand) PlantID() kernel.UUID {
	return c.plantID
}

// TotalAmount returns the order total in minor currency units.
func (c CreateOrderCommand) TotalAmount() int64 {
	return c.totalAmount
}

// EstimatedDeliveryAt returns the promised hand-over time.
func (c CreateOrderCommand) EstimatedDeliveryAt() time.Time {
	return c.estimatedDeliveryAt
}

// ActorID returns the creating user's identifier, or nil.
func (c CreateOrderCommand) ActorID() *kernel.UUID {
	return c.actorID
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPlantID(plantID kernel.UUID) error {
	if err := plantID.Validate(); err != nil {
		return err
	}
	c.plantID = plantID
	return nil
}

func (c *CreateOrderCommand) setTotalAmount(totalAmount int64) error {
	if totalAmount < 0 {
		return ErrTotalAmountIsInvalid
	}
	c.totalAmount = totalAmount
	return nil
}

func (c *CreateOrderCommand) setEstimatedDeliveryAt(estimatedDeliveryAt time.Time) error {
	if estimatedDeliveryAt.IsZero() {
		return ErrEstimatedDeliveryAtIsRequired
	}
	c.estimatedDeliveryAt = estimatedDeliveryAt
	return nil
}

func (c *CreateOrderCommand) setActorID(actorID *kernel.UUID) error {
	if actorID != nil {
		if err := actorID.Validate(); err != nil {
			return err
		}
	}
	c.actorID = actorID
	return nil
}
