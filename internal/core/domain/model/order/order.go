package order

import (
	"errors"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrTransitionNotAllowed is returned by ChangeStatus when the requested
	// transition is not listed for the caller's role in the workflow table.
	// The boundary layer maps it to a "forbidden" response.
	ErrTransitionNotAllowed = errors.New("status transition is not allowed")
)

// Order represents a service order in the system. It is the aggregate root that
// owns the order's identity and its position in the fulfillment workflow.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Total amount is never negative
//   - Status is always a member of the closed status set
//   - Status changes only happen through ChangeStatus, which enforces the
//     role-gated workflow table
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Customer, plant and pricing
// attributes are carried for its consumers; the workflow only reads and writes
// the status field.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-facing order reference
	orderNumber string

	// customerID references the ordering customer
	customerID kernel.UUID

	// plantID references the plant fulfilling the order
	plantID kernel.UUID

	// totalAmount is the order total in minor currency units
	totalAmount int64

	// estimatedDeliveryAt is the promised hand-over time
	estimatedDeliveryAt time.Time

	// status represents the current state in the fulfillment workflow
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create an order, and every new order starts in Pending — the single
// initial state of the workflow.
//
// Returns a validation error if the identifier, order number, references or
// amounts are invalid.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	plantID kernel.UUID,
	totalAmount int64,
	estimatedDeliveryAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setCustomerID(customerID),
		order.setPlantID(plantID),
		order.setTotalAmount(totalAmount),
		order.setEstimatedDeliveryAt(estimatedDeliveryAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with an explicit status.
// Used by repositories when loading rows; the status must already be a member
// of the closed set.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	plantID kernel.UUID,
	totalAmount int64,
	estimatedDeliveryAt time.Time,
	status Status,
) (*Order, error) {
	order, err := NewOrder(id, orderNumber, customerID, plantID, totalAmount, estimatedDeliveryAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	order.status = status
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. Called when reconstructing orders from persistence to ensure
// data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PlantID returns the fulfilling plant's identifier.
func (o *Order) PlantID() kernel.UUID {
	return o.plantID
}

// TotalAmount returns the order total in minor currency units.
func (o *Order) TotalAmount() int64 {
	return o.totalAmount
}

// EstimatedDeliveryAt returns the promised hand-over time.
func (o *Order) EstimatedDeliveryAt() time.Time {
	return o.estimatedDeliveryAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to a new status on behalf of the given role.
//
// This method enforces the workflow table:
//   - The role must be a recognized member of the closed role set; a missing
//     or unknown role is rejected outright, it is never defaulted to Admin
//   - The destination must be a valid status
//   - The (role, current status, destination) triple must be listed in the
//     transition table
//
// Returns:
//   - nil on a successful transition; the order's status is updated in place
//   - a ValueIsRequiredError if the role is missing or unrecognized
//   - a ValueIsInvalidError if the destination status is not in the closed set
//   - ErrTransitionNotAllowed (wrapped, with role and states named) if the
//     transition is not permitted for the role
//
// On any error the order is left unchanged.
func (o *Order) ChangeStatus(role Role, to Status) error {
	if err := role.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("role", err)
	}

	if err := to.Validate(); err != nil {
		return err
	}

	if !CanTransition(role, o.status, to) {
		return fmt.Errorf("%w: %s may not move order from %s to %s",
			ErrTransitionNotAllowed, role, o.status, to)
	}

	o.status = to
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the human-facing order reference.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomerID validates and sets the customer reference.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setPlantID validates and sets the plant reference.
func (o *Order) setPlantID(plantID kernel.UUID) error {
	if err := plantID.Validate(); err != nil {
		return err
	}
	o.plantID = plantID
	return nil
}

// setTotalAmount validates and sets the order total.
// The amount is in minor units and must not be negative.
func (o *Order) setTotalAmount(totalAmount int64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("%d is negative", totalAmount))
	}
	o.totalAmount = totalAmount
	return nil
}

// setEstimatedDeliveryAt validates and sets the promised hand-over time.
func (o *Order) setEstimatedDeliveryAt(estimatedDeliveryAt time.Time) error {
	if estimatedDeliveryAt.IsZero() {
		return errs.NewValueIsRequiredError("estimatedDeliveryAt")
	}
	o.estimatedDeliveryAt = estimatedDeliveryAt
	return nil
}
