package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// defaultChangeReason is recorded when the caller supplies no reason.
const defaultChangeReason = "Status changed"

// ChangeOrderStatusCommand represents a request to move an order to a new
// status on behalf of an authenticated actor. The role must be the requester's
// actual role, resolved by the boundary layer — never a client-supplied claim,
// and never defaulted when absent.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	toStatus order.Status
	actorID  kernel.UUID
	role     order.Role
	reason   string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order and actor identifiers are set and that the
// destination status and role are members of their closed sets. Whether the
// transition itself is legal is decided later, against the status re-read
// under the row lock.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	toStatus order.Status,
	actorID kernel.UUID,
	role order.Role,
	reason string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setToStatus(toStatus),
		cmd.setActorID(actorID),
		cmd.setRole(role),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	cmd.setReason(reason)
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ToStatus returns the requested destination status.
func (c ChangeOrderStatusCommand) ToStatus() order.Status {
	return c.toStatus
}

// ActorID returns the requesting user's identifier.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Role returns the requesting user's role.
func (c ChangeOrderStatusCommand) Role() order.Role {
	return c.role
}

// Reason returns the free-text reason for the change.
func (c ChangeOrderStatusCommand) Reason() string {
	return c.reason
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setToStatus(toStatus order.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}
	c.toStatus = toStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *ChangeOrderStatusCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *ChangeOrderStatusCommand) setReason(reason string) {
	if reason == "" {
		reason = defaultChangeReason
	}
	c.reason = reason
}
