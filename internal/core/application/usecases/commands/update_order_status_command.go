package commands

import (
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents the customer/admin side of the order
// lifecycle: a customer cancelling their own order, or an admin driving any
// legal transition and optionally reassigning the delivery partner.
//
// At least one of newStatus and newPartnerID must be present.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actorUserID  kernel.UUID
	actorRole    kernel.Role
	newStatus    *order.Status
	newPartnerID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates an update command. Nil newStatus means
// reassignment only; nil newPartnerID means status change only.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	actorUserID kernel.UUID,
	actorRole kernel.Role,
	newStatus *order.Status,
	newPartnerID *kernel.UUID,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actorUserID, actorRole),
		cmd.setChanges(newStatus, newPartnerID),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being updated.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorUserID returns the acting user's account id.
func (c UpdateOrderStatusCommand) ActorUserID() kernel.UUID {
	return c.actorUserID
}

// ActorRole returns the acting user's role.
func (c UpdateOrderStatusCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// NewStatus returns the requested status, or nil for reassignment only.
func (c UpdateOrderStatusCommand) NewStatus() *order.Status {
	return c.newStatus
}

// NewPartnerID returns the partner to reassign to, or nil.
func (c UpdateOrderStatusCommand) NewPartnerID() *kernel.UUID {
	return c.newPartnerID
}

func (c *UpdateOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderStatusCommand) setActor(userID kernel.UUID, role kernel.Role) error {
	if err := errors.Join(userID.Validate(), role.Validate()); err != nil {
		return err
	}
	c.actorUserID = userID
	c.actorRole = role
	return nil
}

func (c *UpdateOrderStatusCommand) setChanges(newStatus *order.Status, newPartnerID *kernel.UUID) error {
	if newStatus == nil && newPartnerID == nil {
		return errs.NewValueIsRequiredError("newStatus or newPartnerID")
	}

	if newStatus != nil {
		if err := newStatus.Validate(); err != nil {
			return err
		}
		status := *newStatus
		c.newStatus = &status
	}

	if newPartnerID != nil {
		if err := newPartnerID.Validate(); err != nil {
			return err
		}
		partnerID := *newPartnerID
		c.newPartnerID = &partnerID
	}

	return nil
}
