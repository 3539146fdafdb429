package commands

import (
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand represents the assigned delivery partner moving
// their order along the lifecycle: preparing → ready → picked_up →
// out_for_delivery → delivered.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	partnerUserID kernel.UUID
	newStatus     order.Status

	guard guard.ConstructorGuard
}

// NewAdvanceOrderStatusCommand creates an advancement command.
func NewAdvanceOrderStatusCommand(
	orderID, partnerUserID kernel.UUID,
	newStatus order.Status,
) (AdvanceOrderStatusCommand, error) {
	cmd := AdvanceOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerUserID(partnerUserID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerUserID returns the acting partner's user account id.
func (c AdvanceOrderStatusCommand) PartnerUserID() kernel.UUID {
	return c.partnerUserID
}

// NewStatus returns the requested lifecycle status.
func (c AdvanceOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *AdvanceOrderStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AdvanceOrderStatusCommand) setPartnerUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerUserID = id
	return nil
}

func (c *AdvanceOrderStatusCommand) setNewStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}
