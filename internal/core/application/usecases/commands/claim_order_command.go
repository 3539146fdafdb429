package commands

import (
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand represents a delivery partner accepting an order from the
// claimable pool. The partner is addressed by their user account id, as taken
// from the authenticated request.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	partnerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim command.
func NewClaimOrderCommand(orderID, partnerUserID kernel.UUID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPartnerUserID(partnerUserID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PartnerUserID returns the claiming partner's user account id.
func (c ClaimOrderCommand) PartnerUserID() kernel.UUID {
	return c.partnerUserID
}

func (c *ClaimOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ClaimOrderCommand) setPartnerUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerUserID = id
	return nil
}
