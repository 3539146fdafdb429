package commands

import (
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/partner"
	"delivr/internal/pkg/guard"
)

var ErrUpdatePartnerStatusCommandIsNotConstructed = errors.New(
	"UpdatePartnerStatusCommand must be created via NewUpdatePartnerStatusCommand constructor",
)

// UpdatePartnerStatusCommand represents an admin changing a partner's account
// standing, or the partner toggling their own availability. The availability
// flag is optional; a nil value leaves it untouched.
type UpdatePartnerStatusCommand struct { //nolint:recvcheck //using for validation
	partnerID   kernel.UUID
	newStatus   partner.Status
	isAvailable *bool

	guard guard.ConstructorGuard
}

// NewUpdatePartnerStatusCommand creates a partner standing command.
func NewUpdatePartnerStatusCommand(
	partnerID kernel.UUID,
	newStatus partner.Status,
	isAvailable *bool,
) (UpdatePartnerStatusCommand, error) {
	cmd := UpdatePartnerStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPartnerID(partnerID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return UpdatePartnerStatusCommand{}, err
	}

	if isAvailable != nil {
		available := *isAvailable
		cmd.isAvailable = &available
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerStatusCommandIsNotConstructed)
}

// PartnerID returns the partner being updated.
func (c UpdatePartnerStatusCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// NewStatus returns the requested account standing.
func (c UpdatePartnerStatusCommand) NewStatus() partner.Status {
	return c.newStatus
}

// IsAvailable returns the requested availability toggle, or nil.
func (c UpdatePartnerStatusCommand) IsAvailable() *bool {
	return c.isAvailable
}

func (c *UpdatePartnerStatusCommand) setPartnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerID = id
	return nil
}

func (c *UpdatePartnerStatusCommand) setNewStatus(status partner.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.newStatus = status
	return nil
}
