package commands

import (
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/guard"
)

var ErrUpdatePartnerLocationCommandIsNotConstructed = errors.New(
	"UpdatePartnerLocationCommand must be created via NewUpdatePartnerLocationCommand constructor",
)

// UpdatePartnerLocationCommand represents a delivery partner's location ping.
type UpdatePartnerLocationCommand struct { //nolint:recvcheck //using for validation
	partnerUserID kernel.UUID
	location      kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdatePartnerLocationCommand creates a location ping command. The
// coordinates are validated into a GeoPoint before the command exists.
func NewUpdatePartnerLocationCommand(
	partnerUserID kernel.UUID,
	lat, lng float64,
) (UpdatePartnerLocationCommand, error) {
	cmd := UpdatePartnerLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	location, err := kernel.NewGeoPoint(lat, lng)
	if err != nil {
		return UpdatePartnerLocationCommand{}, err
	}

	if err := cmd.setPartnerUserID(partnerUserID); err != nil {
		return UpdatePartnerLocationCommand{}, err
	}

	cmd.location = location
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerLocationCommandIsNotConstructed)
}

// PartnerUserID returns the reporting partner's user account id.
func (c UpdatePartnerLocationCommand) PartnerUserID() kernel.UUID {
	return c.partnerUserID
}

// Location returns the reported position.
func (c UpdatePartnerLocationCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *UpdatePartnerLocationCommand) setPartnerUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.partnerUserID = id
	return nil
}
