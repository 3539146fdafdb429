package commands

import (
	"context"
)

// UpdatePartnerStatusCommandHandler handles partner standing changes.
type UpdatePartnerStatusCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerStatusCommandHandler creates a handler for partner standing
// changes.
func NewUpdatePartnerStatusCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerStatusCommandHandler {
	return UpdatePartnerStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the new standing and, when present, the availability toggle.
// Suspension does not interrupt a delivery already in progress; it only stops
// new claims.
func (h *UpdatePartnerStatusCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	partnerRepo := uow.PartnerRepository()
	target, err := partnerRepo.Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = target.SetStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if available := cmd.IsAvailable(); available != nil {
		target.SetAvailability(*available)
	}

	if err = partnerRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
