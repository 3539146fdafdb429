package commands

import (
	"context"
)

// UpdatePartnerLocationCommandHandler handles partner location pings.
type UpdatePartnerLocationCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewUpdatePartnerLocationCommandHandler creates a handler for location pings.
func NewUpdatePartnerLocationCommandHandler(uowFactory PartnerUoWFactory) UpdatePartnerLocationCommandHandler {
	return UpdatePartnerLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle records the reported position on the partner's profile.
func (h *UpdatePartnerLocationCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerLocationCommand) error {
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
	reporter, err := partnerRepo.GetByUserID(ctx, cmd.PartnerUserID())
	if err != nil {
		return err
	}

	if err = reporter.SetLocation(cmd.Location()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, reporter); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
