package commands

import (
	"context"
)

// ClaimOrderCommandHandler handles the exclusive order claim. The winner of
// concurrent claims is decided by the repository's conditional UPDATE, not by
// any in-process lock: every racer runs the same transaction and exactly one
// sees an affected row. Losers surface an already-assigned error and nothing
// they did is committed.
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim. The partner flag flip and the order assignment
// commit in the same transaction so a crash cannot leave a partner marked
// busy without a claimed order, or the reverse.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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
	claimer, err := partnerRepo.GetByUserID(ctx, cmd.PartnerUserID())
	if err != nil {
		return err
	}

	if err = claimer.BeginDelivery(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Claim(ctx, cmd.OrderID(), claimer.ID()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, claimer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
