package commands

import (
	"context"
	"fmt"

	"delivr/internal/core/domain/model/order"
	"delivr/internal/core/domain/services"
	"delivr/internal/pkg/errs"
)

// AdvanceOrderStatusCommandHandler handles partner-driven lifecycle moves.
// Moving into delivered settles the delivery: the partner is credited exactly
// once, guarded by the terminal state transition. Cancellation by the partner
// releases them without any payout.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	settler    services.DeliverySettler
}

// NewAdvanceOrderStatusCommandHandler creates a handler for partner-driven
// status updates.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory UoWFactory,
	settler services.DeliverySettler,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		settler:    settler,
	}
}

// Handle processes the advancement. Only the assigned partner may move the
// order; anyone else gets an unauthorized error regardless of the target
// status.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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
	actor, err := partnerRepo.GetByUserID(ctx, cmd.PartnerUserID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	claimed, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	assigned := claimed.DeliveryPartner()
	if assigned == nil || !assigned.IsEqual(actor.ID()) {
		return errs.NewUnauthorizedError(
			fmt.Sprintf("partner %s is not assigned to order %s", actor.ID(), claimed.ID()))
	}

	switch cmd.NewStatus() {
	case order.StatusDelivered:
		if _, err = h.settler.Settle(claimed, actor); err != nil {
			return err
		}
		if err = partnerRepo.Update(ctx, actor); err != nil {
			return err
		}

	case order.StatusCancelled:
		if _, err = claimed.Cancel(); err != nil {
			return err
		}
		actor.CancelDelivery()
		if err = partnerRepo.Update(ctx, actor); err != nil {
			return err
		}

	default:
		if err = claimed.AdvanceTo(cmd.NewStatus()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, claimed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
