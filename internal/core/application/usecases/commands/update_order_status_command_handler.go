package commands

import (
	"context"
	"fmt"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the customer/admin order updates.
//
// Authorization rules:
//   - a customer may only cancel, and only their own order
//   - an admin may drive any legal transition and reassign the partner
//
// The transition table still applies to admins; there is no override that
// moves an order backward or out of a terminal state.
type UpdateOrderStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for customer/admin
// order updates.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update. Any released partner is freed in the same
// transaction.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	switch cmd.ActorRole() {
	case kernel.RoleCustomer:
		if err = h.cancelAsCustomer(ctx, uow, cmd, target); err != nil {
			return err
		}
	case kernel.RoleAdmin:
		if err = h.updateAsAdmin(ctx, uow, cmd, target); err != nil {
			return err
		}
	default:
		return errs.NewUnauthorizedError(
			fmt.Sprintf("role %s may not update order status", cmd.ActorRole()))
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateOrderStatusCommandHandler) cancelAsCustomer(
	ctx context.Context,
	uow UoW,
	cmd UpdateOrderStatusCommand,
	target *order.Order,
) error {
	if !target.CustomerID().IsEqual(cmd.ActorUserID()) {
		return errs.NewUnauthorizedError(
			fmt.Sprintf("user %s does not own order %s", cmd.ActorUserID(), target.ID()))
	}
	if cmd.NewPartnerID() != nil {
		return errs.NewUnauthorizedError("customers may not reassign delivery partners")
	}
	if cmd.NewStatus() == nil || *cmd.NewStatus() != order.StatusCancelled {
		return errs.NewUnauthorizedError("customers may only cancel their orders")
	}

	released, err := target.Cancel()
	if err != nil {
		return err
	}

	return h.releasePartner(ctx, uow, released)
}

func (h *UpdateOrderStatusCommandHandler) updateAsAdmin(
	ctx context.Context,
	uow UoW,
	cmd UpdateOrderStatusCommand,
	target *order.Order,
) error {
	if newPartnerID := cmd.NewPartnerID(); newPartnerID != nil {
		if err := h.reassign(ctx, uow, target, *newPartnerID); err != nil {
			return err
		}
	}

	newStatus := cmd.NewStatus()
	if newStatus == nil {
		return nil
	}

	if *newStatus == order.StatusCancelled {
		released, err := target.Cancel()
		if err != nil {
			return err
		}
		return h.releasePartner(ctx, uow, released)
	}

	return target.AdvanceTo(*newStatus)
}

// reassign hands the order to a different partner: the replacement starts a
// delivery, the replaced one is freed, both in the current transaction.
func (h *UpdateOrderStatusCommandHandler) reassign(
	ctx context.Context,
	uow UoW,
	target *order.Order,
	newPartnerID kernel.UUID,
) error {
	partnerRepo := uow.PartnerRepository()
	replacement, err := partnerRepo.Get(ctx, newPartnerID)
	if err != nil {
		return err
	}

	if err = replacement.BeginDelivery(); err != nil {
		return err
	}

	replaced, err := target.Reassign(replacement.ID())
	if err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, replacement); err != nil {
		return err
	}

	return h.releasePartner(ctx, uow, replaced)
}

func (h *UpdateOrderStatusCommandHandler) releasePartner(
	ctx context.Context,
	uow UoW,
	partnerID *kernel.UUID,
) error {
	if partnerID == nil {
		return nil
	}

	partnerRepo := uow.PartnerRepository()
	released, err := partnerRepo.Get(ctx, *partnerID)
	if err != nil {
		return err
	}

	released.CancelDelivery()
	return partnerRepo.Update(ctx, released)
}
