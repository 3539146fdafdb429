package commands

import (
	"context"
)

// ResetPartnerEarningsCommandHandler handles the scheduled earnings resets.
// The reset is a single bulk UPDATE per period, so it stays cheap no matter
// how many partners exist.
type ResetPartnerEarningsCommandHandler struct {
	uowFactory PartnerUoWFactory
}

// NewResetPartnerEarningsCommandHandler creates a handler for earnings resets.
func NewResetPartnerEarningsCommandHandler(uowFactory PartnerUoWFactory) ResetPartnerEarningsCommandHandler {
	return ResetPartnerEarningsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle zeroes the selected counter for every partner.
func (h *ResetPartnerEarningsCommandHandler) Handle(ctx context.Context, cmd ResetPartnerEarningsCommand) error {
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

	var err error
	switch cmd.Period() {
	case EarningsPeriodDaily:
		err = partnerRepo.ResetDailyEarnings(ctx)
	case EarningsPeriodWeekly:
		err = partnerRepo.ResetWeeklyEarnings(ctx)
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
