package commands_test

import (
	"testing"

	"delivr/internal/core/application/usecases/commands"
	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/partner"
	"delivr/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePartnerLocationCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	reporter := newClaimingPartner(t, userID)
	cmd, err := commands.NewUpdatePartnerLocationCommand(userID, 12.9716, 77.5946)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("GetByUserID", mock.Anything, userID).Return(reporter, nil).Once(),
		partnerRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *partner.DeliveryPartner) bool {
			return p.Location().Lat() == 12.9716 && p.Location().Lng() == 77.5946
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePartnerLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewUpdatePartnerLocationCommand_OutOfRange(t *testing.T) {
	_, err := commands.NewUpdatePartnerLocationCommand(kernel.NewUUID(), 91, 0)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewUpdatePartnerLocationCommand(kernel.NewUUID(), 0, -181)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestUpdatePartnerStatusCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	target := newClaimingPartner(t, kernel.NewUUID())
	available := false
	cmd, err := commands.NewUpdatePartnerStatusCommand(target.ID(), partner.StatusSuspended, &available)
	require.NoError(t, err)

	partnerRepo := new(MockPartnerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PartnerRepository").Return(partnerRepo).Once(),
		partnerRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once(),
		partnerRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *partner.DeliveryPartner) bool {
			return p.Status() == partner.StatusSuspended && !p.IsAvailable() && !p.CanClaim()
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPartnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdatePartnerStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	partnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestResetPartnerEarningsCommandHandler_Handle(t *testing.T) {
	t.Run("daily period resets daily counters", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewResetPartnerEarningsCommand(commands.EarningsPeriodDaily)
		require.NoError(t, err)

		partnerRepo := new(MockPartnerRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PartnerRepository").Return(partnerRepo).Once(),
			partnerRepo.On("ResetDailyEarnings", mock.Anything).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockPartnerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewResetPartnerEarningsCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		partnerRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("weekly period resets weekly counters", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewResetPartnerEarningsCommand(commands.EarningsPeriodWeekly)
		require.NoError(t, err)

		partnerRepo := new(MockPartnerRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("PartnerRepository").Return(partnerRepo).Once(),
			partnerRepo.On("ResetWeeklyEarnings", mock.Anything).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		factory := new(MockPartnerUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewResetPartnerEarningsCommandHandler(factory)
		err = h.Handle(ctx, cmd)

		require.NoError(t, err)
		partnerRepo.AssertExpectations(t)
		uow.AssertExpectations(t)
	})

	t.Run("unknown period is rejected at construction", func(t *testing.T) {
		_, err := commands.NewResetPartnerEarningsCommand(commands.EarningsPeriod("monthly"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
