package commands

import (
	"errors"
	"fmt"

	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

var ErrResetPartnerEarningsCommandIsNotConstructed = errors.New(
	"ResetPartnerEarningsCommand must be created via NewResetPartnerEarningsCommand constructor",
)

// EarningsPeriod selects which rolling earnings counter a reset targets.
type EarningsPeriod string

const (
	EarningsPeriodDaily  EarningsPeriod = "daily"
	EarningsPeriodWeekly EarningsPeriod = "weekly"
)

// Validate rejects unknown periods.
func (p EarningsPeriod) Validate() error {
	switch p {
	case EarningsPeriodDaily, EarningsPeriodWeekly:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"period", fmt.Errorf("%q is not a valid earnings period", string(p)))
}

// ResetPartnerEarningsCommand represents the scheduled zeroing of every
// partner's daily or weekly earnings counter.
type ResetPartnerEarningsCommand struct { //nolint:recvcheck //using for validation
	period EarningsPeriod

	guard guard.ConstructorGuard
}

// NewResetPartnerEarningsCommand creates a reset command for the given period.
func NewResetPartnerEarningsCommand(period EarningsPeriod) (ResetPartnerEarningsCommand, error) {
	cmd := ResetPartnerEarningsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPeriod(period); err != nil {
		return ResetPartnerEarningsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResetPartnerEarningsCommand) Validate() error {
	return c.guard.Validate(ErrResetPartnerEarningsCommandIsNotConstructed)
}

// Period returns the targeted counter.
func (c ResetPartnerEarningsCommand) Period() EarningsPeriod {
	return c.period
}

func (c *ResetPartnerEarningsCommand) setPeriod(period EarningsPeriod) error {
	if err := period.Validate(); err != nil {
		return err
	}
	c.period = period
	return nil
}
