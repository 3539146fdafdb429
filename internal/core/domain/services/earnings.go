package services

import (
	"fmt"
	"math"

	"delivr/internal/core/domain/model/order"
	"delivr/internal/core/domain/model/partner"
	"delivr/internal/pkg/errs"
)

const (
	// DefaultEarningsRate is the share of the order's grand total paid to the
	// delivery partner.
	DefaultEarningsRate = 0.10

	// DefaultEarningsBaseFee is the flat per-delivery payout on top of the
	// commission, in whole currency units.
	DefaultEarningsBaseFee = 50
)

// EarningsCalculator computes the delivery partner payout for a completed
// delivery: floor(grandTotal * rate + baseFee).
type EarningsCalculator struct {
	rate    float64
	baseFee int64
}

// NewEarningsCalculator creates a calculator with the given commission rate
// and flat base fee. The rate must lie in [0, 1] and the base fee must be
// non-negative.
func NewEarningsCalculator(rate float64, baseFee int64) (EarningsCalculator, error) {
	if rate < 0 || rate > 1 {
		return EarningsCalculator{}, errs.NewValueIsOutOfRangeError("earningsRate", rate, 0.0, 1.0)
	}
	if baseFee < 0 {
		return EarningsCalculator{}, errs.NewValueIsInvalidErrorWithCause(
			"earningsBaseFee", fmt.Errorf("%d is negative", baseFee))
	}
	return EarningsCalculator{rate: rate, baseFee: baseFee}, nil
}

// Calculate returns the payout for an order grand total.
func (c EarningsCalculator) Calculate(grandTotal int64) int64 {
	return int64(math.Floor(float64(grandTotal)*c.rate + float64(c.baseFee)))
}

// DeliverySettler closes out a delivery across both aggregates: it moves the
// order to delivered and credits the carrying partner in one step, so the
// payout can never be applied without the terminal transition that guards it.
type DeliverySettler struct {
	calculator EarningsCalculator
}

// NewDeliverySettler creates a settler using the given calculator.
func NewDeliverySettler(calculator EarningsCalculator) DeliverySettler {
	return DeliverySettler{calculator: calculator}
}

// Settle marks the order delivered and credits the partner's earnings.
// It returns the credited amount.
//
// Business rules:
//   - both aggregates must be properly constructed
//   - the partner must be the one assigned to the order
//   - the order must be in out_for_delivery; the terminal delivered state
//     makes a second settlement impossible
func (s DeliverySettler) Settle(o *order.Order, p *partner.DeliveryPartner) (int64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	assigned := o.DeliveryPartner()
	if assigned == nil || !assigned.IsEqual(p.ID()) {
		return 0, errs.NewUnauthorizedError(
			fmt.Sprintf("partner %s is not assigned to order %s", p.ID(), o.ID()))
	}

	if err := o.AdvanceTo(order.StatusDelivered); err != nil {
		return 0, err
	}

	earnings := s.calculator.Calculate(o.Totals().GrandTotal())
	if err := p.CompleteDelivery(earnings); err != nil {
		return 0, err
	}

	return earnings, nil
}
