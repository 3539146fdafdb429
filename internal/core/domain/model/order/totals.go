package order

import (
	"errors"
	"fmt"

	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

// ErrTotalsAreNotConstructed is returned when Totals were not created through
// NewTotals.
var ErrTotalsAreNotConstructed = errors.New("Totals must be created via NewTotals constructor")

// Totals is the monetary breakdown of an order in whole currency units.
// The grand total is always derived, never stored independently, so the
// identity grandTotal = subtotal + deliveryFee + taxes - discount holds by
// construction.
type Totals struct { //nolint:recvcheck //using for validation
	subtotal    int64
	deliveryFee int64
	taxes       int64
	discount    int64

	guard guard.ConstructorGuard
}

// NewTotals creates a validated monetary breakdown. All components must be
// non-negative and the discount may not exceed the sum of the charges.
func NewTotals(subtotal, deliveryFee, taxes, discount int64) (Totals, error) {
	t := Totals{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setComponent("subtotal", subtotal, &t.subtotal),
		t.setComponent("deliveryFee", deliveryFee, &t.deliveryFee),
		t.setComponent("taxes", taxes, &t.taxes),
		t.setComponent("discount", discount, &t.discount),
	); err != nil {
		return Totals{}, err
	}

	if discount > subtotal+deliveryFee+taxes {
		return Totals{}, errs.NewValueIsInvalidErrorWithCause(
			"discount", fmt.Errorf("%d exceeds the %d charged", discount, subtotal+deliveryFee+taxes))
	}
	return t, nil
}

// Validate ensures the totals were created through NewTotals.
func (t Totals) Validate() error {
	return t.guard.Validate(ErrTotalsAreNotConstructed)
}

// Subtotal returns the sum of the line totals.
func (t Totals) Subtotal() int64 {
	return t.subtotal
}

// DeliveryFee returns the delivery fee charged to the customer.
func (t Totals) DeliveryFee() int64 {
	return t.deliveryFee
}

// Taxes returns the taxes charged.
func (t Totals) Taxes() int64 {
	return t.taxes
}

// Discount returns the discount applied.
func (t Totals) Discount() int64 {
	return t.discount
}

// GrandTotal returns subtotal + deliveryFee + taxes - discount.
func (t Totals) GrandTotal() int64 {
	return t.subtotal + t.deliveryFee + t.taxes - t.discount
}

func (t *Totals) setComponent(name string, value int64, field *int64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name, fmt.Errorf("%d is negative", value))
	}
	*field = value
	return nil
}
