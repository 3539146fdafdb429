package order

import (
	"fmt"

	"delivr/internal/pkg/errs"
)

// PaymentMethod is the customer's chosen payment instrument.
type PaymentMethod string

const (
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodCOD        PaymentMethod = "cod"
)

// ParsePaymentMethod converts a wire string into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate rejects unknown payment methods.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodUPI, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodCOD:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not a valid payment method", string(m)))
}

// PaymentStatus is the settlement state of the order's payment. Payment is
// mocked: checkout settles instantly as completed.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Validate rejects unknown payment statuses.
func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"paymentStatus", fmt.Errorf("%q is not a valid payment status", string(s)))
}
