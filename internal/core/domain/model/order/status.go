package order

import (
	"fmt"

	"delivr/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with an explicit transition table so that orders only move forward
// through the delivery workflow.
//
// State transitions:
//
//	pending → confirmed → preparing → ready → picked_up → out_for_delivery → delivered
//	   └──────────┴───────────┴─────────┴─────────┴───────────────┴──> cancelled
//
// delivered and cancelled are terminal; no transition leaves them.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial checkout state while payment settles.
	// With the mocked payment flow orders normally skip straight to confirmed.
	StatusPending

	// StatusConfirmed means payment completed; the order sits in the
	// claimable pool until a delivery partner accepts it.
	StatusConfirmed

	// StatusPreparing means a partner claimed the order and the restaurant
	// is preparing it.
	StatusPreparing

	// StatusReady means the restaurant finished preparation.
	StatusReady

	// StatusPickedUp means the partner collected the order.
	StatusPickedUp

	// StatusOutForDelivery means the partner is en route to the customer.
	StatusOutForDelivery

	// StatusDelivered is the successful terminal state; it triggers the
	// one-time earnings accrual.
	StatusDelivered

	// StatusCancelled is the unsuccessful terminal state, reachable from any
	// non-terminal state. No earnings accrue.
	StatusCancelled
)

// ErrInvalidStatusTransition is the sentinel for illegal lifecycle moves.
// Use errors.Is against it; the concrete error carries from/to details.
var ErrInvalidStatusTransition = fmt.Errorf("invalid status transition")

// InvalidTransitionError reports an attempt to move an order from From to To
// when the transition table does not allow it.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// statusStrings maps every Status to its wire representation.
func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "unknown",
		StatusPending:        "pending",
		StatusConfirmed:      "confirmed",
		StatusPreparing:      "preparing",
		StatusReady:          "ready",
		StatusPickedUp:       "picked_up",
		StatusOutForDelivery: "out_for_delivery",
		StatusDelivered:      "delivered",
		StatusCancelled:      "cancelled",
	}
}

// transitions is the legal successor table. The original system accepted any
// status string on update; that was a defect, not a feature, so the table is
// authoritative here for every caller, including admins.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReady, StatusCancelled},
		StatusReady:          {StatusPickedUp, StatusCancelled},
		StatusPickedUp:       {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid order status", s))
}

// String returns the wire name of the status. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate rejects StatusUnknown and undefined values.
func (s Status) Validate() error {
	if _, ok := transitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid order status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the move is legal, or an
// InvalidTransitionError otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(next) {
		return StatusUnknown, &InvalidTransitionError{From: s, To: next}
	}
	return next, nil
}
