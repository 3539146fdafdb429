package partner

import (
	"fmt"

	"delivr/internal/pkg/errs"
)

// Status is the account standing of a delivery partner. Only active partners
// may claim or carry deliveries; suspended is an admin action.
type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

// ParseStatus converts a wire string into a partner Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate rejects unknown partner statuses.
func (s Status) Validate() error {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"partnerStatus", fmt.Errorf("%q is not a valid partner status", string(s)))
}
