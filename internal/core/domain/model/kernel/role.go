package kernel

import (
	"fmt"

	"delivr/internal/pkg/errs"
)

// Role is the actor role carried by an authenticated request. It decides
// which side of the order workflow the actor may drive.
type Role string

const (
	RoleCustomer        Role = "customer"
	RoleDeliveryPartner Role = "delivery_partner"
	RoleAdmin           Role = "admin"
)

// ParseRole converts a wire string into a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Validate rejects unknown roles.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleDeliveryPartner, RoleAdmin:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"role", fmt.Errorf("%q is not a valid role", string(r)))
}
