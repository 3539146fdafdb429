package order

import (
	"errors"

	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination snapshotted into the order at checkout.
// Street and city are mandatory, area and pincode are free-form extras.
type Address struct { //nolint:recvcheck //using for validation
	street  string
	area    string
	city    string
	pincode string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated delivery address.
func NewAddress(street, area, city, pincode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
	); err != nil {
		return Address{}, err
	}

	addr.area = area
	addr.pincode = pincode
	return addr, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// Area returns the locality or neighbourhood, possibly empty.
func (a Address) Area() string {
	return a.area
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// Pincode returns the postal code, possibly empty.
func (a Address) Pincode() string {
	return a.pincode
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}
