package partner

import (
	"fmt"

	"delivr/internal/pkg/errs"
)

// VehicleType is the kind of vehicle a delivery partner rides.
type VehicleType string

const (
	VehicleBike    VehicleType = "bike"
	VehicleScooter VehicleType = "scooter"
	VehicleBicycle VehicleType = "bicycle"
	VehicleCar     VehicleType = "car"
)

// ParseVehicleType converts a wire string into a VehicleType.
func ParseVehicleType(s string) (VehicleType, error) {
	v := VehicleType(s)
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Validate rejects unknown vehicle types.
func (v VehicleType) Validate() error {
	switch v {
	case VehicleBike, VehicleScooter, VehicleBicycle, VehicleCar:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"vehicleType", fmt.Errorf("%q is not a valid vehicle type", string(v)))
}
