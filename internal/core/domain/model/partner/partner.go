package partner

import (
	"errors"
	"fmt"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

// ErrDeliveryPartnerIsNotConstructed is returned when a DeliveryPartner was
// not created through NewDeliveryPartner or RestoreDeliveryPartner.
var ErrDeliveryPartnerIsNotConstructed = errors.New(
	"DeliveryPartner must be created via NewDeliveryPartner or RestoreDeliveryPartner constructor")

const (
	// defaultRating is assigned on registration, before any customer reviews.
	defaultRating = 4.5

	minRating = 1.0
	maxRating = 5.0
)

// DeliveryPartner is the courier profile aggregate. It is tied 1:1 to a user
// account via userID and tracks the vehicle, live location, account standing,
// availability flags and the earnings counters that the delivery workflow
// credits.
//
// Invariants:
//   - rating stays within [1.0, 5.0]
//   - earnings counters never go negative and only grow through
//     CompleteDelivery, shrinking only through the scheduled resets
//   - isOnDelivery flips on in BeginDelivery and off in CompleteDelivery or
//     CancelDelivery, never elsewhere
type DeliveryPartner struct {
	id              kernel.UUID
	userID          kernel.UUID
	vehicleType     VehicleType
	vehicleNumber   string
	licenseNumber   string
	location        kernel.GeoPoint
	status          Status
	rating          float64
	totalDeliveries int64
	totalEarnings   int64
	dailyEarnings   int64
	weeklyEarnings  int64
	isAvailable     bool
	isOnDelivery    bool

	guard guard.ConstructorGuard
}

// NewDeliveryPartner registers a partner profile. New partners start active,
// available, off delivery, at the default rating, with zeroed earnings and a
// zero location until the first location ping.
func NewDeliveryPartner(
	id kernel.UUID,
	userID kernel.UUID,
	vehicleType VehicleType,
	vehicleNumber string,
	licenseNumber string,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		location:    kernel.ZeroGeoPoint(),
		status:      StatusActive,
		rating:      defaultRating,
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setVehicleType(vehicleType),
		p.setVehicleNumber(vehicleNumber),
		p.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreDeliveryPartner reconstructs a partner aggregate from persistence.
func RestoreDeliveryPartner(
	id kernel.UUID,
	userID kernel.UUID,
	vehicleType VehicleType,
	vehicleNumber string,
	licenseNumber string,
	location kernel.GeoPoint,
	status Status,
	rating float64,
	totalDeliveries int64,
	totalEarnings int64,
	dailyEarnings int64,
	weeklyEarnings int64,
	isAvailable bool,
	isOnDelivery bool,
) (*DeliveryPartner, error) {
	p := &DeliveryPartner{
		isAvailable:  isAvailable,
		isOnDelivery: isOnDelivery,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setUserID(userID),
		p.setVehicleType(vehicleType),
		p.setVehicleNumber(vehicleNumber),
		p.setLicenseNumber(licenseNumber),
		p.setLocation(location),
		p.setStatus(status),
		p.setRating(rating),
		p.setCounter("totalDeliveries", totalDeliveries, &p.totalDeliveries),
		p.setCounter("totalEarnings", totalEarnings, &p.totalEarnings),
		p.setCounter("dailyEarnings", dailyEarnings, &p.dailyEarnings),
		p.setCounter("weeklyEarnings", weeklyEarnings, &p.weeklyEarnings),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the partner was created through a factory method.
func (p *DeliveryPartner) Validate() error {
	if p == nil {
		return ErrDeliveryPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrDeliveryPartnerIsNotConstructed)
}

// IsEqual compares two partners by their unique identifiers.
func (p *DeliveryPartner) IsEqual(other *DeliveryPartner) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the partner's unique identifier.
func (p *DeliveryPartner) ID() kernel.UUID {
	return p.id
}

// UserID returns the backing user account id.
func (p *DeliveryPartner) UserID() kernel.UUID {
	return p.userID
}

// VehicleType returns the partner's vehicle kind.
func (p *DeliveryPartner) VehicleType() VehicleType {
	return p.vehicleType
}

// VehicleNumber returns the vehicle registration plate.
func (p *DeliveryPartner) VehicleNumber() string {
	return p.vehicleNumber
}

// LicenseNumber returns the driving license number.
func (p *DeliveryPartner) LicenseNumber() string {
	return p.licenseNumber
}

// Location returns the last reported position.
func (p *DeliveryPartner) Location() kernel.GeoPoint {
	return p.location
}

// Status returns the account standing.
func (p *DeliveryPartner) Status() Status {
	return p.status
}

// Rating returns the average customer rating.
func (p *DeliveryPartner) Rating() float64 {
	return p.rating
}

// TotalDeliveries returns the lifetime completed delivery count.
func (p *DeliveryPartner) TotalDeliveries() int64 {
	return p.totalDeliveries
}

// TotalEarnings returns the lifetime earnings.
func (p *DeliveryPartner) TotalEarnings() int64 {
	return p.totalEarnings
}

// DailyEarnings returns earnings since the last daily reset.
func (p *DeliveryPartner) DailyEarnings() int64 {
	return p.dailyEarnings
}

// WeeklyEarnings returns earnings since the last weekly reset.
func (p *DeliveryPartner) WeeklyEarnings() int64 {
	return p.weeklyEarnings
}

// IsAvailable reports whether the partner accepts new deliveries.
func (p *DeliveryPartner) IsAvailable() bool {
	return p.isAvailable
}

// IsOnDelivery reports whether the partner currently carries an order.
func (p *DeliveryPartner) IsOnDelivery() bool {
	return p.isOnDelivery
}

// CanClaim reports whether the partner may pick up a new order: active
// standing, available and not already carrying one.
func (p *DeliveryPartner) CanClaim() bool {
	return p.status == StatusActive && p.isAvailable && !p.isOnDelivery
}

// BeginDelivery marks the partner as carrying an order. Fails when the
// partner is not in a claimable state.
func (p *DeliveryPartner) BeginDelivery() error {
	if p.status != StatusActive {
		return errs.NewUnauthorizedError(
			fmt.Sprintf("partner %s is %s", p.id, p.status))
	}
	if p.isOnDelivery {
		return errs.NewObjectAlreadyAssignedError("deliveryPartner", p.id.String())
	}
	if !p.isAvailable {
		return errs.NewValueIsInvalidErrorWithCause(
			"isAvailable", fmt.Errorf("partner %s is not accepting deliveries", p.id))
	}

	p.isOnDelivery = true
	return nil
}

// CompleteDelivery credits the earnings for a finished delivery and frees the
// partner. The caller computes the amount; this method only applies it, so a
// delivery is credited exactly once per completed order.
func (p *DeliveryPartner) CompleteDelivery(earnings int64) error {
	if earnings < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"earnings", fmt.Errorf("%d is negative", earnings))
	}

	p.totalDeliveries++
	p.totalEarnings += earnings
	p.dailyEarnings += earnings
	p.weeklyEarnings += earnings
	p.isOnDelivery = false
	return nil
}

// CancelDelivery frees the partner without crediting anything, used when the
// carried order is cancelled or reassigned away.
func (p *DeliveryPartner) CancelDelivery() {
	p.isOnDelivery = false
}

// SetLocation records a location ping.
func (p *DeliveryPartner) SetLocation(location kernel.GeoPoint) error {
	return p.setLocation(location)
}

// SetAvailability toggles whether the partner accepts new deliveries. It does
// not interrupt a delivery already in progress.
func (p *DeliveryPartner) SetAvailability(available bool) {
	p.isAvailable = available
}

// SetStatus changes the account standing.
func (p *DeliveryPartner) SetStatus(status Status) error {
	return p.setStatus(status)
}

// ResetDailyEarnings zeroes the daily counter. Runs from the midnight job.
func (p *DeliveryPartner) ResetDailyEarnings() {
	p.dailyEarnings = 0
}

// ResetWeeklyEarnings zeroes the weekly counter. Runs from the Monday job.
func (p *DeliveryPartner) ResetWeeklyEarnings() {
	p.weeklyEarnings = 0
}

func (p *DeliveryPartner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *DeliveryPartner) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.userID = id
	return nil
}

func (p *DeliveryPartner) setVehicleType(v VehicleType) error {
	if err := v.Validate(); err != nil {
		return err
	}
	p.vehicleType = v
	return nil
}

func (p *DeliveryPartner) setVehicleNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("vehicleNumber")
	}
	p.vehicleNumber = number
	return nil
}

func (p *DeliveryPartner) setLicenseNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("licenseNumber")
	}
	p.licenseNumber = number
	return nil
}

func (p *DeliveryPartner) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	p.location = location
	return nil
}

func (p *DeliveryPartner) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}

func (p *DeliveryPartner) setRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	p.rating = rating
	return nil
}

func (p *DeliveryPartner) setCounter(name string, value int64, field *int64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name, fmt.Errorf("%d is negative", value))
	}
	*field = value
	return nil
}
