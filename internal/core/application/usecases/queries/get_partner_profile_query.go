package queries

import (
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/guard"
)

var ErrGetPartnerProfileQueryIsNotConstructed = errors.New(
	"GetPartnerProfileQuery must be created via NewGetPartnerProfileQuery constructor",
)

// GetPartnerProfileQuery retrieves a delivery partner's profile, including
// the earnings breakdown, by the backing user account.
type GetPartnerProfileQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerProfileQuery creates a profile query.
func NewGetPartnerProfileQuery(userID kernel.UUID) (GetPartnerProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetPartnerProfileQuery{}, err
	}

	return GetPartnerProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerProfileQueryIsNotConstructed)
}

// UserID returns the backing user account id.
func (q GetPartnerProfileQuery) UserID() kernel.UUID {
	return q.userID
}

// PartnerView is the flat read model of a delivery partner profile.
type PartnerView struct {
	ID              string  `gorm:"column:id"               json:"id"`
	UserID          string  `gorm:"column:user_id"          json:"userId"`
	VehicleType     string  `gorm:"column:vehicle_type"     json:"vehicleType"`
	VehicleNumber   string  `gorm:"column:vehicle_number"   json:"vehicleNumber"`
	LicenseNumber   string  `gorm:"column:license_number"   json:"licenseNumber"`
	Lat             float64 `gorm:"column:lat"              json:"lat"`
	Lng             float64 `gorm:"column:lng"              json:"lng"`
	Status          string  `gorm:"column:status"           json:"status"`
	Rating          float64 `gorm:"column:rating"           json:"rating"`
	TotalDeliveries int64   `gorm:"column:total_deliveries" json:"totalDeliveries"`
	TotalEarnings   int64   `gorm:"column:total_earnings"   json:"totalEarnings"`
	DailyEarnings   int64   `gorm:"column:daily_earnings"   json:"dailyEarnings"`
	WeeklyEarnings  int64   `gorm:"column:weekly_earnings"  json:"weeklyEarnings"`
	IsAvailable     bool    `gorm:"column:is_available"     json:"isAvailable"`
	IsOnDelivery    bool    `gorm:"column:is_on_delivery"   json:"isOnDelivery"`
}

// partnerColumns is the shared SELECT list for partner views.
const partnerColumns = `
	id, user_id, vehicle_type, vehicle_number, license_number,
	lat, lng, status, rating,
	total_deliveries, total_earnings, daily_earnings, weekly_earnings,
	is_available, is_on_delivery`
