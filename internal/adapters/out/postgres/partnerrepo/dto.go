// Package partnerrepo implements delivery partner persistence, including the
// bulk earnings-counter resets issued by the scheduled jobs.
package partnerrepo

import (
	"time"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO is the database row backing a delivery partner aggregate.
type PartnerDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	VehicleType     string    `gorm:"not null"`
	VehicleNumber   string    `gorm:"not null"`
	LicenseNumber   string    `gorm:"not null"`
	Lat             float64
	Lng             float64
	Status          string  `gorm:"index;not null"`
	Rating          float64 `gorm:"not null"`
	TotalDeliveries int64   `gorm:"not null"`
	TotalEarnings   int64   `gorm:"not null"`
	DailyEarnings   int64   `gorm:"not null"`
	WeeklyEarnings  int64   `gorm:"not null"`
	IsAvailable     bool    `gorm:"not null"`
	IsOnDelivery    bool    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "delivery_partners".
func (PartnerDTO) TableName() string {
	return "delivery_partners"
}

// fromDomain converts a partner aggregate to its database representation.
func fromDomain(aggregate *partner.DeliveryPartner) PartnerDTO {
	location := aggregate.Location()

	return PartnerDTO{
		ID:              aggregate.ID().Bytes(),
		UserID:          aggregate.UserID().Bytes(),
		VehicleType:     string(aggregate.VehicleType()),
		VehicleNumber:   aggregate.VehicleNumber(),
		LicenseNumber:   aggregate.LicenseNumber(),
		Lat:             location.Lat(),
		Lng:             location.Lng(),
		Status:          string(aggregate.Status()),
		Rating:          aggregate.Rating(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		TotalEarnings:   aggregate.TotalEarnings(),
		DailyEarnings:   aggregate.DailyEarnings(),
		WeeklyEarnings:  aggregate.WeeklyEarnings(),
		IsAvailable:     aggregate.IsAvailable(),
		IsOnDelivery:    aggregate.IsOnDelivery(),
	}
}

// toDomain converts a database row back into the aggregate using
// RestoreDeliveryPartner.
func toDomain(dto PartnerDTO) (*partner.DeliveryPartner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	vehicleType, err := partner.ParseVehicleType(dto.VehicleType)
	if err != nil {
		return nil, err
	}

	status, err := partner.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return partner.RestoreDeliveryPartner(
		id, userID,
		vehicleType, dto.VehicleNumber, dto.LicenseNumber,
		location, status, dto.Rating,
		dto.TotalDeliveries, dto.TotalEarnings, dto.DailyEarnings, dto.WeeklyEarnings,
		dto.IsAvailable, dto.IsOnDelivery)
}
