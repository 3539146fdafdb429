package ports

import (
	"context"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/partner"
)

// PartnerRepository defines the persistence contract for delivery partner
// aggregates.
type PartnerRepository interface {
	// Add persists a new delivery partner profile.
	Add(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Update persists changes to an existing partner.
	Update(ctx context.Context, aggregate *partner.DeliveryPartner) error

	// Get retrieves a partner by their unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error)

	// GetByUserID retrieves the partner profile backed by the given user
	// account. Profiles map 1:1 to users.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*partner.DeliveryPartner, error)

	// GetAll retrieves every partner profile.
	GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error)

	// ResetDailyEarnings zeroes the daily counter for every partner.
	ResetDailyEarnings(ctx context.Context) error

	// ResetWeeklyEarnings zeroes the weekly counter for every partner.
	ResetWeeklyEarnings(ctx context.Context) error
}
