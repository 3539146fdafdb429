package partnerrepo

import (
	"context"
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/partner"
	"delivr/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPartnerRepository implements ports.PartnerRepository using GORM.
type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPartnerRepository creates a new GORM partner repository.
func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new partner profile to the database. The unique index on
// user_id enforces the 1:1 mapping to user accounts.
func (r *GormPartnerRepository) Add(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing partner to the database. All columns are written so
// cleared flags and zeroed counters persist.
func (r *GormPartnerRepository) Update(ctx context.Context, aggregate *partner.DeliveryPartner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("deliveryPartner", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a partner by ID.
func (r *GormPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.DeliveryPartner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPartner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the partner profile backed by the given user account.
func (r *GormPartnerRepository) GetByUserID(
	ctx context.Context,
	userID kernel.UUID,
) (*partner.DeliveryPartner, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPartner", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every partner profile.
func (r *GormPartnerRepository) GetAll(ctx context.Context) ([]*partner.DeliveryPartner, error) {
	var dtos []PartnerDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	partners := make([]*partner.DeliveryPartner, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}

	return partners, nil
}

// ResetDailyEarnings zeroes the daily counter for every partner in one
// statement. Zero affected rows just means there is nothing to reset.
func (r *GormPartnerRepository) ResetDailyEarnings(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("daily_earnings != 0").
		Update("daily_earnings", 0).Error
}

// ResetWeeklyEarnings zeroes the weekly counter for every partner in one
// statement.
func (r *GormPartnerRepository) ResetWeeklyEarnings(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&PartnerDTO{}).
		Where("weekly_earnings != 0").
		Update("weekly_earnings", 0).Error
}
