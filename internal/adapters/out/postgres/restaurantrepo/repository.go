package restaurantrepo

import (
	"context"
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/restaurant"
	"delivr/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
// The catalog has no aggregate tracking: restaurants are read during checkout
// but never mutated by the delivery workflow.
type GormRestaurantRepository struct {
	db *gorm.DB
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{db: db}
}

// Add saves a restaurant catalog entry to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := restaurantFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return restaurantToDomain(dto)
}

// AddMenuItem saves a menu item under its restaurant.
func (r *GormRestaurantRepository) AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := menuItemFromDomain(item)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetMenuItems retrieves the menu of a restaurant, dish name order.
func (r *GormRestaurantRepository) GetMenuItems(
	ctx context.Context,
	restaurantID kernel.UUID,
) ([]*restaurant.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("name ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*restaurant.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := menuItemToDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
