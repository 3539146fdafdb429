// Package restaurantrepo implements catalog persistence: restaurants and
// their menu items. The catalog is read-mostly; checkout reads it to verify
// availability and snapshot prices.
package restaurantrepo

import (
	"time"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO is the database row backing a restaurant catalog entry.
type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	Cuisine   string
	Address   string `gorm:"not null"`
	Lat       float64
	Lng       float64
	Rating    float64   `gorm:"not null"`
	IsOpen    bool      `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "restaurants".
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// MenuItemDTO is the database row backing a menu item.
type MenuItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name         string    `gorm:"not null"`
	Description  string
	Price        int64 `gorm:"not null"`
	Category     string
	IsVeg        bool      `gorm:"not null"`
	IsAvailable  bool      `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "menu_items".
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func restaurantFromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	location := aggregate.Location()

	return RestaurantDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Cuisine: aggregate.Cuisine(),
		Address: aggregate.Address(),
		Lat:     location.Lat(),
		Lng:     location.Lng(),
		Rating:  aggregate.Rating(),
		IsOpen:  aggregate.IsOpen(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return restaurant.NewRestaurant(
		id, dto.Name, dto.Cuisine, dto.Address, location, dto.Rating, dto.IsOpen)
}

func menuItemFromDomain(item *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:           item.ID().Bytes(),
		RestaurantID: item.RestaurantID().Bytes(),
		Name:         item.Name(),
		Description:  item.Description(),
		Price:        item.Price(),
		Category:     item.Category(),
		IsVeg:        item.IsVeg(),
		IsAvailable:  item.IsAvailable(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	return restaurant.NewMenuItem(
		id, restaurantID,
		dto.Name, dto.Description, dto.Price, dto.Category,
		dto.IsVeg, dto.IsAvailable)
}
