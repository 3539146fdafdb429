package ports

import (
	"context"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for the catalog.
// Checkout reads it to verify the restaurant and snapshot menu prices.
type RestaurantRepository interface {
	// Add persists a restaurant entry.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// AddMenuItem persists a menu item under its restaurant.
	AddMenuItem(ctx context.Context, item *restaurant.MenuItem) error

	// GetMenuItems retrieves the menu of a restaurant.
	GetMenuItems(ctx context.Context, restaurantID kernel.UUID) ([]*restaurant.MenuItem, error)
}
