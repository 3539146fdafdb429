package queries

import (
	"errors"

	"delivr/internal/pkg/guard"
)

var ErrGetAnalyticsQueryIsNotConstructed = errors.New(
	"GetAnalyticsQuery must be created via NewGetAnalyticsQuery constructor",
)

// GetAnalyticsQuery retrieves the admin analytics rollup.
type GetAnalyticsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAnalyticsQuery creates an analytics query. This is a parameterless
// query.
func NewGetAnalyticsQuery() GetAnalyticsQuery {
	return GetAnalyticsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetAnalyticsQueryIsNotConstructed)
}

// StatusCount is one row of the orders-by-status breakdown.
type StatusCount struct {
	Status string `gorm:"column:status" json:"status"`
	Count  int64  `gorm:"column:count"  json:"count"`
}

// RestaurantOrderCount is one row of the top-restaurants ranking.
type RestaurantOrderCount struct {
	RestaurantID string `gorm:"column:restaurant_id" json:"restaurantId"`
	Name         string `gorm:"column:name"          json:"name"`
	OrderCount   int64  `gorm:"column:order_count"   json:"orderCount"`
}

// GetAnalyticsQueryResponse carries the analytics rollup. Revenue excludes
// cancelled orders.
type GetAnalyticsQueryResponse struct {
	TotalRevenue   int64                  `json:"totalRevenue"`
	TotalOrders    int64                  `json:"totalOrders"`
	OrdersByStatus []StatusCount          `json:"ordersByStatus"`
	TopRestaurants []RestaurantOrderCount `json:"topRestaurants"`
}
