package queries

import (
	"context"

	"delivr/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// topRestaurantsLimit caps the restaurant ranking.
const topRestaurantsLimit = 10

// GetAnalyticsQueryHandler serves the admin analytics rollup.
type GetAnalyticsQueryHandler struct {
	db *gorm.DB
}

// NewGetAnalyticsQueryHandler creates a handler for analytics queries.
func NewGetAnalyticsQueryHandler(db *gorm.DB) GetAnalyticsQueryHandler {
	return GetAnalyticsQueryHandler{db: db}
}

// Handle computes total revenue and order count, the per-status breakdown and
// the top restaurants by order count.
func (h GetAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetAnalyticsQuery,
) (GetAnalyticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAnalyticsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var resp GetAnalyticsQueryResponse
	err := db.Raw(`
		SELECT
			coalesce(sum(subtotal + delivery_fee + taxes - discount)
				FILTER (WHERE status != ?), 0) AS total_revenue,
			count(*) AS total_orders
		FROM orders
	`, order.StatusCancelled.String()).Scan(&resp).Error
	if err != nil {
		return GetAnalyticsQueryResponse{}, err
	}

	byStatus := make([]StatusCount, 0)
	err = db.Raw(`
		SELECT status, count(*) AS count
		FROM orders
		GROUP BY status
		ORDER BY count DESC, status
	`).Scan(&byStatus).Error
	if err != nil {
		return GetAnalyticsQueryResponse{}, err
	}
	resp.OrdersByStatus = byStatus

	top := make([]RestaurantOrderCount, 0, topRestaurantsLimit)
	err = db.Raw(`
		SELECT o.restaurant_id, r.name, count(*) AS order_count
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.status != ?
		GROUP BY o.restaurant_id, r.name
		ORDER BY order_count DESC, r.name
		LIMIT ?
	`, order.StatusCancelled.String(), topRestaurantsLimit).Scan(&top).Error
	if err != nil {
		return GetAnalyticsQueryResponse{}, err
	}
	resp.TopRestaurants = top

	return resp, nil
}
