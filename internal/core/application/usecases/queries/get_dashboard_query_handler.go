package queries

import (
	"context"

	"delivr/internal/core/domain/model/order"
	"delivr/internal/core/domain/model/partner"

	"gorm.io/gorm"
)

// GetDashboardQueryHandler aggregates the admin dashboard numbers in a single
// round trip.
type GetDashboardQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db}
}

// Handle computes today/this-week order counts, the non-terminal backlog,
// active partner count and revenue. Cancelled orders never count toward
// revenue.
func (h GetDashboardQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardQuery,
) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var resp GetDashboardQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT count(*) FROM orders
				WHERE created_at >= date_trunc('day', now())) AS orders_today,
			(SELECT count(*) FROM orders
				WHERE created_at >= date_trunc('week', now())) AS orders_this_week,
			(SELECT count(*) FROM orders
				WHERE status NOT IN (?, ?)) AS pending_orders,
			(SELECT count(*) FROM delivery_partners
				WHERE status = ?) AS active_partners,
			(SELECT coalesce(sum(subtotal + delivery_fee + taxes - discount), 0) FROM orders
				WHERE status != ? AND created_at >= date_trunc('day', now())) AS revenue_today,
			(SELECT coalesce(sum(subtotal + delivery_fee + taxes - discount), 0) FROM orders
				WHERE status != ? AND created_at >= date_trunc('week', now())) AS revenue_week
	`,
		order.StatusDelivered.String(), order.StatusCancelled.String(),
		string(partner.StatusActive),
		order.StatusCancelled.String(),
		order.StatusCancelled.String(),
	).Scan(&resp).Error
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return resp, nil
}
