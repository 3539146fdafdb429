package queries

import (
	"context"

	"delivr/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler serves the partner app's active deliveries
// screen.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for assigned-order
// queries.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle lists the partner's in-flight orders with their items, oldest first.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	views := make([]OrderView, 0)
	err := db.Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE delivery_partner_id = (
			SELECT id FROM delivery_partners WHERE user_id = ?
		)
		AND status NOT IN (?, ?)
		ORDER BY created_at ASC
	`, query.PartnerUserID().String(),
		order.StatusDelivered.String(), order.StatusCancelled.String()).Scan(&views).Error
	if err != nil {
		return nil, err
	}

	for i := range views {
		if err := loadItems(db, &views[i]); err != nil {
			return nil, err
		}
	}

	return views, nil
}
