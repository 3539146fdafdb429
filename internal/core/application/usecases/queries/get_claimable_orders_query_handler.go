package queries

import (
	"context"

	"delivr/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetClaimableOrdersQueryHandler serves the claimable pool. The listing is a
// snapshot: by the time a partner taps accept, the order may already be gone,
// and the claim's conditional UPDATE is what actually decides.
type GetClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableOrdersQueryHandler creates a handler for claimable pool
// queries.
func NewGetClaimableOrdersQueryHandler(db *gorm.DB) GetClaimableOrdersQueryHandler {
	return GetClaimableOrdersQueryHandler{db: db}
}

// Handle lists confirmed, unassigned orders, oldest first.
func (h GetClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]OrderView, 0, query.Limit())
	err := h.db.WithContext(ctx).Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE status = ? AND delivery_partner_id IS NULL
		ORDER BY created_at ASC
		LIMIT ?
	`, order.StatusConfirmed.String(), query.Limit()).Scan(&views).Error
	if err != nil {
		return nil, err
	}

	return views, nil
}
