package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler serves paged order listings for customer history and
// the admin order screen.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle runs the filtered listing, newest first, and returns the page plus
// total counts.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 3)

	if customerID := query.CustomerID(); customerID != nil {
		where += " AND customer_id = ?"
		args = append(args, customerID.String())
	}
	if status := query.Status(); status != nil {
		where += " AND status = ?"
		args = append(args, status.String())
	}
	if query.TodayOnly() {
		where += " AND created_at >= date_trunc('day', now())"
	}

	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(
		`SELECT count(*) FROM orders WHERE `+where, args...,
	).Scan(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	views := make([]OrderView, 0, query.Limit())
	err := db.Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Scan(&views).Error
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	totalPages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))
	return ListOrdersQueryResponse{
		Orders:     views,
		Total:      total,
		Page:       query.Page(),
		TotalPages: totalPages,
	}, nil
}
