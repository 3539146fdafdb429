package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListPartnersQueryHandler serves the admin partner listing.
type ListPartnersQueryHandler struct {
	db *gorm.DB
}

// NewListPartnersQueryHandler creates a handler for partner listings.
func NewListPartnersQueryHandler(db *gorm.DB) ListPartnersQueryHandler {
	return ListPartnersQueryHandler{db: db}
}

// Handle runs the filtered listing, best rated first.
func (h ListPartnersQueryHandler) Handle(
	ctx context.Context,
	query ListPartnersQuery,
) (ListPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPartnersQueryResponse{}, err
	}

	where := "1=1"
	args := make([]any, 0, 2)

	if status := query.Status(); status != nil {
		where += " AND status = ?"
		args = append(args, string(*status))
	}
	if minRating := query.MinRating(); minRating != nil {
		where += " AND rating >= ?"
		args = append(args, *minRating)
	}

	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(
		`SELECT count(*) FROM delivery_partners WHERE `+where, args...,
	).Scan(&total).Error; err != nil {
		return ListPartnersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	views := make([]PartnerView, 0, query.Limit())
	err := db.Raw(`
		SELECT`+partnerColumns+`
		FROM delivery_partners
		WHERE `+where+`
		ORDER BY rating DESC, total_deliveries DESC
		LIMIT ? OFFSET ?
	`, append(args, query.Limit(), offset)...).Scan(&views).Error
	if err != nil {
		return ListPartnersQueryResponse{}, err
	}

	totalPages := int((total + int64(query.Limit()) - 1) / int64(query.Limit()))
	return ListPartnersQueryResponse{
		Partners:   views,
		Total:      total,
		Page:       query.Page(),
		TotalPages: totalPages,
	}, nil
}
