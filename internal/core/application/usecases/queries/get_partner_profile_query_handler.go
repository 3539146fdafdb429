package queries

import (
	"context"

	"delivr/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPartnerProfileQueryHandler serves the partner profile and earnings
// screens.
type GetPartnerProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerProfileQueryHandler creates a handler for profile queries.
func NewGetPartnerProfileQueryHandler(db *gorm.DB) GetPartnerProfileQueryHandler {
	return GetPartnerProfileQueryHandler{db: db}
}

// Handle fetches the profile backing the given user account.
func (h GetPartnerProfileQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerProfileQuery,
) (PartnerView, error) {
	if err := query.Validate(); err != nil {
		return PartnerView{}, err
	}

	var view PartnerView
	res := h.db.WithContext(ctx).Raw(`
		SELECT`+partnerColumns+`
		FROM delivery_partners
		WHERE user_id = ?
	`, query.UserID().String()).Scan(&view)
	if res.Error != nil {
		return PartnerView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return PartnerView{}, errs.NewObjectNotFoundError("userID", query.UserID().String())
	}

	return view, nil
}
