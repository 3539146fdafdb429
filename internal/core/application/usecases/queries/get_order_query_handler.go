package queries

import (
	"context"
	"fmt"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler serves the order detail view.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle fetches the order and enforces the access rule: the order's customer,
// the assigned partner's user account, or an admin. Everyone else gets an
// unauthorized error even when the order exists, so access failures do not
// leak whether an id is valid beyond the 404 case.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)

	var view OrderView
	res := db.Raw(`
		SELECT`+orderColumns+`
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Scan(&view)
	if res.Error != nil {
		return OrderView{}, res.Error
	}
	if res.RowsAffected == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderID", query.OrderID().String())
	}

	allowed, err := h.mayRead(db, query, view)
	if err != nil {
		return OrderView{}, err
	}
	if !allowed {
		return OrderView{}, errs.NewUnauthorizedError(
			fmt.Sprintf("user %s may not read order %s", query.RequesterUserID(), view.ID))
	}

	if err := loadItems(db, &view); err != nil {
		return OrderView{}, err
	}

	return view, nil
}

func (h GetOrderQueryHandler) mayRead(db *gorm.DB, query GetOrderQuery, view OrderView) (bool, error) {
	switch query.RequesterRole() {
	case kernel.RoleAdmin:
		return true, nil

	case kernel.RoleCustomer:
		return view.CustomerID == query.RequesterUserID().String(), nil

	case kernel.RoleDeliveryPartner:
		if view.DeliveryPartnerID == nil {
			return false, nil
		}
		var count int64
		err := db.Raw(`
			SELECT count(*)
			FROM delivery_partners
			WHERE id = ? AND user_id = ?
		`, *view.DeliveryPartnerID, query.RequesterUserID().String()).Scan(&count).Error
		if err != nil {
			return false, err
		}
		return count > 0, nil
	}

	return false, nil
}
