package queries

import (
	"errors"

	"delivr/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the admin dashboard headline numbers.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a dashboard query. This is a parameterless
// query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse carries the dashboard counters. Revenue excludes
// cancelled orders; "pending" counts orders that have not reached a terminal
// state.
type GetDashboardQueryResponse struct {
	OrdersToday    int64 `json:"ordersToday"`
	OrdersThisWeek int64 `json:"ordersThisWeek"`
	PendingOrders  int64 `json:"pendingOrders"`
	ActivePartners int64 `json:"activePartners"`
	RevenueToday   int64 `json:"revenueToday"`
	RevenueWeek    int64 `json:"revenueWeek"`
}
