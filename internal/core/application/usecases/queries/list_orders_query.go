package queries

import (
	"errors"
	"fmt"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ListOrdersQuery retrieves a page of orders, newest first. The optional
// customer filter serves the customer's own history; without it the query
// serves the admin order list. The today flag narrows to orders created since
// local midnight.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	customerID *kernel.UUID
	status     *order.Status
	todayOnly  bool
	page       int
	limit      int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a paged order listing query. Page starts at 1; a
// zero limit falls back to the default.
func NewListOrdersQuery(
	customerID *kernel.UUID,
	status *order.Status,
	todayOnly bool,
	page, limit int,
) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		todayOnly: todayOnly,
		guard:     guard.NewConstructorGuard(),
	}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		id := *customerID
		q.customerID = &id
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		s := *status
		q.status = &s
	}

	page, limit, err := normalizePage(page, limit)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.page = page
	q.limit = limit

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, or nil.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Status returns the status filter, or nil.
func (q ListOrdersQuery) Status() *order.Status {
	return q.status
}

// TodayOnly reports whether the listing is narrowed to today's orders.
func (q ListOrdersQuery) TodayOnly() bool {
	return q.todayOnly
}

// Page returns the 1-based page number.
func (q ListOrdersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListOrdersQuery) Limit() int {
	return q.limit
}

// ListOrdersQueryResponse is one page of orders plus paging metadata.
type ListOrdersQueryResponse struct {
	Orders     []OrderView `json:"orders"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	TotalPages int         `json:"totalPages"`
}

func normalizePage(page, limit int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}

	if page < 1 {
		return 0, 0, errs.NewValueIsInvalidErrorWithCause(
			"page", fmt.Errorf("%d is less than 1", page))
	}
	if limit < 1 || limit > maxPageLimit {
		return 0, 0, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageLimit)
	}

	return page, limit, nil
}
