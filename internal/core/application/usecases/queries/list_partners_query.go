package queries

import (
	"errors"

	"delivr/internal/core/domain/model/partner"
	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

var ErrListPartnersQueryIsNotConstructed = errors.New(
	"ListPartnersQuery must be created via NewListPartnersQuery constructor",
)

// ListPartnersQuery retrieves a page of delivery partners for the admin
// screen, best rated first.
type ListPartnersQuery struct { //nolint:recvcheck //using for validation
	status    *partner.Status
	minRating *float64
	page      int
	limit     int

	guard guard.ConstructorGuard
}

// NewListPartnersQuery creates a paged partner listing query.
func NewListPartnersQuery(
	status *partner.Status,
	minRating *float64,
	page, limit int,
) (ListPartnersQuery, error) {
	q := ListPartnersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return ListPartnersQuery{}, err
		}
		s := *status
		q.status = &s
	}

	if minRating != nil {
		if *minRating < 1 || *minRating > 5 {
			return ListPartnersQuery{}, errs.NewValueIsOutOfRangeError(
				"minRating", *minRating, 1.0, 5.0)
		}
		r := *minRating
		q.minRating = &r
	}

	page, limit, err := normalizePage(page, limit)
	if err != nil {
		return ListPartnersQuery{}, err
	}
	q.page = page
	q.limit = limit

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPartnersQuery) Validate() error {
	return q.guard.Validate(ErrListPartnersQueryIsNotConstructed)
}

// Status returns the standing filter, or nil.
func (q ListPartnersQuery) Status() *partner.Status {
	return q.status
}

// MinRating returns the rating floor, or nil.
func (q ListPartnersQuery) MinRating() *float64 {
	return q.minRating
}

// Page returns the 1-based page number.
func (q ListPartnersQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListPartnersQuery) Limit() int {
	return q.limit
}

// ListPartnersQueryResponse is one page of partners plus paging metadata.
type ListPartnersQueryResponse struct {
	Partners   []PartnerView `json:"partners"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}
