package queries

import (
	"errors"

	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

var ErrGetClaimableOrdersQueryIsNotConstructed = errors.New(
	"GetClaimableOrdersQuery must be created via NewGetClaimableOrdersQuery constructor",
)

// maxClaimableLimit caps the claimable pool page so the partner app never
// pulls the whole backlog at once.
const maxClaimableLimit = 20

// GetClaimableOrdersQuery retrieves confirmed, unclaimed orders for the
// partner app's available-orders screen, oldest first so early orders get
// picked up first.
type GetClaimableOrdersQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetClaimableOrdersQuery creates a claimable pool query. A zero limit
// falls back to the cap.
func NewGetClaimableOrdersQuery(limit int) (GetClaimableOrdersQuery, error) {
	if limit == 0 {
		limit = maxClaimableLimit
	}
	if limit < 1 || limit > maxClaimableLimit {
		return GetClaimableOrdersQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, 1, maxClaimableLimit)
	}

	return GetClaimableOrdersQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableOrdersQueryIsNotConstructed)
}

// Limit returns the page size.
func (q GetClaimableOrdersQuery) Limit() int {
	return q.limit
}
