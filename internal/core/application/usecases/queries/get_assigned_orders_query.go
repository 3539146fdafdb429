package queries

import (
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/guard"
)

var ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
	"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
)

// GetAssignedOrdersQuery retrieves the non-terminal orders the requesting
// partner is currently carrying, oldest first.
type GetAssignedOrdersQuery struct { //nolint:recvcheck //using for validation
	partnerUserID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates an assigned-orders query for the partner
// backing the given user account.
func NewGetAssignedOrdersQuery(partnerUserID kernel.UUID) (GetAssignedOrdersQuery, error) {
	if err := partnerUserID.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return GetAssignedOrdersQuery{
		partnerUserID: partnerUserID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// PartnerUserID returns the requesting partner's user account id.
func (q GetAssignedOrdersQuery) PartnerUserID() kernel.UUID {
	return q.partnerUserID
}
