package queries

import (
	"errors"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items. Access is
// limited to the ordering customer, the assigned delivery partner (matched by
// user account) and admins.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	requesterUserID kernel.UUID
	requesterRole   kernel.Role

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order detail query.
func NewGetOrderQuery(orderID, requesterUserID kernel.UUID, requesterRole kernel.Role) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		requesterUserID.Validate(),
		requesterRole.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	q.orderID = orderID
	q.requesterUserID = requesterUserID
	q.requesterRole = requesterRole
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterUserID returns the requesting user's account id.
func (q GetOrderQuery) RequesterUserID() kernel.UUID {
	return q.requesterUserID
}

// RequesterRole returns the requesting user's role.
func (q GetOrderQuery) RequesterRole() kernel.Role {
	return q.requesterRole
}
