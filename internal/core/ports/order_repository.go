package ports

import (
	"context"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllClaimable retrieves confirmed orders with no assigned partner,
	// oldest first.
	GetAllClaimable(ctx context.Context) ([]*order.Order, error)

	// GetAllAssignedToPartner retrieves the non-terminal orders a partner is
	// currently carrying.
	GetAllAssignedToPartner(ctx context.Context, partnerID kernel.UUID) ([]*order.Order, error)

	// Claim atomically assigns the order to the partner and moves it to
	// preparing, but only if the order is still confirmed and unclaimed. The
	// decision is made by a single conditional UPDATE so that exactly one of
	// any set of concurrent claimers wins.
	//
	// Returns errs.ObjectAlreadyAssignedError when the order exists but was
	// already claimed or has left the claimable state, and
	// errs.ObjectNotFoundError when the order does not exist.
	Claim(ctx context.Context, orderID kernel.UUID, partnerID kernel.UUID) error
}
