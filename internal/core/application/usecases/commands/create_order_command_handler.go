package commands

import (
	"context"
	"fmt"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/core/domain/model/restaurant"
	"delivr/internal/pkg/errs"
)

// CreateOrderCommandHandler handles customer checkout. It verifies the
// restaurant, snapshots menu names and prices into the order and persists the
// aggregate with payment already settled by the mocked payment flow.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for checkout operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the checkout command. The subtotal is computed from the
// snapshotted catalog prices, never taken from the client.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	if _, err := restaurantRepo.Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	menuItems, err := restaurantRepo.GetMenuItems(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	items, subtotal, err := snapshotItems(cmd.Items(), menuItems)
	if err != nil {
		return err
	}

	totals, err := order.NewTotals(subtotal, cmd.DeliveryFee(), cmd.Taxes(), cmd.Discount())
	if err != nil {
		return err
	}

	address, err := order.NewAddress(cmd.Street(), cmd.Area(), cmd.City(), cmd.Pincode())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.RestaurantID(),
		items,
		address,
		totals,
		cmd.PaymentMethod(),
		cmd.SpecialInstructions(),
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// snapshotItems resolves every requested line against the restaurant's menu
// and copies name and price into order items.
func snapshotItems(
	inputs []OrderItemInput,
	menu []*restaurant.MenuItem,
) ([]order.Item, int64, error) {
	byID := make(map[kernel.UUID]*restaurant.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID()] = m
	}

	items := make([]order.Item, 0, len(inputs))
	var subtotal int64
	for _, input := range inputs {
		menuItem, ok := byID[input.MenuItemID]
		if !ok {
			return nil, 0, errs.NewObjectNotFoundError("menuItemID", input.MenuItemID.String())
		}
		if !menuItem.IsAvailable() {
			return nil, 0, errs.NewValueIsInvalidErrorWithCause(
				"menuItemID", fmt.Errorf("menu item %s is unavailable", menuItem.ID()))
		}

		item, err := order.NewItem(
			menuItem.ID(), menuItem.Name(), input.Quantity, menuItem.Price(), input.Customizations)
		if err != nil {
			return nil, 0, err
		}

		items = append(items, item)
		subtotal += item.LineTotal()
	}

	return items, subtotal, nil
}
