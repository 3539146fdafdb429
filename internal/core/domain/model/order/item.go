package order

import (
	"errors"
	"fmt"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one ordered line: a snapshot of a menu item at checkout time.
// Name and unit price are copied from the catalog, never referenced live, so
// menu edits cannot rewrite order history.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID     kernel.UUID
	name           string
	quantity       int
	unitPrice      int64
	customizations []string

	guard guard.ConstructorGuard
}

// NewItem creates a validated line item. Quantity must be at least 1 and the
// unit price non-negative.
func NewItem(menuItemID kernel.UUID, name string, quantity int, unitPrice int64, customizations []string) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.customizations = append([]string(nil), customizations...)
	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the catalog id the snapshot was taken from.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Name returns the snapshotted menu item name.
func (i Item) Name() string {
	return i.name
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the snapshotted price per unit.
func (i Item) UnitPrice() int64 {
	return i.unitPrice
}

// Customizations returns a copy of the free-form customization notes.
func (i Item) Customizations() []string {
	return append([]string(nil), i.customizations...)
}

// LineTotal returns quantity x unit price.
func (i Item) LineTotal() int64 {
	return int64(i.quantity) * i.unitPrice
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(price int64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice", fmt.Errorf("%d is negative", price))
	}
	i.unitPrice = price
	return nil
}
