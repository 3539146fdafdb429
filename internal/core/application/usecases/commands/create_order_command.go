package commands

import (
	"errors"
	"fmt"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"
	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested line in a checkout: a catalog reference
// plus quantity. Name and price are snapshotted from the catalog by the
// handler, never trusted from the client.
type OrderItemInput struct {
	MenuItemID     kernel.UUID
	Quantity       int
	Customizations []string
}

// Validate checks the catalog reference and quantity.
func (i OrderItemInput) Validate() error {
	if err := i.MenuItemID.Validate(); err != nil {
		return err
	}
	if i.Quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is less than 1", i.Quantity))
	}
	return nil
}

// CreateOrderCommand represents a customer checkout: the restaurant, the
// requested items, the destination address and the payment method, plus the
// fee, taxes and discount the pricing layer resolved for this order.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	items               []OrderItemInput
	street              string
	area                string
	city                string
	pincode             string
	paymentMethod       order.PaymentMethod
	deliveryFee         int64
	taxes               int64
	discount            int64
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a checkout command. The address is validated
// here so a malformed request fails before any transaction starts.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []OrderItemInput,
	street, area, city, pincode string,
	paymentMethod order.PaymentMethod,
	deliveryFee, taxes, discount int64,
	specialInstructions string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		area:                area,
		pincode:             pincode,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(items),
		cmd.setStreet(street),
		cmd.setCity(city),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setCharge("deliveryFee", deliveryFee, &cmd.deliveryFee),
		cmd.setCharge("taxes", taxes, &cmd.taxes),
		cmd.setCharge("discount", discount, &cmd.discount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the id assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer's user id.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant the order targets.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the requested line inputs.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return append([]OrderItemInput(nil), c.items...)
}

// Street returns the destination street line.
func (c CreateOrderCommand) Street() string {
	return c.street
}

// Area returns the destination locality.
func (c CreateOrderCommand) Area() string {
	return c.area
}

// City returns the destination city.
func (c CreateOrderCommand) City() string {
	return c.city
}

// Pincode returns the destination postal code.
func (c CreateOrderCommand) Pincode() string {
	return c.pincode
}

// PaymentMethod returns the chosen payment instrument.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// DeliveryFee returns the fee charged for this delivery.
func (c CreateOrderCommand) DeliveryFee() int64 {
	return c.deliveryFee
}

// Taxes returns the taxes charged.
func (c CreateOrderCommand) Taxes() int64 {
	return c.taxes
}

// Discount returns the discount applied.
func (c CreateOrderCommand) Discount() int64 {
	return c.discount
}

// SpecialInstructions returns the free-form customer note.
func (c CreateOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.restaurantID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	c.items = append([]OrderItemInput(nil), items...)
	return nil
}

func (c *CreateOrderCommand) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	c.street = street
	return nil
}

func (c *CreateOrderCommand) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	c.city = city
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setCharge(name string, value int64, field *int64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			name, fmt.Errorf("%d is negative", value))
	}
	*field = value
	return nil
}
