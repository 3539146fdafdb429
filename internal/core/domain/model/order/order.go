package order

import (
	"errors"
	"time"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/pkg/errs"
	"delivr/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the delivery workflow. It owns the lifecycle
// status, the exclusive delivery partner assignment, the immutable line item
// snapshots and the monetary totals.
//
// Invariants:
//   - the status only moves along the transition table
//   - deliveryPartnerID is nil until a partner claims the order, and a
//     committed claim is exclusive
//   - totals satisfy grandTotal = subtotal + deliveryFee + taxes - discount
//   - deliveredAt is stamped exactly once, when the order reaches delivered
type Order struct {
	id                  kernel.UUID
	reference           Reference
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	deliveryPartnerID   *kernel.UUID
	items               []Item
	address             Address
	totals              Totals
	paymentMethod       PaymentMethod
	paymentStatus       PaymentStatus
	status              Status
	specialInstructions string
	deliveredAt         *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order at checkout. Payment is mocked and settles
// immediately, so the order starts confirmed with a completed payment and a
// freshly generated reference, sitting in the claimable pool.
//
// At least one item is required; the subtotal inside totals must match the sum
// of the item line totals.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	items []Item,
	address Address,
	totals Totals,
	paymentMethod PaymentMethod,
	specialInstructions string,
) (*Order, error) {
	order := &Order{
		reference:           NewReference(),
		status:              StatusConfirmed,
		paymentStatus:       PaymentStatusCompleted,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setItems(items),
		order.setAddress(address),
		order.setTotals(totals),
		order.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order aggregate from persistence. Unlike
// NewOrder it accepts any lifecycle state, an already assigned partner and a
// stamped delivery time.
func RestoreOrder(
	id kernel.UUID,
	reference Reference,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryPartnerID *kernel.UUID,
	items []Item,
	address Address,
	totals Totals,
	paymentMethod PaymentMethod,
	paymentStatus PaymentStatus,
	status Status,
	specialInstructions string,
	deliveredAt *time.Time,
) (*Order, error) {
	order := &Order{
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setReference(reference),
		order.setCustomerID(customerID),
		order.setRestaurantID(restaurantID),
		order.setDeliveryPartnerID(deliveryPartnerID),
		order.setItems(items),
		order.setAddress(address),
		order.setTotals(totals),
		order.setPaymentMethod(paymentMethod),
		order.setPaymentStatus(paymentStatus),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if deliveredAt != nil {
		t := *deliveredAt
		order.deliveredAt = &t
	}

	return order, nil
}

// Validate ensures the order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Reference returns the customer-facing order reference.
func (o *Order) Reference() Reference {
	return o.reference
}

// CustomerID returns the ordering customer's user id.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed with.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DeliveryPartner returns the assigned partner's id, or nil while the order
// is unclaimed.
func (o *Order) DeliveryPartner() *kernel.UUID {
	return o.deliveryPartnerID
}

// Items returns a copy of the snapshotted line items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Address returns the delivery destination.
func (o *Order) Address() Address {
	return o.address
}

// Totals returns the monetary breakdown.
func (o *Order) Totals() Totals {
	return o.totals
}

// PaymentMethod returns the payment instrument chosen at checkout.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the settlement state of the payment.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// SpecialInstructions returns the free-form note left by the customer.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// DeliveredAt returns the delivery timestamp, or nil before delivery.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	t := *o.deliveredAt
	return &t
}

// Claim assigns the order to a delivery partner and moves it to preparing.
//
// Business rules:
//   - the order must still be unclaimed; a second claim fails with
//     ErrObjectAlreadyAssigned no matter who holds it
//   - only a confirmed order is claimable
//
// The in-memory check mirrors the conditional UPDATE the repository issues;
// under concurrency the database decides the winner and losers surface the
// same already-assigned error.
func (o *Order) Claim(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if o.deliveryPartnerID != nil {
		return errs.NewObjectAlreadyAssignedError("order", o.id.String())
	}

	newStatus, err := o.status.TransitionTo(StatusPreparing)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveryPartnerID = &partnerID
	return nil
}

// AdvanceTo moves the order to the next lifecycle status, enforcing the
// transition table. Reaching delivered stamps deliveredAt; it is never
// restamped because delivered is terminal.
func (o *Order) AdvanceTo(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == StatusDelivered {
		now := time.Now().UTC()
		o.deliveredAt = &now
	}
	return nil
}

// Cancel moves the order to cancelled and releases the partner assignment.
// It returns the previously assigned partner id, if any, so the caller can
// free that partner for new deliveries.
func (o *Order) Cancel() (*kernel.UUID, error) {
	newStatus, err := o.status.TransitionTo(StatusCancelled)
	if err != nil {
		return nil, err
	}

	previous := o.deliveryPartnerID
	o.status = newStatus
	o.deliveryPartnerID = nil
	return previous, nil
}

// Reassign hands the order over to a different delivery partner without
// touching the lifecycle status. Only an admin path uses this; the order must
// already be claimed and not yet terminal. It returns the replaced partner id.
func (o *Order) Reassign(partnerID kernel.UUID) (*kernel.UUID, error) {
	if err := partnerID.Validate(); err != nil {
		return nil, err
	}

	if o.status.IsTerminal() {
		return nil, &InvalidTransitionError{From: o.status, To: o.status}
	}
	if o.deliveryPartnerID == nil {
		return nil, errs.NewObjectNotFoundError("deliveryPartnerID", o.id.String())
	}

	previous := o.deliveryPartnerID
	o.deliveryPartnerID = &partnerID
	return previous, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setReference(reference Reference) error {
	if err := reference.Validate(); err != nil {
		return err
	}
	o.reference = reference
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDeliveryPartnerID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}
	partnerID := *id
	o.deliveryPartnerID = &partnerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setTotals(totals Totals) error {
	if err := totals.Validate(); err != nil {
		return err
	}

	var lineSum int64
	for _, item := range o.items {
		lineSum += item.LineTotal()
	}
	if totals.Subtotal() != lineSum {
		return errs.NewValueIsOutOfRangeError("subtotal", totals.Subtotal(), lineSum, lineSum)
	}

	o.totals = totals
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPaymentStatus(status PaymentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
