// Package orderrepo implements order persistence: mapping between the order
// aggregate and its relational representation, including the line item child
// table and the conditional claim UPDATE.
package orderrepo

import (
	"time"

	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row backing an order aggregate. Status and payment
// fields are stored as their wire strings so the read-side SQL stays legible.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Reference           string     `gorm:"uniqueIndex;not null"`
	CustomerID          uuid.UUID  `gorm:"type:uuid;index;not null"`
	RestaurantID        uuid.UUID  `gorm:"type:uuid;index;not null"`
	DeliveryPartnerID   *uuid.UUID `gorm:"type:uuid;index"`
	Status              string     `gorm:"index;not null"`
	PaymentMethod       string     `gorm:"not null"`
	PaymentStatus       string     `gorm:"not null"`
	Street              string     `gorm:"not null"`
	Area                string
	City                string `gorm:"not null"`
	Pincode             string
	Subtotal            int64 `gorm:"not null"`
	DeliveryFee         int64 `gorm:"not null"`
	Taxes               int64 `gorm:"not null"`
	Discount            int64 `gorm:"not null"`
	SpecialInstructions string
	DeliveredAt         *time.Time
	Items               []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one snapshotted line of an order. Rows are immutable once
// written; only the parent order row ever changes.
type OrderItemDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;not null"`
	MenuItemID     uuid.UUID `gorm:"type:uuid;not null"`
	Name           string    `gorm:"not null"`
	Quantity       int       `gorm:"not null"`
	UnitPrice      int64     `gorm:"not null"`
	Customizations []string  `gorm:"serializer:json"`
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var partnerID *uuid.UUID
	if id := aggregate.DeliveryPartner(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:        aggregate.ID().Bytes(),
			MenuItemID:     item.MenuItemID().Bytes(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPrice:      item.UnitPrice(),
			Customizations: item.Customizations(),
		})
	}

	totals := aggregate.Totals()
	address := aggregate.Address()

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		Reference:           aggregate.Reference().String(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		DeliveryPartnerID:   partnerID,
		Status:              aggregate.Status().String(),
		PaymentMethod:       string(aggregate.PaymentMethod()),
		PaymentStatus:       string(aggregate.PaymentStatus()),
		Street:              address.Street(),
		Area:                address.Area(),
		City:                address.City(),
		Pincode:             address.Pincode(),
		Subtotal:            totals.Subtotal(),
		DeliveryFee:         totals.DeliveryFee(),
		Taxes:               totals.Taxes(),
		Discount:            totals.Discount(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		DeliveredAt:         aggregate.DeliveredAt(),
		Items:               itemDTOs,
	}
}

// toDomain converts a database row (with preloaded items) back into the
// aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.DeliveryPartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.DeliveryPartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	reference, err := order.ParseReference(dto.Reference)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(dto.Street, dto.Area, dto.City, dto.Pincode)
	if err != nil {
		return nil, err
	}

	totals, err := order.NewTotals(dto.Subtotal, dto.DeliveryFee, dto.Taxes, dto.Discount)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(
			menuItemID, itemDTO.Name, itemDTO.Quantity, itemDTO.UnitPrice, itemDTO.Customizations)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, reference, customerID, restaurantID, partnerID,
		items, address, totals,
		method, order.PaymentStatus(dto.PaymentStatus), status,
		dto.SpecialInstructions, dto.DeliveredAt)
}
