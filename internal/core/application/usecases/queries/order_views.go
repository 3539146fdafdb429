package queries

import (
	"time"

	"gorm.io/gorm"
)

// OrderItemView is one snapshotted line of an order as returned to clients.
type OrderItemView struct {
	MenuItemID     string   `gorm:"column:menu_item_id" json:"menuItemId"`
	Name           string   `gorm:"column:name"         json:"name"`
	Quantity       int      `gorm:"column:quantity"     json:"quantity"`
	UnitPrice      int64    `gorm:"column:unit_price"   json:"unitPrice"`
	Customizations []string `gorm:"serializer:json;column:customizations" json:"customizations,omitempty"`
}

// OrderView is the flat read model of an order. Monetary fields are whole
// currency units; GrandTotal is computed in SQL from the stored components.
type OrderView struct {
	ID                  string          `gorm:"column:id"                  json:"id"`
	Reference           string          `gorm:"column:reference"           json:"reference"`
	CustomerID          string          `gorm:"column:customer_id"         json:"customerId"`
	RestaurantID        string          `gorm:"column:restaurant_id"       json:"restaurantId"`
	DeliveryPartnerID   *string         `gorm:"column:delivery_partner_id" json:"deliveryPartnerId"`
	Status              string          `gorm:"column:status"              json:"status"`
	PaymentMethod       string          `gorm:"column:payment_method"      json:"paymentMethod"`
	PaymentStatus       string          `gorm:"column:payment_status"      json:"paymentStatus"`
	Street              string          `gorm:"column:street"              json:"street"`
	Area                string          `gorm:"column:area"                json:"area,omitempty"`
	City                string          `gorm:"column:city"                json:"city"`
	Pincode             string          `gorm:"column:pincode"             json:"pincode,omitempty"`
	Subtotal            int64           `gorm:"column:subtotal"            json:"subtotal"`
	DeliveryFee         int64           `gorm:"column:delivery_fee"        json:"deliveryFee"`
	Taxes               int64           `gorm:"column:taxes"               json:"taxes"`
	Discount            int64           `gorm:"column:discount"            json:"discount"`
	GrandTotal          int64           `gorm:"column:grand_total"         json:"grandTotal"`
	SpecialInstructions string          `gorm:"column:special_instructions" json:"specialInstructions,omitempty"`
	DeliveredAt         *time.Time      `gorm:"column:delivered_at"        json:"deliveredAt"`
	CreatedAt           time.Time       `gorm:"column:created_at"          json:"createdAt"`
	Items               []OrderItemView `gorm:"-"                          json:"items,omitempty"`
}

// orderColumns is the shared SELECT list for order views.
const orderColumns = `
	id, reference, customer_id, restaurant_id, delivery_partner_id,
	status, payment_method, payment_status,
	street, area, city, pincode,
	subtotal, delivery_fee, taxes, discount,
	subtotal + delivery_fee + taxes - discount AS grand_total,
	special_instructions, delivered_at, created_at`

// loadItems attaches the line items of the given order to the view.
func loadItems(db *gorm.DB, view *OrderView) error {
	items := make([]OrderItemView, 0)
	err := db.Raw(`
		SELECT menu_item_id, name, quantity, unit_price, customizations
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, view.ID).Scan(&items).Error
	if err != nil {
		return err
	}

	view.Items = items
	return nil
}
