package http

// orderItemRequest is one requested line of a checkout.
type orderItemRequest struct {
	MenuItemID     string   `json:"menuItemId"`
	Quantity       int      `json:"quantity"`
	Customizations []string `json:"customizations"`
}

// addressRequest is the delivery destination of a checkout.
type addressRequest struct {
	Street  string `json:"street"`
	Area    string `json:"area"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// createOrderRequest is the checkout payload. Fee, taxes and discount are
// optional; absent values fall back to the configured defaults.
type createOrderRequest struct {
	RestaurantID        string             `json:"restaurantId"`
	Items               []orderItemRequest `json:"items"`
	Address             addressRequest     `json:"address"`
	PaymentMethod       string             `json:"paymentMethod"`
	DeliveryFee         *int64             `json:"deliveryFee"`
	Taxes               *int64             `json:"taxes"`
	Discount            *int64             `json:"discount"`
	SpecialInstructions string             `json:"specialInstructions"`
}

// updateStatusRequest carries a requested lifecycle status.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// adminOrderUpdateRequest is the admin order intervention payload: a status
// change, a partner reassignment, or both.
type adminOrderUpdateRequest struct {
	Status            *string `json:"status"`
	DeliveryPartnerID *string `json:"deliveryPartnerId"`
}

// updateLocationRequest is a partner location ping.
type updateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// partnerStatusRequest is the admin partner standing payload.
type partnerStatusRequest struct {
	Status      string `json:"status"`
	IsAvailable *bool  `json:"isAvailable"`
}
