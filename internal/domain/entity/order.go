package entity

import "time"

// OrderStatusPending is the initial status of every new order. Later
// transitions happen through an out-of-band admin workflow and are not
// modelled here, so the field stays a free-form string.
const OrderStatusPending = "pending"

// Order is a persisted, immutable record of a checkout. Items are a
// snapshot of the cart at creation time, not a reference to the live cart.
// FinalAmount is always TotalAmount minus DiscountAmount.
type Order struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Items           []CartItem `json:"items"`
	TotalAmount     int        `json:"total_amount"`
	DiscountAmount  int        `json:"discount_amount"`
	FinalAmount     int        `json:"final_amount"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	ShippingAddress string     `json:"shipping_address"`
	DiscountCode    string     `json:"discount_code,omitempty"`
}
