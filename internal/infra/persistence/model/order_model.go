package model

import (
	"time"

	"medstore/internal/domain/entity"
)

// OrderModel is the stored shape of an order document. Items are the
// snapshot taken at checkout.
type OrderModel struct {
	ID              string          `bson:"id"`
	UserID          string          `bson:"user_id"`
	Items           []CartItemModel `bson:"items"`
	TotalAmount     int             `bson:"total_amount"`
	DiscountAmount  int             `bson:"discount_amount"`
	FinalAmount     int             `bson:"final_amount"`
	Status          string          `bson:"status"`
	CreatedAt       time.Time       `bson:"created_at"`
	ShippingAddress string          `bson:"shipping_address"`
	DiscountCode    string          `bson:"discount_code,omitempty"`
}

// ToOrderDomain maps a stored order document to the domain entity.
func ToOrderDomain(m *OrderModel) *entity.Order {
	items := make([]entity.CartItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = ToCartItemDomain(item)
	}

	return &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		Items:           items,
		TotalAmount:     m.TotalAmount,
		DiscountAmount:  m.DiscountAmount,
		FinalAmount:     m.FinalAmount,
		Status:          m.Status,
		CreatedAt:       m.CreatedAt,
		ShippingAddress: m.ShippingAddress,
		DiscountCode:    m.DiscountCode,
	}
}

// FromOrderDomain maps a domain order to its stored document shape.
func FromOrderDomain(o *entity.Order) *OrderModel {
	items := make([]CartItemModel, len(o.Items))
	for i, item := range o.Items {
		items[i] = FromCartItemDomain(item)
	}

	return &OrderModel{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		TotalAmount:     o.TotalAmount,
		DiscountAmount:  o.DiscountAmount,
		FinalAmount:     o.FinalAmount,
		Status:          o.Status,
		CreatedAt:       o.CreatedAt,
		ShippingAddress: o.ShippingAddress,
		DiscountCode:    o.DiscountCode,
	}
}
