package model

import (
	"medstore/internal/domain/entity"
)

// CartItemModel is one stored cart line.
type CartItemModel struct {
	ProductID string `bson:"product_id"`
	Name      string `bson:"name"`
	Price     int    `bson:"price"`
	Quantity  int    `bson:"quantity"`
	Image     string `bson:"image,omitempty"`
}

// CartModel is the stored shape of a per-user cart document. user_id is
// unique across the collection.
type CartModel struct {
	UserID string          `bson:"user_id"`
	Items  []CartItemModel `bson:"items"`
}

// ToCartDomain maps a stored cart document to the domain entity.
func ToCartDomain(m *CartModel) *entity.Cart {
	items := make([]entity.CartItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = ToCartItemDomain(item)
	}

	return &entity.Cart{UserID: m.UserID, Items: items}
}

// ToCartItemDomain maps a stored cart line to the domain shape.
func ToCartItemDomain(m CartItemModel) entity.CartItem {
	return entity.CartItem{
		ProductID: m.ProductID,
		Name:      m.Name,
		Price:     m.Price,
		Quantity:  m.Quantity,
		Image:     m.Image,
	}
}

// FromCartItemDomain maps a domain cart line to its stored shape.
func FromCartItemDomain(item entity.CartItem) CartItemModel {
	return CartItemModel{
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price,
		Quantity:  item.Quantity,
		Image:     item.Image,
	}
}
