package usecase

import (
	"context"

	"medstore/internal/domain/entity"
)

// OrderItemInput is one product line of an order request.
type OrderItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderInput defines the data required to place an order. Prices
// are never taken from the client; the order engine reprices every line
// from the catalog.
type CreateOrderInput struct {
	Items           []OrderItemInput `json:"items" validate:"required,min=1,dive"`
	ShippingAddress string           `json:"shipping_address" validate:"required"`
	DiscountCode    string           `json:"discount_code"`
}

// OrderUsecase defines the interface for order placement and history.
type OrderUsecase interface {
	// CreateOrder prices the requested items from the catalog, applies
	// the discount code when one is given, persists the order as pending
	// and clears the user's cart.
	CreateOrder(ctx context.Context, userID string, input *CreateOrderInput) (*entity.Order, error)

	// ListOrders returns the user's orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]*entity.Order, error)

	// ListAllOrders returns every order, newest first. Admin only; the
	// delivery layer enforces the role.
	ListAllOrders(ctx context.Context) ([]*entity.Order, error)
}
