package usecase

import (
	"context"

	"medstore/internal/domain/entity"
)

// AddCartItemInput defines the data required to add a product to a cart.
// The line's name, price and image snapshot comes from the catalog, never
// from the client.
type AddCartItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CartUsecase defines the interface for shopping cart operations. Every
// operation is scoped to the authenticated user.
type CartUsecase interface {
	// GetCart returns the user's cart, or an empty cart when none exists.
	GetCart(ctx context.Context, userID string) (*entity.Cart, error)

	// AddItem adds a product line to the cart. Adding a product already
	// present increments its quantity instead of duplicating the line.
	AddItem(ctx context.Context, userID string, input *AddCartItemInput) (*entity.Cart, error)

	// RemoveItem removes a product line from the cart. Removing a product
	// that is not present is a no-op.
	RemoveItem(ctx context.Context, userID string, productID string) (*entity.Cart, error)

	// Clear empties the user's cart.
	Clear(ctx context.Context, userID string) error
}
