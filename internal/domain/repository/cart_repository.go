package repository

import (
	"context"

	"medstore/internal/domain/entity"
)

// CartRepository defines the operations for cart persistence.
//
// AddItem and RemoveItem are atomic against concurrent writers for the
// same user: each call is a single conditional update on the stored cart
// document, never a read-modify-write of the whole item list.
type CartRepository interface {
	// FindByUser returns the user's cart, or nil when the user has none.
	FindByUser(ctx context.Context, userID string) (*entity.Cart, error)

	// AddItem increments the quantity of an existing line for the product,
	// or appends a new line, creating the cart when absent.
	AddItem(ctx context.Context, userID string, item entity.CartItem) error

	// RemoveItem drops the line for the product. Removing from a missing
	// cart, or a product not in it, is a no-op.
	RemoveItem(ctx context.Context, userID, productID string) error

	// Clear deletes the user's cart entirely.
	Clear(ctx context.Context, userID string) error
}
