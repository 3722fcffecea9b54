package repository

import (
	"context"

	"medstore/internal/domain/entity"
)

// OrderRepository defines the operations for order persistence. Orders are
// immutable once written; there is deliberately no update operation.
type OrderRepository interface {
	// Create persists a new order snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByUser returns all orders placed by one user.
	FindByUser(ctx context.Context, userID string) ([]*entity.Order, error)

	// FindAll returns every order in the store.
	FindAll(ctx context.Context) ([]*entity.Order, error)
}
