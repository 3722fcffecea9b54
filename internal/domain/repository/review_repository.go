package repository

import (
	"context"

	"medstore/internal/domain/entity"
)

// ReviewRepository defines the operations for review persistence.
type ReviewRepository interface {
	// FindByProduct returns a product's reviews, newest first.
	FindByProduct(ctx context.Context, productID string) ([]*entity.Review, error)

	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error
}
