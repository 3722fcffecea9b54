package usecase

import (
	"context"

	"medstore/internal/domain/entity"
)

// CreateReviewInput defines the data required to post a product review.
type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// ReviewUsecase defines the interface for product reviews.
type ReviewUsecase interface {
	// ListByProduct returns a product's reviews, newest first.
	ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error)

	// Create posts a review for a product on behalf of the given user.
	Create(ctx context.Context, productID string, user *entity.User, input *CreateReviewInput) (*entity.Review, error)
}
