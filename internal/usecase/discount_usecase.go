package usecase

import (
	"context"

	"medstore/internal/domain/entity"
)

// ValidateDiscountInput carries the code and the order amount to quote
// a discount against.
type ValidateDiscountInput struct {
	Code   string `json:"code" validate:"required"`
	Amount int    `json:"amount" validate:"gte=0"`
}

// CreateDiscountInput defines the data required to create a discount code.
type CreateDiscountInput struct {
	Code        string `json:"code" validate:"required"`
	Percentage  int    `json:"percentage" validate:"required,gt=0,lte=100"`
	MinAmount   int    `json:"min_amount" validate:"gte=0"`
	Description string `json:"description"`
	ValidUntil  string `json:"valid_until"`
	Active      *bool  `json:"active"`
}

// DiscountQuote is the result of validating a code against an order amount.
type DiscountQuote struct {
	Valid              bool   `json:"valid"`
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discount_percentage"`
	DiscountAmount     int    `json:"discount_amount"`
	FinalAmount        int    `json:"final_amount"`
	Description        string `json:"description"`
}

// DiscountUsecase defines the interface for discount code operations.
type DiscountUsecase interface {
	// Validate checks a code against an order amount and returns the
	// computed discount. Unknown, inactive and expired codes fail with a
	// not-found style error; orders below the code's minimum fail with
	// an error naming the minimum.
	Validate(ctx context.Context, input *ValidateDiscountInput) (*DiscountQuote, error)

	// ListActive returns every active, unexpired code.
	ListActive(ctx context.Context) ([]*entity.DiscountCode, error)

	// Create registers a new discount code. Admin only; the delivery
	// layer enforces the role.
	Create(ctx context.Context, input *CreateDiscountInput) (*entity.DiscountCode, error)
}
