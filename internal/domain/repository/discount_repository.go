package repository

import (
	"context"

	"medstore/internal/domain/entity"
	"medstore/internal/errors"
)

// ErrDiscountNotFound is returned when no active code matches a lookup.
var ErrDiscountNotFound = errors.New("discount code not found")

// ErrDiscountCodeExists is returned when creating a code that already exists.
var ErrDiscountCodeExists = errors.New("discount code already exists")

// DiscountRepository defines the operations for the discount ledger.
type DiscountRepository interface {
	// FindActiveByCode retrieves an active code by its case-sensitive
	// value, or ErrDiscountNotFound. Inactive codes are invisible here.
	FindActiveByCode(ctx context.Context, code string) (*entity.DiscountCode, error)

	// FindActive returns every active code.
	FindActive(ctx context.Context) ([]*entity.DiscountCode, error)

	// Create persists a new code, or ErrDiscountCodeExists.
	Create(ctx context.Context, discount *entity.DiscountCode) error

	// Count returns the total number of codes, active or not.
	Count(ctx context.Context) (int64, error)
}
