package repository

import (
	"context"

	"medstore/internal/domain/entity"
	"medstore/internal/errors"
)

// ErrProductNotFound is returned when a product id matches nothing in the catalog.
var ErrProductNotFound = errors.New("product not found")

// Product sort keys accepted by ProductFilter.SortBy. Anything else falls
// back to sorting by name.
const (
	ProductSortName      = "name"
	ProductSortPriceLow  = "price_low"
	ProductSortPriceHigh = "price_high"
	ProductSortNewest    = "newest"
)

// ProductFilter narrows and orders a catalog listing. Zero values mean
// "no constraint"; Page and Limit are always positive.
type ProductFilter struct {
	Category string
	Search   string // Case-insensitive match against name and description.
	MinPrice *int
	MaxPrice *int
	SortBy   string
	Page     int
	Limit    int
}

// ProductRepository defines the operations for catalog persistence.
type ProductRepository interface {
	// FindByID retrieves a single product, or ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// Find returns the page of products selected by the filter together
	// with the total number of matches before pagination.
	Find(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// Categories returns the distinct category values in the catalog.
	Categories(ctx context.Context) ([]string, error)

	// FindDiscounted returns products carrying a per-product discount percentage.
	FindDiscounted(ctx context.Context) ([]*entity.Product, error)

	// FindFeatured returns products flagged as featured.
	FindFeatured(ctx context.Context) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Count returns the total number of products in the catalog.
	Count(ctx context.Context) (int64, error)
}
