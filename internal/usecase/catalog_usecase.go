package usecase

import (
	"context"

	"medstore/internal/domain/entity"
)

// ListProductsInput narrows and orders a catalog listing. Page and Limit
// are normalized to sensible defaults by the implementation.
type ListProductsInput struct {
	Category string
	Search   string
	MinPrice *int
	MaxPrice *int
	SortBy   string
	Page     int
	Limit    int
}

// ProductPage is one page of catalog results.
type ProductPage struct {
	Products   []*entity.Product `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int64             `json:"total_pages"`
}

// CreateProductInput defines the data required to add a catalog product.
type CreateProductInput struct {
	Name               string `json:"name" validate:"required"`
	Description        string `json:"description"`
	Price              int    `json:"price" validate:"gte=0"`
	Image              string `json:"image"`
	Category           string `json:"category" validate:"required"`
	Stock              *int   `json:"stock" validate:"omitempty,gte=0"`
	Featured           bool   `json:"featured"`
	DiscountPercentage int    `json:"discount_percentage" validate:"gte=0,lte=100"`
}

// CatalogUsecase defines the interface for product catalog operations.
type CatalogUsecase interface {
	// ListProducts returns a filtered, sorted, paginated catalog slice.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductPage, error)

	// Categories returns the distinct category values.
	Categories(ctx context.Context) ([]string, error)

	// Discounted returns products carrying a per-product discount.
	Discounted(ctx context.Context) ([]*entity.Product, error)

	// Featured returns featured products.
	Featured(ctx context.Context) ([]*entity.Product, error)

	// GetProduct returns one product or a not-found error.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// CreateProduct adds a product to the catalog. Admin only; the
	// delivery layer enforces the role.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
}
