package impl

import (
	"context"
	"log/slog"

	deliverycontext "medstore/internal/delivery/context"
	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultProductPage  = 1
	defaultProductLimit = 10
	maxProductLimit     = 100
	defaultProductStock = 100
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProducts returns a filtered, sorted, paginated catalog slice.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	filter := repository.ProductFilter{
		Category: input.Category,
		Search:   input.Search,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
		SortBy:   input.SortBy,
		Page:     input.Page,
		Limit:    input.Limit,
	}
	if filter.Page < 1 {
		filter.Page = defaultProductPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultProductLimit
	}
	if filter.Limit > maxProductLimit {
		filter.Limit = maxProductLimit
	}

	products, total, err := srv.productRepo.Find(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	limit := int64(filter.Limit)

	return &usecase.ProductPage{
		Products:   products,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// Categories returns the distinct category values.
func (srv *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := srv.productRepo.Categories(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Discounted returns products carrying a per-product discount.
func (srv *catalogService) Discounted(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindDiscounted(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list discounted products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list discounted products")
	}

	return products, nil
}

// Featured returns featured products.
func (srv *catalogService) Featured(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindFeatured(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list featured products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

// GetProduct returns one product by id.
func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to load product", slog.String("productID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// CreateProduct adds a product to the catalog.
func (srv *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	stock := defaultProductStock
	if input.Stock != nil {
		stock = *input.Stock
	}

	product := &entity.Product{
		ID:                 uuid.New().String(),
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		Image:              input.Image,
		Category:           input.Category,
		Stock:              stock,
		Featured:           input.Featured,
		DiscountPercentage: input.DiscountPercentage,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID), slog.String("name", product.Name))

	return product, nil
}
