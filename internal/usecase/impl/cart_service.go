package impl

import (
	"context"
	"log/slog"

	deliverycontext "medstore/internal/delivery/context"
	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart, or an empty cart when none exists.
func (srv *cartService) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load cart", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart == nil {
		return entity.EmptyCart(userID), nil
	}

	return cart, nil
}

// AddItem adds a catalog product to the user's cart. The line snapshot is
// priced from the catalog, never from the client.
func (srv *cartService) AddItem(ctx context.Context, userID string, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			srv.log(ctx).Warn("Rejected cart add for unknown product", slog.String("productID", input.ProductID))

			return nil, domainerrors.ErrProductNotFound
		}
		srv.log(ctx).Error("Failed to load product for cart add", slog.String("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load product for cart add")
	}

	item := entity.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  input.Quantity,
		Image:     product.Image,
	}

	if err := srv.cartRepo.AddItem(ctx, userID, item); err != nil {
		srv.log(ctx).Error("Failed to add cart item", slog.String("userID", userID), slog.String("productID", product.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	srv.log(ctx).Debug("Cart item added", slog.String("userID", userID), slog.String("productID", product.ID), slog.Int("quantity", input.Quantity))

	return srv.GetCart(ctx, userID)
}

// RemoveItem removes a product line from the cart.
func (srv *cartService) RemoveItem(ctx context.Context, userID string, productID string) (*entity.Cart, error) {
	if err := srv.cartRepo.RemoveItem(ctx, userID, productID); err != nil {
		srv.log(ctx).Error("Failed to remove cart item", slog.String("userID", userID), slog.String("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

// Clear empties the user's cart.
func (srv *cartService) Clear(ctx context.Context, userID string) error {
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		srv.log(ctx).Error("Failed to clear cart", slog.String("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
