package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "medstore/internal/delivery/context"
	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/domain/repository"
	"medstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo       repository.OrderRepository
	productRepo     repository.ProductRepository
	cartRepo        repository.CartRepository
	discountUsecase usecase.DiscountUsecase
	now             func() time.Time
	logger          *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo       repository.OrderRepository
	ProductRepo     repository.ProductRepository
	CartRepo        repository.CartRepository
	DiscountUsecase usecase.DiscountUsecase
	Logger          *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:       params.OrderRepo,
		productRepo:     params.ProductRepo,
		cartRepo:        params.CartRepo,
		discountUsecase: params.DiscountUsecase,
		now:             time.Now,
		logger:          params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices the requested items from the catalog, applies the
// discount code when one is given, persists the order and clears the cart.
func (srv *orderService) CreateOrder(ctx context.Context, userID string, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrOrderEmpty
	}

	srv.log(ctx).Info("Starting order placement", slog.String("userID", userID), slog.Int("lines", len(input.Items)))

	items, total, err := srv.priceItems(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	discountAmount := 0
	if input.DiscountCode != "" {
		quote, err := srv.discountUsecase.Validate(ctx, &usecase.ValidateDiscountInput{
			Code:   input.DiscountCode,
			Amount: total,
		})
		if err != nil {
			srv.log(ctx).Warn("Rejected order with invalid discount code", slog.String("userID", userID), slog.String("code", input.DiscountCode), slog.Any("error", err))

			return nil, err
		}
		discountAmount = quote.DiscountAmount
	}

	order := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		DiscountAmount:  discountAmount,
		FinalAmount:     total - discountAmount,
		Status:          entity.OrderStatusPending,
		CreatedAt:       srv.now(),
		ShippingAddress: input.ShippingAddress,
		DiscountCode:    input.DiscountCode,
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		srv.log(ctx).Error("Failed to create order", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create order")
	}

	// Best effort: the order is already placed, a stale cart is only a
	// cosmetic leftover.
	if err := srv.cartRepo.Clear(ctx, userID); err != nil {
		srv.log(ctx).Warn("Failed to clear cart after order placement", slog.String("userID", userID), slog.String("orderID", order.ID), slog.Any("error", err))
	}

	srv.log(ctx).Info("Order placed", slog.String("orderID", order.ID), slog.String("userID", userID), slog.Int("finalAmount", order.FinalAmount))

	return order, nil
}

// priceItems snapshots each requested product line at its current catalog
// price and returns the lines together with the order total.
func (srv *orderService) priceItems(ctx context.Context, lines []usecase.OrderItemInput) ([]entity.CartItem, int, error) {
	items := make([]entity.CartItem, 0, len(lines))
	total := 0

	for _, line := range lines {
		product, err := srv.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				srv.log(ctx).Warn("Rejected order with unknown product", slog.String("productID", line.ProductID))

				return nil, 0, domainerrors.ErrProductNotFound
			}
			srv.log(ctx).Error("Failed to load product for order", slog.String("productID", line.ProductID), slog.Any("error", err))

			return nil, 0, errors.Wrap(err, "failed to load product for order")
		}

		items = append(items, entity.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  line.Quantity,
			Image:     product.Image,
		})
		total += product.Price * line.Quantity
	}

	return items, total, nil
}

// ListOrders returns the user's orders, newest first.
func (srv *orderService) ListOrders(ctx context.Context, userID string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list orders", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListAllOrders returns every order in the store, newest first.
func (srv *orderService) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list all orders", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list all orders")
	}

	return orders, nil
}
