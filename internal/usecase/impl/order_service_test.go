package impl

import (
	"context"
	"testing"

	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderServiceFixture struct {
	service     usecase.OrderUsecase
	orderRepo   *fakeOrderRepo
	cartRepo    *fakeCartRepo
	productRepo *fakeProductRepo
}

func newOrderServiceFixture(products []*entity.Product, codes ...*entity.DiscountCode) *orderServiceFixture {
	orderRepo := newFakeOrderRepo()
	cartRepo := newFakeCartRepo()
	productRepo := newFakeProductRepo(products...)

	service := NewOrderService(OrderServiceParams{
		OrderRepo:       orderRepo,
		ProductRepo:     productRepo,
		CartRepo:        cartRepo,
		DiscountUsecase: newDiscountServiceForTest(newFakeDiscountRepo(codes...)),
		Logger:          discardLogger(),
	})

	return &orderServiceFixture{
		service:     service,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func testOrderProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "p-1", Name: "Aspirin", Price: 50000, Image: "aspirin.jpg", Category: "medicine"},
		{ID: "p-2", Name: "Vitamin C", Price: 25000, Category: "vitamins"},
	}
}

func TestOrderService_CreateOrder_PricesFromCatalog(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts())

	order, err := fixture.service.CreateOrder(context.Background(), "u-1", &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: "p-1", Quantity: 2},
			{ProductID: "p-2", Quantity: 1},
		},
		ShippingAddress: "42 Harbor St",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "u-1", order.UserID)
	assert.Equal(t, 125000, order.TotalAmount)
	assert.Equal(t, 0, order.DiscountAmount)
	assert.Equal(t, 125000, order.FinalAmount)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.False(t, order.CreatedAt.IsZero())

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Aspirin", order.Items[0].Name)
	assert.Equal(t, 50000, order.Items[0].Price)
}

func TestOrderService_CreateOrder_AppliesDiscount(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts(), newUserWelcomeCode())

	order, err := fixture.service.CreateOrder(context.Background(), "u-1", &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: "p-1", Quantity: 3},
		},
		ShippingAddress: "42 Harbor St",
		DiscountCode:    "NEWUSER20",
	})
	require.NoError(t, err)
	assert.Equal(t, 150000, order.TotalAmount)
	assert.Equal(t, 30000, order.DiscountAmount)
	assert.Equal(t, 120000, order.FinalAmount)
	assert.Equal(t, "NEWUSER20", order.DiscountCode)
}

func TestOrderService_CreateOrder_RejectsDiscountBelowMinimum(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts(), newUserWelcomeCode())

	_, err := fixture.service.CreateOrder(context.Background(), "u-1", &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: "p-2", Quantity: 1},
		},
		ShippingAddress: "42 Harbor St",
		DiscountCode:    "NEWUSER20",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DISCOUNT_BELOW_MINIMUM", appErr.ErrorCode())
	assert.Empty(t, fixture.orderRepo.orders)
}

func TestOrderService_CreateOrder_RejectsInvalidDiscount(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts())

	_, err := fixture.service.CreateOrder(context.Background(), "u-1", &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: "p-1", Quantity: 3},
		},
		ShippingAddress: "42 Harbor St",
		DiscountCode:    "GHOST",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDiscountInvalid))
}

func TestOrderService_CreateOrder_ClearsCart(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts())
	require.NoError(t, fixture.cartRepo.AddItem(context.Background(), "u-1", entity.CartItem{
		ProductID: "p-1", Name: "Aspirin", Price: 50000, Quantity: 2,
	}))

	_, err := fixture.service.CreateOrder(context.Background(), "u-1", &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: "p-1", Quantity: 2},
		},
		ShippingAddress: "42 Harbor St",
	})
	require.NoError(t, err)

	cart, err := fixture.cartRepo.FindByUser(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestOrderService_CreateOrder_CartClearFailureStillSucceeds(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts())
	fixture.cartRepo.clearErr = errors.New("connection reset")

	order, err := fixture.service.CreateOrder(context.Background(), "u-1", &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: "p-1", Quantity: 1},
		},
		ShippingAddress: "42 Harbor St",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Len(t, fixture.orderRepo.orders, 1)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts())

	_, err := fixture.service.CreateOrder(context.Background(), "u-1", &usecase.CreateOrderInput{
		ShippingAddress: "42 Harbor St",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderEmpty))
}

func TestOrderService_CreateOrder_UnknownProduct(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts())

	_, err := fixture.service.CreateOrder(context.Background(), "u-1", &usecase.CreateOrderInput{
		Items: []usecase.OrderItemInput{
			{ProductID: "ghost", Quantity: 1},
		},
		ShippingAddress: "42 Harbor St",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestOrderService_ListOrders_ScopedToUser(t *testing.T) {
	fixture := newOrderServiceFixture(testOrderProducts())

	for _, userID := range []string{"u-1", "u-2", "u-1"} {
		_, err := fixture.service.CreateOrder(context.Background(), userID, &usecase.CreateOrderInput{
			Items: []usecase.OrderItemInput{
				{ProductID: "p-2", Quantity: 1},
			},
			ShippingAddress: "42 Harbor St",
		})
		require.NoError(t, err)
	}

	mine, err := fixture.service.ListOrders(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	all, err := fixture.service.ListAllOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
