package impl

import (
	"context"
	"fmt"
	"testing"

	"medstore/internal/domain/entity"
	domainerrors "medstore/internal/domain/errors"
	"medstore/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServiceForTest(productRepo *fakeProductRepo) usecase.CatalogUsecase {
	return NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Logger:      discardLogger(),
	})
}

func TestCatalogService_ListProducts_Pagination(t *testing.T) {
	products := make([]*entity.Product, 0, 25)
	for i := 0; i < 25; i++ {
		products = append(products, &entity.Product{
			ID:       fmt.Sprintf("p-%d", i),
			Name:     fmt.Sprintf("Product %d", i),
			Price:    100,
			Category: "vitamins",
		})
	}
	service := newCatalogServiceForTest(newFakeProductRepo(products...))

	page, err := service.ListProducts(context.Background(), &usecase.ListProductsInput{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), page.Total)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Len(t, page.Products, 5)
}

func TestCatalogService_ListProducts_Defaults(t *testing.T) {
	service := newCatalogServiceForTest(newFakeProductRepo(
		&entity.Product{ID: "p-1", Name: "Aspirin", Price: 500, Category: "medicine"},
	))

	page, err := service.ListProducts(context.Background(), &usecase.ListProductsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.Limit)
	assert.Equal(t, int64(1), page.TotalPages)
	assert.Len(t, page.Products, 1)
}

func TestCatalogService_ListProducts_CategoryFilter(t *testing.T) {
	service := newCatalogServiceForTest(newFakeProductRepo(
		&entity.Product{ID: "p-1", Name: "Aspirin", Category: "medicine"},
		&entity.Product{ID: "p-2", Name: "Vitamin C", Category: "vitamins"},
	))

	page, err := service.ListProducts(context.Background(), &usecase.ListProductsInput{Category: "vitamins"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "p-2", page.Products[0].ID)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	service := newCatalogServiceForTest(newFakeProductRepo())

	_, err := service.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_CreateProduct_DefaultStock(t *testing.T) {
	productRepo := newFakeProductRepo()
	service := newCatalogServiceForTest(productRepo)

	product, err := service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:     "Ibuprofen",
		Price:    1200,
		Category: "medicine",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, 100, product.Stock)

	stock := 7
	product, err = service.CreateProduct(context.Background(), &usecase.CreateProductInput{
		Name:     "Bandage",
		Price:    300,
		Category: "first-aid",
		Stock:    &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, product.Stock)
}

func TestCatalogService_Discounted(t *testing.T) {
	service := newCatalogServiceForTest(newFakeProductRepo(
		&entity.Product{ID: "p-1", Name: "Aspirin", Category: "medicine"},
		&entity.Product{ID: "p-2", Name: "Vitamin C", Category: "vitamins", DiscountPercentage: 15},
	))

	products, err := service.Discounted(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p-2", products[0].ID)
}
