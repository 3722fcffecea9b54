package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	httpvalidator "medstore/internal/delivery/http/validator"
	"medstore/internal/domain/entity"
	"medstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogUsecase records the last listing input and serves canned data.
type fakeCatalogUsecase struct {
	lastListInput *usecase.ListProductsInput
	page          *usecase.ProductPage
}

func (f *fakeCatalogUsecase) ListProducts(_ context.Context, input *usecase.ListProductsInput) (*usecase.ProductPage, error) {
	f.lastListInput = input

	return f.page, nil
}

func (f *fakeCatalogUsecase) Categories(context.Context) ([]string, error) {
	return []string{"medicine", "vitamins"}, nil
}

func (f *fakeCatalogUsecase) Discounted(context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeCatalogUsecase) Featured(context.Context) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeCatalogUsecase) GetProduct(context.Context, string) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeCatalogUsecase) CreateProduct(context.Context, *usecase.CreateProductInput) (*entity.Product, error) {
	return nil, nil
}

func TestProductHandler_List_ParsesQueryParameters(t *testing.T) {
	uc := &fakeCatalogUsecase{page: &usecase.ProductPage{
		Products:   []*entity.Product{{ID: "p-1", Name: "Aspirin"}},
		Total:      1,
		Page:       2,
		Limit:      5,
		TotalPages: 1,
	}}
	handler := NewProductHandler(uc)

	e := echo.New()
	e.Validator = httpvalidator.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products?category=medicine&search=asp&min_price=100&max_price=900&sort_by=price_low&page=2&limit=5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	input := uc.lastListInput
	require.NotNil(t, input)
	assert.Equal(t, "medicine", input.Category)
	assert.Equal(t, "asp", input.Search)
	require.NotNil(t, input.MinPrice)
	assert.Equal(t, 100, *input.MinPrice)
	require.NotNil(t, input.MaxPrice)
	assert.Equal(t, 900, *input.MaxPrice)
	assert.Equal(t, "price_low", input.SortBy)
	assert.Equal(t, 2, input.Page)
	assert.Equal(t, 5, input.Limit)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Total      int64 `json:"total"`
			TotalPages int64 `json:"total_pages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(1), body.Data.Total)
}

func TestProductHandler_List_IgnoresMalformedNumericParams(t *testing.T) {
	uc := &fakeCatalogUsecase{page: &usecase.ProductPage{}}
	handler := NewProductHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products?min_price=abc&page=x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Nil(t, uc.lastListInput.MinPrice)
	assert.Equal(t, 0, uc.lastListInput.Page)
}
