package handler

import (
	"net/http"

	"medstore/internal/delivery/http/response"
	"medstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DiscountHandler holds dependencies for discount code handlers.
type DiscountHandler struct {
	uc usecase.DiscountUsecase
}

// NewDiscountHandler is the constructor for DiscountHandler, injected by Fx.
func NewDiscountHandler(uc usecase.DiscountUsecase) *DiscountHandler {
	return &DiscountHandler{uc: uc}
}

// ListActive handles the active discount code listing request.
func (h *DiscountHandler) ListActive(c echo.Context) error {
	codes, err := h.uc.ListActive(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, codes, "")
}

// Validate handles the discount code validation request.
func (h *DiscountHandler) Validate(c echo.Context) error {
	var input *usecase.ValidateDiscountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount validation input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	quote, err := h.uc.Validate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// Create handles the admin discount code creation request.
func (h *DiscountHandler) Create(c echo.Context) error {
	var input *usecase.CreateDiscountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid discount code input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	code, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, code, "Discount code created successfully")
}
