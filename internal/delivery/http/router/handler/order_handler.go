package handler

import (
	"net/http"

	"medstore/internal/delivery/http/middleware"
	"medstore/internal/delivery/http/response"
	"medstore/internal/domain/entity"
	"medstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	uc usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create handles the order placement request. The order is always placed
// for the authenticated caller.
func (h *OrderHandler) Create(c echo.Context) error {
	userID := middleware.AuthenticatedUserID(c)
	if userID == "" {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.CreateOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// ListByUser handles the order history request. Admins may read any
// user's history; everyone else only their own.
func (h *OrderHandler) ListByUser(c echo.Context) error {
	requested := c.Param("userId")
	caller := middleware.AuthenticatedUser(c)
	if caller == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}
	if requested != caller.ID && !caller.Roles().Contains(entity.RoleAdmin) {
		return response.Forbidden(c, "FORBIDDEN", "Cannot access another user's orders")
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), requested)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// ListAll handles the admin order listing request.
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.uc.ListAllOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}
