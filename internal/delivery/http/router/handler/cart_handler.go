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

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// resolveCartOwner checks that the userId path parameter belongs to the
// authenticated caller. Admins may act on any cart.
func resolveCartOwner(c echo.Context) (string, error) {
	requested := c.Param("userId")
	caller := middleware.AuthenticatedUser(c)
	if caller == nil {
		return "", response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}
	if requested != caller.ID && !caller.Roles().Contains(entity.RoleAdmin) {
		return "", response.Forbidden(c, "FORBIDDEN", "Cannot access another user's cart")
	}

	return requested, nil
}

// Get handles the cart retrieval request.
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := resolveCartOwner(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem handles the add-to-cart request.
func (h *CartHandler) AddItem(c echo.Context) error {
	userID, err := resolveCartOwner(c)
	if err != nil {
		return err
	}

	var input *usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddItem(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}

// RemoveItem handles the remove-from-cart request.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, err := resolveCartOwner(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), userID, c.Param("productId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed from cart")
}
