package handler

import (
	"net/http"

	"medstore/internal/delivery/http/response"
	"medstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler holds dependencies for article and service-page handlers.
type ContentHandler struct {
	uc usecase.ContentUsecase
}

// NewContentHandler is the constructor for ContentHandler, injected by Fx.
func NewContentHandler(uc usecase.ContentUsecase) *ContentHandler {
	return &ContentHandler{uc: uc}
}

// ListArticles handles the article listing request.
func (h *ContentHandler) ListArticles(c echo.Context) error {
	articles, err := h.uc.ListArticles(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, articles, "")
}

// GetArticle handles the single article request.
func (h *ContentHandler) GetArticle(c echo.Context) error {
	article, err := h.uc.GetArticle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, article, "")
}

// CreateArticle handles the admin article creation request.
func (h *ContentHandler) CreateArticle(c echo.Context) error {
	var input *usecase.CreateArticleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid article input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	article, err := h.uc.CreateArticle(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, article, "Article published successfully")
}

// ListServices handles the services page request.
func (h *ContentHandler) ListServices(c echo.Context) error {
	services, err := h.uc.ListServices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, services, "")
}
