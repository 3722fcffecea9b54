// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medstore/internal/delivery/http/middleware"
	"medstore/internal/delivery/http/router/handler"
	"medstore/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	ProductHandler  *handler.ProductHandler
	ContentHandler  *handler.ContentHandler
	CartHandler     *handler.CartHandler
	DiscountHandler *handler.DiscountHandler
	OrderHandler    *handler.OrderHandler
	ReviewHandler   *handler.ReviewHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate
	requireAdmin := r.params.AuthMiddleware.RequireRole(entity.RoleAdmin.String())

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.params.AccountHandler.Register)
		authGroup.POST("/login", r.params.AccountHandler.Login)
	}

	// Catalog routes. Static segments are registered before the :id
	// route so "categories" is never captured as a product id.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.GET("/categories", r.params.ProductHandler.Categories)
		productGroup.GET("/discounted", r.params.ProductHandler.Discounted)
		productGroup.GET("/featured", r.params.ProductHandler.Featured)
		productGroup.GET("/:id", r.params.ProductHandler.Get)
		productGroup.POST("", r.params.ProductHandler.Create, authenticate, requireAdmin)

		productGroup.GET("/:id/reviews", r.params.ReviewHandler.ListByProduct)
		productGroup.POST("/:id/reviews", r.params.ReviewHandler.Create, authenticate)
	}

	// Editorial content
	articleGroup := api.Group("/articles")
	{
		articleGroup.GET("", r.params.ContentHandler.ListArticles)
		articleGroup.GET("/:id", r.params.ContentHandler.GetArticle)
		articleGroup.POST("", r.params.ContentHandler.CreateArticle, authenticate, requireAdmin)
	}
	api.GET("/services", r.params.ContentHandler.ListServices)

	// Discount codes
	discountGroup := api.Group("/discounts")
	{
		discountGroup.GET("", r.params.DiscountHandler.ListActive)
		discountGroup.POST("/validate", r.params.DiscountHandler.Validate)
		discountGroup.POST("", r.params.DiscountHandler.Create, authenticate, requireAdmin)
	}

	// Cart routes, scoped to the authenticated user
	cartGroup := api.Group("/cart", authenticate)
	{
		cartGroup.GET("/:userId", r.params.CartHandler.Get)
		cartGroup.POST("/:userId/add", r.params.CartHandler.AddItem)
		cartGroup.DELETE("/:userId/remove/:productId", r.params.CartHandler.RemoveItem)
	}

	// Orders
	orderGroup := api.Group("/orders", authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.Create)
		orderGroup.GET("/:userId", r.params.OrderHandler.ListByUser)
	}
	api.GET("/admin/orders", r.params.OrderHandler.ListAll, authenticate, requireAdmin)
}
