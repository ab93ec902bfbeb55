// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"vuttr/internal/delivery/http/middleware"
	"vuttr/internal/delivery/http/router/handler"
	"vuttr/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ToolHandler    *handler.ToolHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    echo.MiddlewareFunc `name:"authRateLimiter"`
	Metrics        *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	toolHandler    *handler.ToolHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    echo.MiddlewareFunc
	metrics        *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		toolHandler:    params.ToolHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
		metrics:        params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	users := api.Group("/users")
	{
		users.POST("/register", r.userHandler.Register)
		users.POST("/authenticate", r.userHandler.Authenticate, r.rateLimiter)
	}

	tools := api.Group("/tools")
	tools.Use(r.authMiddleware.Authenticate)
	{
		tools.GET("", r.toolHandler.List)
		tools.POST("", r.toolHandler.Create)
		tools.GET("/:id", r.toolHandler.Get)
		tools.PUT("/:id", r.toolHandler.Update)
		tools.DELETE("/:id", r.toolHandler.Delete)
	}
}
