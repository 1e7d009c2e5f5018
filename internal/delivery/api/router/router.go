// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"unify/config"
	"unify/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MergeHandler *handler.MergeHandler
	Config       *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	mergeHandler *handler.MergeHandler
	config       *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mergeHandler: params.MergeHandler,
		config:       params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Internal API v1 routes. This service sits behind the identity platform;
	// caller authentication happens at the gateway.
	internalV1 := e.Group("/internal/v1")

	mergesGroup := internalV1.Group("/account-merges")
	{
		mergesGroup.POST("", r.mergeHandler.MergeUserData)
		mergesGroup.POST("/rollback", r.mergeHandler.RollbackMerge)
	}
}
