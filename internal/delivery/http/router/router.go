// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sellbase/internal/delivery/http/middleware"
	"sellbase/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	CustomerHandler *handler.CustomerHandler
	CategoryHandler *handler.ProductCategoryHandler
	ProductHandler  *handler.ProductHandler
	SaleHandler     *handler.SaleHandler
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.AuthHandler.Register)
		authGroup.POST("/register/google-auth", r.params.AuthHandler.GoogleAuth)
		authGroup.POST("/login", r.params.AuthHandler.Login)
	}

	authenticate := r.params.AuthMiddleware.Authenticate

	// Self-service account routes
	userGroup := e.Group("/user", authenticate)
	{
		userGroup.GET("/:id", r.params.UserHandler.Get)
		userGroup.PUT("/:id", r.params.UserHandler.Update)
		userGroup.DELETE("/:id", r.params.UserHandler.Delete)
	}

	// Owner-scoped resource routes
	customerGroup := e.Group("/customer", authenticate)
	{
		customerGroup.GET("", r.params.CustomerHandler.List)
		customerGroup.POST("", r.params.CustomerHandler.Create)
		customerGroup.GET("/:id", r.params.CustomerHandler.Get)
		customerGroup.PUT("/:id", r.params.CustomerHandler.Update)
		customerGroup.DELETE("/:id", r.params.CustomerHandler.Delete)
	}

	categoryGroup := e.Group("/product-category", authenticate)
	{
		categoryGroup.GET("", r.params.CategoryHandler.List)
		categoryGroup.POST("", r.params.CategoryHandler.Create)
		categoryGroup.GET("/:id", r.params.CategoryHandler.Get)
		categoryGroup.PUT("/:id", r.params.CategoryHandler.Update)
		categoryGroup.DELETE("/:id", r.params.CategoryHandler.Delete)
	}

	productGroup := e.Group("/product", authenticate)
	{
		productGroup.GET("", r.params.ProductHandler.List)
		productGroup.POST("", r.params.ProductHandler.Create)
		productGroup.GET("/:id", r.params.ProductHandler.Get)
		productGroup.PUT("/:id", r.params.ProductHandler.Update)
		productGroup.DELETE("/:id", r.params.ProductHandler.Delete)
	}

	saleGroup := e.Group("/sale", authenticate)
	{
		saleGroup.GET("", r.params.SaleHandler.List)
		saleGroup.POST("", r.params.SaleHandler.Create)
		saleGroup.GET("/:id", r.params.SaleHandler.Get)
		saleGroup.PUT("/:id", r.params.SaleHandler.Update)
		saleGroup.DELETE("/:id", r.params.SaleHandler.Delete)
	}
}
