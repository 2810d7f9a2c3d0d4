package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	orderHandler := handler.GetOrderHandler()

	// Protected routes
	orders := e.Group("/v1/esm/orders")
	orders.Use(authMiddleware.Authenticate)

	orders.POST("", orderHandler.CreateOrder)
	orders.GET("/mine", orderHandler.GetMyOrders)
	orders.GET("/selling", orderHandler.GetSellerOrders)
	orders.GET("/:id", orderHandler.GetOrder)
	orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)

	// Admin routes
	admin := e.Group("/v1/admin/esm/orders")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", orderHandler.GetOrders)
}
