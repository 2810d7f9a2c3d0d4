package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	// Public routes
	products := e.Group("/v1/esm/products")
	products.GET("", productHandler.GetProducts)
	products.GET("/:id", productHandler.GetProduct)

	// Seller routes
	authenticated := e.Group("/v1/esm/products")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("", productHandler.CreateProduct)
	authenticated.PUT("/:id", productHandler.UpdateProduct)
	authenticated.DELETE("/:id", productHandler.DeleteProduct)

	// Admin routes
	admin := e.Group("/v1/admin/esm/products")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.PATCH("/:id/moderate", productHandler.ModerateProduct)
}
