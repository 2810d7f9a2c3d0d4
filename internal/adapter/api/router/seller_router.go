package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func SetupSellerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	sellerHandler := handler.GetSellerHandler()

	// Public routes
	sellers := e.Group("/v1/esm/sellers")
	sellers.GET("", sellerHandler.GetSellers)
	sellers.GET("/:id", sellerHandler.GetSeller)

	// Protected routes
	authenticated := e.Group("/v1/esm/sellers")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("", sellerHandler.RegisterSeller)
	authenticated.GET("/me", sellerHandler.GetMySeller)
	authenticated.PUT("/:id", sellerHandler.UpdateSeller)

	// Admin routes
	admin := e.Group("/v1/admin/esm/sellers")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.PATCH("/:id/verify", sellerHandler.VerifySeller)
	admin.PATCH("/:id/status", sellerHandler.UpdateSellerStatus)
}
