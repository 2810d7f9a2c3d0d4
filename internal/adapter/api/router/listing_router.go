package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Public routes
	listings := e.Group("/v1/listings")
	listings.GET("", listingHandler.GetListings)
	listings.GET("/:id", listingHandler.GetListing)
	listings.GET("/slug/:slug", listingHandler.GetListingBySlug)

	// Admin routes
	admin := e.Group("/v1/admin/listings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", listingHandler.CreateListing)
	admin.PUT("/:id", listingHandler.UpdateListing)
	admin.DELETE("/:id", listingHandler.ArchiveListing)
}
