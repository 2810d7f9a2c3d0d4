package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	// Public routes
	reviews := e.Group("/v1/esm/reviews")
	reviews.GET("", reviewHandler.GetReviews)
	reviews.GET("/:id", reviewHandler.GetReview)

	// Protected routes
	authenticated := e.Group("")
	authenticated.Use(authMiddleware.Authenticate)

	authenticated.POST("/v1/esm/products/:productId/reviews", reviewHandler.CreateReview)
	authenticated.PUT("/v1/esm/reviews/:id", reviewHandler.UpdateReview)
	authenticated.DELETE("/v1/esm/reviews/:id", reviewHandler.DeleteReview)
	authenticated.POST("/v1/esm/reviews/:id/vote", reviewHandler.VoteReview)
	authenticated.POST("/v1/esm/reviews/:id/respond", reviewHandler.RespondToReview)

	// Admin routes
	admin := e.Group("/v1/admin/esm/reviews")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.PATCH("/:id/moderate", reviewHandler.ModerateReview)
	admin.DELETE("/:id", reviewHandler.AdminDeleteReview)
}
