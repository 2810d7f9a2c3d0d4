package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware, healthHandler *handler.HealthHandler) {
	SetupAuthRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware, adminMiddleware)
	SetupBookingRouter(e, authMiddleware, adminMiddleware)
	SetupBlogRouter(e, authMiddleware, adminMiddleware)
	SetupSellerRouter(e, authMiddleware, adminMiddleware)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupReviewRouter(e, authMiddleware, adminMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupNotificationRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e, healthHandler)
}
