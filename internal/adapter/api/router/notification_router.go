package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func SetupNotificationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	notificationHandler := handler.GetNotificationHandler()

	// Public intake for contact and newsletter forms
	e.POST("/v1/notifications", notificationHandler.RecordNotification)

	// Admin inbox
	admin := e.Group("/v1/admin/notifications")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", notificationHandler.GetNotifications)
	admin.GET("/:id", notificationHandler.GetNotification)
	admin.PATCH("/:id/status", notificationHandler.UpdateNotificationStatus)
	admin.POST("/:id/email-sent", notificationHandler.MarkEmailSent)
}
