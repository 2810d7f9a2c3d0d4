package router

import (
	"github.com/labstack/echo/v4"

	"nevoyage/internal/adapter/api/handler"
	"nevoyage/internal/adapter/api/middleware"
)

func SetupBookingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	bookingHandler := handler.GetBookingHandler()

	// Public routes: booking is open to guests, cancellation is verified
	// by the booking email.
	bookings := e.Group("/v1/bookings")
	bookings.POST("", bookingHandler.CreateBooking)
	bookings.POST("/:id/cancel", bookingHandler.CancelBooking)

	// Admin routes
	admin := e.Group("/v1/admin/bookings")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.GET("", bookingHandler.GetBookings)
	admin.GET("/:id", bookingHandler.GetBooking)
	admin.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
}
