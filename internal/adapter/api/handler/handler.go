package handler

import (
	"nevoyage/internal/usecase"
)

var (
	authHandler         *AuthHandler
	listingHandler      *ListingHandler
	bookingHandler      *BookingHandler
	blogHandler         *BlogHandler
	sellerHandler       *SellerHandler
	productHandler      *ProductHandler
	reviewHandler       *ReviewHandler
	orderHandler        *OrderHandler
	notificationHandler *NotificationHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	listingUseCase *usecase.ListingUseCase,
	bookingUseCase *usecase.BookingUseCase,
	blogUseCase *usecase.BlogUseCase,
	sellerUseCase *usecase.SellerUseCase,
	productUseCase *usecase.ProductUseCase,
	reviewUseCase *usecase.ReviewUseCase,
	orderUseCase *usecase.OrderUseCase,
	notificationUseCase *usecase.NotificationUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	bookingHandler = NewBookingHandler(bookingUseCase)
	blogHandler = NewBlogHandler(blogUseCase)
	sellerHandler = NewSellerHandler(sellerUseCase)
	productHandler = NewProductHandler(productUseCase, sellerUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase, sellerUseCase)
	orderHandler = NewOrderHandler(orderUseCase, sellerUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetBookingHandler() *BookingHandler {
	return bookingHandler
}

func GetBlogHandler() *BlogHandler {
	return blogHandler
}

func GetSellerHandler() *SellerHandler {
	return sellerHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}
