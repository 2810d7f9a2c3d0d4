package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nevoyage/internal/adapter/api"
	"nevoyage/internal/adapter/api/handler"
	apimiddleware "nevoyage/internal/adapter/api/middleware"
	"nevoyage/internal/adapter/api/router"
	"nevoyage/internal/adapter/repository"
	"nevoyage/internal/usecase"
	"nevoyage/pkg/config"
	"nevoyage/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	db := client.Database(cfg.MongoDatabase)

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	listingRepo := repository.NewMongoListingRepository(db)
	bookingRepo := repository.NewMongoBookingRepository(db)
	blogRepo := repository.NewMongoBlogRepository(db)
	sellerRepo := repository.NewMongoSellerRepository(db)
	productRepo := repository.NewMongoProductRepository(db)
	reviewRepo := repository.NewMongoReviewRepository(db)
	orderRepo := repository.NewMongoOrderRepository(db)
	notificationRepo := repository.NewMongoNotificationRepository(db)
	userRepo := repository.NewMongoUserRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	listingUseCase := usecase.NewListingUseCase(listingRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, listingRepo, notificationRepo)
	blogUseCase := usecase.NewBlogUseCase(blogRepo)
	sellerUseCase := usecase.NewSellerUseCase(sellerRepo, userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, sellerRepo, reviewRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo, productRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, notificationRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	handler.Setup(
		authUseCase,
		listingUseCase,
		bookingUseCase,
		blogUseCase,
		sellerUseCase,
		productUseCase,
		reviewUseCase,
		orderUseCase,
		notificationUseCase,
	)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)
	healthHandler := handler.NewHealthHandler(client)

	router.Setup(e, authMiddleware, adminMiddleware, healthHandler)

	logger.Info("Starting server on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
