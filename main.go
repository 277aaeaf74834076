// File: glossify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"

	"glossify/config"
	"glossify/database"
	catalogRepoPkg "glossify/database/repository/catalog"
	vehicleRepoPkg "glossify/database/repository/vehicle"
	"glossify/handlers"
	"glossify/middleware"
	"glossify/routes"
	"glossify/services/booking"
	catalogsvc "glossify/services/catalog"
	"glossify/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	if err := catalogRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure catalog indexes: %v", err)
	}
	vehicleRepo := vehicleRepoPkg.NewMongoReferenceRepo()

	// services.
	resolver := &catalogsvc.DefaultResolver{
		Repo:  catalogRepo,
		Cache: &catalogsvc.RedisResultCache{Client: utils.GetCatalogCacheClient()},
	}

	paymentHandler := booking.NewPaymentHandler(logger)
	bookingService := &booking.DefaultBookingSessionService{
		Resolver:   resolver,
		Payments:   paymentHandler,
		Cache:      utils.GetSessionCacheClient(),
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking: handlers.NewBookingHandler(bookingService, logger),
		Catalog: handlers.NewCatalogHandler(resolver, logger),
		Vehicle: handlers.NewVehicleHandler(vehicleRepo, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		utils.GetSessionCacheClient(),
		utils.GetCatalogCacheClient(),
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
