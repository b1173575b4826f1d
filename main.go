package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sHubh-blip/hd-booking/config"
	"github.com/sHubh-blip/hd-booking/cron"
	"github.com/sHubh-blip/hd-booking/database"
	bookingRepoPkg "github.com/sHubh-blip/hd-booking/database/repository/booking"
	experienceRepoPkg "github.com/sHubh-blip/hd-booking/database/repository/experience"
	promoRepoPkg "github.com/sHubh-blip/hd-booking/database/repository/promo"
	"github.com/sHubh-blip/hd-booking/handlers"
	"github.com/sHubh-blip/hd-booking/middleware"
	"github.com/sHubh-blip/hd-booking/routes"
	"github.com/sHubh-blip/hd-booking/services/booking"
	"github.com/sHubh-blip/hd-booking/services/catalog"
	"github.com/sHubh-blip/hd-booking/services/promo"
	"github.com/sHubh-blip/hd-booking/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	experienceRepo := experienceRepoPkg.NewMongoExperienceRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  experienceRepo,
		Cache: catalog.NewRedisCache(utils.GetCacheClient()),
	}
	promoService := &promo.DefaultPromoService{
		Repo: promoRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Experiences:    experienceRepo,
		Promos:         promoRepo,
		Bookings:       bookingRepo,
		Catalog:        catalogService,
		TaxRatePercent: config.AppConfig.TaxRatePercent,
	}

	experienceHandler := handlers.NewExperienceHandler(catalogService, logger)
	promoHandler := handlers.NewPromoHandler(promoService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListExperiencesHandler: experienceHandler.ListExperiencesHandler,
		GetExperienceHandler:   experienceHandler.GetExperienceHandler,
		CreateBookingHandler:   bookingHandler.CreateBookingHandler,
		GetBookingByRefHandler: bookingHandler.GetBookingByRefHandler,
		ValidatePromoHandler:   promoHandler.ValidatePromoHandler,
		HealthHandler:          handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background promo expiry sweep.
	sweeper := cron.StartPromoSweeper(promoRepo)
	defer sweeper.Stop()

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
