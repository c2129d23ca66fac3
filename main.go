package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lablink/config"
	"lablink/cron"
	"lablink/database"
	"lablink/database/repository"
	"lablink/handlers"
	"lablink/middleware"
	"lablink/routes"
	"lablink/services/admin"
	"lablink/services/booking"
	"lablink/services/cart"
	"lablink/services/checkout"
	"lablink/services/partner"
	"lablink/services/tasks"
	"lablink/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	partnerRepo := repository.NewMongoPartnerRepo()
	bookingRepo := repository.NewMongoBookingRepo()
	commissionRepo := repository.NewMongoCommissionRepo()
	centreRepo := repository.NewMongoCentreRepo()
	catalogRepo := repository.NewMongoCatalogRepo()
	settingsRepo := repository.NewMongoSettingsRepo()

	// stores.
	draftStore := checkout.NewRedisDraftStore(utils.GetCheckoutCacheClient())
	fallbackStore := checkout.NewRedisFallbackStore(utils.GetCheckoutCacheClient())

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	// services.
	cartService := cart.NewDefaultCartService(utils.GetCartCacheClient())

	checkoutService := &checkout.DefaultCheckoutService{
		Drafts:        draftStore,
		Carts:         cartService,
		PartnerRepo:   partnerRepo,
		BookingRepo:   bookingRepo,
		Fallback:      fallbackStore,
		Reconciler:    &tasks.AsynqEnqueuer{Client: asynqClient},
		CommitTimeout: time.Duration(config.AppConfig.CommitTimeoutSeconds) * time.Second,
	}

	partnerService := &partner.DefaultPartnerService{
		Repo:        partnerRepo,
		BookingRepo: bookingRepo,
		Fallback:    fallbackStore,
	}

	bookingService := &booking.DefaultBookingService{Repo: bookingRepo}

	adminService := &admin.DefaultAdminService{
		PartnerRepo:    partnerRepo,
		BookingRepo:    bookingRepo,
		CommissionRepo: commissionRepo,
		CentreRepo:     centreRepo,
		SettingsRepo:   settingsRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PartnerRepo: partnerRepo,
		Partner:     handlers.NewPartnerHandler(partnerService),
		Catalog:     handlers.NewCatalogHandler(catalogRepo, centreRepo),
		Cart:        handlers.NewCartHandler(cartService),
		Checkout:    handlers.NewCheckoutHandler(checkoutService),
		Admin:       handlers.NewAdminHandler(adminService, bookingService, catalogRepo),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background worker draining fallback bookings into Mongo.
	cron.InitReconcileWorker(cron.ReconcileDeps{
		Fallback:    fallbackStore,
		PartnerRepo: partnerRepo,
		BookingRepo: bookingRepo,
	})

	utils.StartHealthMonitor([]*redis.Client{
		utils.GetCartCacheClient(),
		utils.GetCheckoutCacheClient(),
		utils.GetAuthCacheClient(),
	}, database.MongoClient)

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
