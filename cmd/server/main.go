package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	deliveryapp "github.com/storefront/backend/internal/application/delivery"
	identityapp "github.com/storefront/backend/internal/application/identity"
	notifapp "github.com/storefront/backend/internal/application/notification"
	orderapp "github.com/storefront/backend/internal/application/order"
	trackingapp "github.com/storefront/backend/internal/application/tracking"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/event"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting storefront backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	proposalRepo := persistence.NewGormProposalRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	trackingRepo := persistence.NewGormTrackingRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	negotiationStore := persistence.NewGormNegotiationStore(db.DB, cfg.Notification.MaxPerRecipient)
	checkoutStore := persistence.NewGormCheckoutStore(db.DB)

	// Product cache (Redis with in-memory fallback)
	productCache := cache.NewProductCache(cfg.Redis, cfg.Catalog.CacheTTL, log)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService)
	catalogService := catalogapp.NewCatalogService(productRepo, categoryRepo, productCache, log)
	cartService := cartapp.NewCartService(cartRepo, productRepo)
	checkoutService := orderapp.NewCheckoutService(orderRepo, proposalRepo, cartRepo, productRepo, checkoutStore)
	negotiationService := deliveryapp.NewNegotiationService(proposalRepo, orderRepo, negotiationStore)
	notificationService := notifapp.NewNotificationService(notificationRepo)
	trackingService := trackingapp.NewTrackingService(trackingRepo, orderRepo)

	// Event bus and cross-context handlers
	eventBus := event.NewInMemoryEventBus(log)

	orderPlacedHandler := orderapp.NewOrderPlacedHandler(trackingRepo, notificationRepo, cfg.Notification.MaxPerRecipient, log)
	eventBus.Subscribe(orderPlacedHandler)

	slotConfirmedHandler := trackingapp.NewSlotConfirmedHandler(trackingRepo, log)
	eventBus.Subscribe(slotConfirmedHandler)

	log.Info("Event handlers registered",
		zap.Strings("order_placed_events", orderPlacedHandler.EventTypes()),
		zap.Strings("slot_confirmed_events", slotConfirmedHandler.EventTypes()),
	)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	authService.SetEventPublisher(eventBus)
	checkoutService.SetEventPublisher(eventBus)
	negotiationService.SetEventPublisher(eventBus)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(checkoutService)
	deliveryHandler := handler.NewDeliveryHandler(negotiationService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	notificationHandler := handler.NewNotificationHandler(notificationService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", middleware.SessionKeyHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.SessionKey())

	engine.GET("/health", healthHandler(db))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	r.Use(middleware.JWTAuthMiddleware(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/api/v1/auth/register",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		SkipPathPrefixes: []string{
			"/api/v1/products",
			"/api/v1/categories",
			"/api/v1/cart",
		},
		Logger: log,
	}))

	r.Register(authHandler).
		Register(catalogHandler).
		Register(cartHandler).
		Register(orderHandler).
		Register(deliveryHandler).
		Register(trackingHandler).
		Register(notificationHandler)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
