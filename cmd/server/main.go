package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/petalia/backend/internal/application/catalog"
	conversionapp "github.com/petalia/backend/internal/application/conversion"
	identityapp "github.com/petalia/backend/internal/application/identity"
	orderingapp "github.com/petalia/backend/internal/application/ordering"
	partnerapp "github.com/petalia/backend/internal/application/partner"
	"github.com/petalia/backend/internal/infrastructure/auth"
	"github.com/petalia/backend/internal/infrastructure/cache"
	"github.com/petalia/backend/internal/infrastructure/config"
	"github.com/petalia/backend/internal/infrastructure/logger"
	"github.com/petalia/backend/internal/infrastructure/messaging"
	"github.com/petalia/backend/internal/infrastructure/payment"
	"github.com/petalia/backend/internal/infrastructure/persistence"
	"github.com/petalia/backend/internal/infrastructure/scheduler"
	"github.com/petalia/backend/internal/infrastructure/storage"
	"github.com/petalia/backend/internal/interfaces/http/handler"
	"github.com/petalia/backend/internal/interfaces/http/middleware"
	"github.com/petalia/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/petalia/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Petalia Backend API
//	@version		1.0
//	@description	Back office da floricultura: pedidos, painéis de fornecedores, pagamentos e conversão de leads.

//	@contact.name	API Support
//	@contact.email	dev@petalia.com.br

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

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

	log.Info("Starting Petalia Backend",
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
	log.Info("Database connected successfully")

	// Repositories
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	panelRepo := persistence.NewGormSupplierPanelRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	formRepo := persistence.NewGormFormRepository(db.DB)
	messageRepo := persistence.NewGormConversionMessageRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Webhook deduplication store. Redis survives restarts; the in-memory
	// fallback keeps single-instance deployments working without it.
	var dedupeStore cache.IdempotencyStore
	if redisStore, err := cache.NewRedisIdempotencyStore(cfg.Redis); err != nil {
		log.Warn("Redis unavailable, using in-memory webhook deduplication", zap.Error(err))
		dedupeStore = cache.NewInMemoryIdempotencyStore()
	} else {
		dedupeStore = redisStore
	}
	defer func() {
		if err := dedupeStore.Close(); err != nil {
			log.Error("Error closing deduplication store", zap.Error(err))
		}
	}()

	// Messaging bridge
	msgClient := messaging.NewClient(cfg.Messaging.BaseURL, cfg.Messaging.Token, cfg.Messaging.Timeout, log)
	notifier := messaging.NewNotifier(msgClient)
	messenger := messaging.NewMessenger(msgClient)

	// Delayed-callback scheduler. Without an external scheduler service the
	// in-process one covers development and single-instance setups.
	var callbackScheduler orderingapp.CallbackScheduler
	if cfg.Scheduler.BaseURL != "" {
		callbackScheduler = scheduler.NewClient(scheduler.Config{
			BaseURL:         cfg.Scheduler.BaseURL,
			Token:           cfg.Scheduler.Token,
			CallbackBaseURL: cfg.Scheduler.CallbackBaseURL,
			CallbackSecret:  cfg.Scheduler.CallbackSecret,
			Timeout:         cfg.Scheduler.Timeout,
		}, log)
	} else {
		local := scheduler.NewLocalScheduler(cfg.Scheduler.CallbackBaseURL, cfg.Scheduler.CallbackSecret, log)
		local.Start(context.Background())
		defer local.Stop()
		callbackScheduler = local
		log.Info("Using in-process callback scheduler")
	}

	// Payment gateway
	gateway, err := payment.NewMercadoPagoGateway(cfg.Payment.AccessToken, cfg.Payment.NotifyURL, log)
	if err != nil {
		log.Fatal("Failed to configure payment gateway", zap.Error(err))
	}

	// Object storage for product and delivery photos
	var objectStorage catalogapp.ObjectStorageService
	if cfg.Storage.AccessKeyID != "" {
		objectStorage, err = storage.NewS3ObjectStorage(&cfg.Storage, log)
		if err != nil {
			log.Fatal("Failed to configure object storage", zap.Error(err))
		}
	} else {
		objectStorage = storage.NewStubObjectStorage()
		log.Warn("Object storage credentials missing, uploads are stubbed")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	productService := catalogapp.NewProductService(productRepo, objectStorage, log)
	customerService := partnerapp.NewCustomerService(customerRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo, log)
	orderService := orderingapp.NewOrderService(
		orderRepo, panelRepo, paymentRepo, customerRepo, supplierRepo, notifier, log)
	panelService := orderingapp.NewPanelService(
		panelRepo, orderRepo, paymentRepo, supplierRepo, customerRepo,
		notifier, callbackScheduler,
		orderingapp.PanelServiceConfig{
			ExpiryWindow:   cfg.Workflow.PanelExpiryWindow,
			PhotoWarnDelay: cfg.Workflow.PhotoWarnDelay,
		}, log)
	paymentService := orderingapp.NewPaymentService(paymentRepo, orderRepo, gateway, log)
	conversionService := conversionapp.NewService(
		formRepo, messageRepo, messenger, callbackScheduler,
		conversionapp.ServiceConfig{
			SecondAttemptDelay: cfg.Workflow.SecondAttemptDelay,
			FeedbackDelay:      cfg.Workflow.FeedbackDelay,
		}, log)

	// HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	supplierHandler := handler.NewSupplierHandler(supplierService)
	customerHandler := handler.NewCustomerHandler(customerService)
	orderHandler := handler.NewOrderHandler(orderService, productService)
	panelHandler := handler.NewPanelHandler(panelService, authService)
	paymentHandler := handler.NewPaymentHandler(paymentService, log)
	formHandler := handler.NewFormHandler(conversionService, log)
	webhookHandler := handler.NewWebhookHandler(panelService, orderService, conversionService, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

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
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	engine.GET("/health", healthHandler(db))

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	userAuth := middleware.UserAuth(jwtService)
	adminOnly := middleware.RequireRole("ADMIN")

	// Public surface: login and the website's lead form
	publicRoutes := router.NewDomainGroup("public", "")
	publicRoutes.POST("/auth/login", authHandler.Login)
	publicRoutes.POST("/forms", formHandler.Create)

	// Back-office account management
	accountRoutes := router.NewDomainGroup("account", "/auth").Use(userAuth)
	accountRoutes.POST("/register", adminOnly, authHandler.Register)
	accountRoutes.PUT("/password", authHandler.ChangePassword)

	// Catalog
	catalogRoutes := router.NewDomainGroup("catalog", "/products").Use(userAuth)
	catalogRoutes.POST("", productHandler.Create)
	catalogRoutes.GET("", productHandler.List)
	catalogRoutes.GET("/:id", productHandler.GetByID)
	catalogRoutes.PUT("/:id", productHandler.Update)
	catalogRoutes.POST("/:id/activate", productHandler.Activate)
	catalogRoutes.POST("/:id/deactivate", productHandler.Deactivate)
	catalogRoutes.POST("/:id/photo-upload", productHandler.RequestPhotoUpload)
	catalogRoutes.DELETE("/:id", adminOnly, productHandler.Delete)

	// Partners
	supplierRoutes := router.NewDomainGroup("suppliers", "/suppliers").Use(userAuth)
	supplierRoutes.POST("", supplierHandler.Create)
	supplierRoutes.GET("", supplierHandler.List)
	supplierRoutes.GET("/:id", supplierHandler.GetByID)
	supplierRoutes.PUT("/:id", supplierHandler.Update)
	supplierRoutes.PUT("/:id/ratified", supplierHandler.SetRatified)
	supplierRoutes.POST("/:id/disable", supplierHandler.Disable)
	supplierRoutes.DELETE("/:id", adminOnly, supplierHandler.Delete)

	customerRoutes := router.NewDomainGroup("customers", "/customers").Use(userAuth)
	customerRoutes.POST("", customerHandler.Create)
	customerRoutes.GET("", customerHandler.List)
	customerRoutes.GET("/:id", customerHandler.GetByID)
	customerRoutes.PUT("/:id", customerHandler.Update)

	// Orders
	orderRoutes := router.NewDomainGroup("orders", "/orders").Use(userAuth)
	orderRoutes.POST("", orderHandler.Create)
	orderRoutes.GET("", orderHandler.List)
	orderRoutes.GET("/kanban", orderHandler.Kanban)
	orderRoutes.GET("/:id", orderHandler.GetByID)
	orderRoutes.POST("/:id/start-route", orderHandler.StartRoute)
	orderRoutes.POST("/:id/finalize", orderHandler.Finalize)
	orderRoutes.GET("/:id/payments", paymentHandler.ListByOrder)

	// Supplier panels, back-office side
	panelRoutes := router.NewDomainGroup("panels", "/panels").Use(userAuth)
	panelRoutes.POST("", panelHandler.Create)
	panelRoutes.GET("/:id", panelHandler.GetByID)
	panelRoutes.POST("/:id/link", panelHandler.IssueLink)
	panelRoutes.POST("/:id/cancel", panelHandler.CancelByAdmin)
	panelRoutes.PUT("/:id/cost", panelHandler.SetCost)
	panelRoutes.DELETE("/:id", adminOnly, panelHandler.Delete)

	// Supplier panels, link-scoped side. The token in the shared link only
	// opens the panel it was minted for.
	panelActionRoutes := router.NewDomainGroup("panel-actions", "/panel").
		Use(middleware.PanelAuth(jwtService))
	panelActionRoutes.GET("/:id", panelHandler.GetByID)
	panelActionRoutes.POST("/:id/approve", panelHandler.Approve)
	panelActionRoutes.POST("/:id/cancel", panelHandler.CancelBySupplier)
	panelActionRoutes.POST("/:id/confirm-delivery", panelHandler.ConfirmDelivery)
	panelActionRoutes.PUT("/:id/photo", panelHandler.SetPhoto)

	// Payments
	paymentRoutes := router.NewDomainGroup("payments", "/payments").Use(userAuth)
	paymentRoutes.POST("", paymentHandler.Create)
	paymentRoutes.POST("/:id/confirm", paymentHandler.Confirm)
	paymentRoutes.POST("/:id/cancel", paymentHandler.Cancel)

	// Lead management
	formRoutes := router.NewDomainGroup("forms", "/forms").Use(userAuth)
	formRoutes.GET("", formHandler.List)
	formRoutes.GET("/:id", formHandler.GetByID)
	formRoutes.PUT("/:id/status", formHandler.UpdateStatus)

	// Scheduled callbacks signed by this application
	callbackRoutes := router.NewDomainGroup("callbacks", "/webhooks").
		Use(middleware.SignedCallback(cfg.Scheduler.CallbackSecret, dedupeStore, log))
	callbackRoutes.POST("/panels/expire", webhookHandler.ExpirePanel)
	callbackRoutes.POST("/panels/warn-late-photo", webhookHandler.WarnLatePhoto)
	callbackRoutes.POST("/orders/warn-late", webhookHandler.WarnLateOrder)
	callbackRoutes.POST("/conversions/second-attempt", webhookHandler.SecondAttempt)
	callbackRoutes.POST("/conversions/feedback", webhookHandler.Feedback)

	// Inbound replies from the messaging bridge
	messageRoutes := router.NewDomainGroup("message-callbacks", "/webhooks/messages").
		Use(middleware.SignedCallback(cfg.Messaging.WebhookSecret, dedupeStore, log))
	messageRoutes.POST("/reply", webhookHandler.MessageReply)

	// Payment gateway notifications carry no shared-secret signature; the
	// handler re-queries the gateway before trusting anything in the body.
	gatewayRoutes := router.NewDomainGroup("payment-callbacks", "/webhooks/payments")
	gatewayRoutes.POST("", paymentHandler.HandleGatewayNotification)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(publicRoutes).
		Register(accountRoutes).
		Register(catalogRoutes).
		Register(supplierRoutes).
		Register(customerRoutes).
		Register(orderRoutes).
		Register(panelRoutes).
		Register(panelActionRoutes).
		Register(paymentRoutes).
		Register(formRoutes).
		Register(callbackRoutes).
		Register(messageRoutes).
		Register(gatewayRoutes)
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

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.FromGin(c).Warn("Health check failed", zap.Error(err))
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
