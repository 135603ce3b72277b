package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appclient "github.com/worksuite/backend/internal/application/client"
	appcompliance "github.com/worksuite/backend/internal/application/compliance"
	"github.com/worksuite/backend/internal/infrastructure/auth"
	"github.com/worksuite/backend/internal/infrastructure/config"
	"github.com/worksuite/backend/internal/infrastructure/logger"
	"github.com/worksuite/backend/internal/infrastructure/persistence"
	"github.com/worksuite/backend/internal/infrastructure/scheduler"
	"github.com/worksuite/backend/internal/interfaces/http/handler"
	"github.com/worksuite/backend/internal/interfaces/http/middleware"
	"github.com/worksuite/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting WorkSuite Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	fieldDefRepo := persistence.NewGormFieldDefinitionRepository(db.DB)
	fieldGroupRepo := persistence.NewGormFieldGroupRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	transitionRepo := persistence.NewGormLifecycleTransitionRepository(db.DB)
	deletionRequestRepo := persistence.NewGormDeletionRequestRepository(db.DB)
	fieldValueReader := persistence.NewGormFieldValueReader(db.DB)
	checklistStore := persistence.NewGormChecklistStore(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)

	// Initialize application services
	fieldDefService := appcompliance.NewFieldDefinitionService(fieldDefRepo, fieldGroupRepo)
	prereqService := appcompliance.NewPrerequisiteService(fieldDefRepo, fieldGroupRepo, fieldValueReader, checklistStore, log)
	customerService := appclient.NewCustomerService(customerRepo, fieldDefRepo)
	lifecycleService := appclient.NewLifecycleService(customerRepo, transitionRepo, prereqService, txScope, log)
	dormancyService := appclient.NewDormancyService(customerRepo, log)
	deletionService := appclient.NewDeletionService(customerRepo, deletionRequestRepo, txScope, log)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Start the background dormancy scheduler (if enabled)
	if cfg.Dormancy.ScanEnabled {
		schedulerConfig := scheduler.DormancySchedulerConfig{
			Enabled:       cfg.Dormancy.ScanEnabled,
			Interval:      cfg.Dormancy.ScanInterval,
			ThresholdDays: cfg.Dormancy.ThresholdDays,
			ScanTimeout:   10 * time.Minute,
		}
		dormancyScheduler := scheduler.NewDormancyScheduler(
			schedulerConfig,
			customerRepo,
			dormancyScanAdapter{svc: dormancyService},
			log,
		)
		if err := dormancyScheduler.Start(context.Background()); err != nil {
			log.Fatal("Failed to start dormancy scheduler", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := dormancyScheduler.Stop(stopCtx); err != nil {
				log.Error("Error stopping dormancy scheduler", zap.Error(err))
			}
		}()
	}

	// Initialize HTTP handlers
	fieldDefHandler := handler.NewFieldDefinitionHandler(fieldDefService)
	prereqHandler := handler.NewPrerequisiteHandler(prereqService)
	customerHandler := handler.NewCustomerHandler(customerService)
	lifecycleHandler := handler.NewLifecycleHandler(lifecycleService)
	dormancyHandler := handler.NewDormancyHandler(dormancyService)
	deletionHandler := handler.NewDeletionHandler(deletionService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	// Initialize router with custom middleware
	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Apply middleware stack in order:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. Security - Add security headers
	// 5. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", systemHandler.Health)

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	jwtConfig := middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
		SkipPaths: []string{
			"/health",
			"/api/v1/system/info",
		},
		Logger: log,
	}
	engine.Use(middleware.JWTAuthMiddlewareWithConfig(jwtConfig))

	// Compliance domain (field definitions, groups, prerequisite checks)
	complianceRoutes := router.NewDomainGroup("compliance", "/compliance")
	complianceRoutes.POST("/field-definitions", fieldDefHandler.Register)
	complianceRoutes.GET("/field-definitions", fieldDefHandler.List)
	complianceRoutes.GET("/field-definitions/applicable", fieldDefHandler.ListApplicable)
	complianceRoutes.GET("/field-definitions/:id", fieldDefHandler.Get)
	complianceRoutes.PUT("/field-definitions/:id", fieldDefHandler.Update)
	complianceRoutes.DELETE("/field-definitions/:id", fieldDefHandler.Deactivate)
	complianceRoutes.POST("/field-groups", fieldDefHandler.CreateGroup)
	complianceRoutes.GET("/field-groups", fieldDefHandler.ListGroups)
	complianceRoutes.POST("/prerequisites/check", prereqHandler.Check)

	// Client domain (customers, lifecycle, dormancy, deletion)
	clientRoutes := router.NewDomainGroup("client", "/client")
	clientRoutes.POST("/customers", customerHandler.Create)
	clientRoutes.GET("/customers", customerHandler.List)
	clientRoutes.POST("/customers/dormancy-scan", dormancyHandler.Scan)
	clientRoutes.GET("/customers/:id", customerHandler.Get)
	clientRoutes.PUT("/customers/:id", customerHandler.Update)
	clientRoutes.PUT("/customers/:id/fields", customerHandler.SetFieldValue)
	clientRoutes.POST("/customers/:id/transition", lifecycleHandler.Transition)
	clientRoutes.GET("/customers/:id/transitions", lifecycleHandler.History)
	clientRoutes.POST("/deletion-requests", deletionHandler.Request)
	clientRoutes.GET("/deletion-requests/:id", deletionHandler.Get)
	clientRoutes.POST("/deletion-requests/:id/execute", deletionHandler.Execute)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)

	r.Register(complianceRoutes)
	r.Register(clientRoutes)
	r.Register(systemRoutes)
	r.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}

// dormancyScanAdapter bridges the application dormancy service to the
// scheduler's scanner interface.
type dormancyScanAdapter struct {
	svc *appclient.DormancyService
}

func (a dormancyScanAdapter) ScanTenant(ctx context.Context, tenantID uuid.UUID, thresholdDays int) (scheduler.ScanResult, error) {
	resp, err := a.svc.Scan(ctx, tenantID, appclient.DormancyScanRequest{ThresholdDays: thresholdDays})
	if err != nil {
		return scheduler.ScanResult{}, err
	}
	return scheduler.ScanResult{Candidates: len(resp.Candidates)}, nil
}
