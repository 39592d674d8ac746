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

	analyticsapp "github.com/salespulse/backend/internal/application/analytics"
	exportapp "github.com/salespulse/backend/internal/application/export"
	goalapp "github.com/salespulse/backend/internal/application/goal"
	ingestapp "github.com/salespulse/backend/internal/application/ingest"
	reportapp "github.com/salespulse/backend/internal/application/report"
	shareapp "github.com/salespulse/backend/internal/application/share"
	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/infrastructure/aiclient"
	"github.com/salespulse/backend/internal/infrastructure/auth"
	"github.com/salespulse/backend/internal/infrastructure/cache"
	"github.com/salespulse/backend/internal/infrastructure/config"
	"github.com/salespulse/backend/internal/infrastructure/logger"
	"github.com/salespulse/backend/internal/infrastructure/persistence"
	"github.com/salespulse/backend/internal/interfaces/http/handler"
	"github.com/salespulse/backend/internal/interfaces/http/middleware"
	"github.com/salespulse/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting SalesPulse backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
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

	// Shared-view cache: Redis when configured, in-memory otherwise
	viewCache, err := cache.NewStore(cfg.Cache, cfg.Redis, log, cfg.App.Env != "production")
	if err != nil {
		log.Fatal("Failed to initialize cache", zap.Error(err))
	}
	defer func() {
		if err := viewCache.Close(); err != nil {
			log.Error("Error closing cache", zap.Error(err))
		}
	}()

	// Initialize repositories
	recordRepo := persistence.NewGormRecordRepository(db.DB, cfg.Ingest.ChunkSize)
	shareLinkRepo := persistence.NewGormShareLinkRepository(db.DB)
	goalRepo := persistence.NewGormGoalRepository(db.DB)
	aiReportRepo := persistence.NewGormAIReportRepository(db.DB)

	// AI provider client
	aiClient := aiclient.NewClient(cfg.AI)

	// Anomaly detector shared by authenticated and public dashboards
	detector := analytics.NewAnomalyDetector()
	if cfg.Anomaly.Threshold > 0 {
		detector.Threshold = cfg.Anomaly.Threshold
	}
	if cfg.Anomaly.MinSamples > 0 {
		detector.MinSamples = cfg.Anomaly.MinSamples
	}

	// Initialize application services
	ingestService := ingestapp.NewIngestService(recordRepo, cfg.Ingest)
	datasetService := ingestapp.NewDatasetService(recordRepo)
	dashboardService := analyticsapp.NewDashboardService(recordRepo, cfg.Anomaly)
	reportService := reportapp.NewReportService(recordRepo, aiReportRepo, aiClient)
	shareService := shareapp.NewShareService(shareLinkRepo, recordRepo, detector, viewCache, cfg.Cache.TTL, log)
	goalService := goalapp.NewGoalService(goalRepo, recordRepo)
	exportService := exportapp.NewExportService(recordRepo)

	// JWT validation
	jwtService := auth.NewJWTService(cfg.JWT)

	// Initialize HTTP handlers
	ingestHandler := handler.NewIngestHandler(ingestService)
	datasetHandler := handler.NewDatasetHandler(datasetService)
	analyticsHandler := handler.NewAnalyticsHandler(dashboardService)
	reportHandler := handler.NewReportHandler(reportService)
	shareHandler := handler.NewShareHandler(shareService)
	goalHandler := handler.NewGoalHandler(goalService)
	exportHandler := handler.NewExportHandler(exportService)
	systemHandler := handler.NewSystemHandler()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	// Configure CORS from config
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Body size limit
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Public shared dashboard, rate limited per token so one leaked link
	// cannot hammer the database
	sharedLimiter := middleware.NewRateLimiter(60, time.Minute)
	engine.GET("/shared/:token",
		middleware.RateLimitByKey(sharedLimiter, func(c *gin.Context) string {
			return c.Param("token")
		}),
		shareHandler.ResolveShared,
	)

	// Authenticated API routes
	r := router.NewRouter(engine,
		router.WithAPIVersion("v1"),
		router.WithMiddleware(middleware.JWTAuthMiddleware(jwtService)),
	)

	r.Register(ingestHandler).
		Register(datasetHandler).
		Register(analyticsHandler).
		Register(reportHandler).
		Register(shareHandler).
		Register(goalHandler).
		Register(exportHandler).
		Register(systemHandler)

	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
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

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
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
