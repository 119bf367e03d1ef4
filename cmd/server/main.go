package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	csrapp "github.com/petroenergy/petrodash/internal/application/csr"
	dashboardapp "github.com/petroenergy/petrodash/internal/application/dashboard"
	economicsapp "github.com/petroenergy/petrodash/internal/application/economics"
	energyapp "github.com/petroenergy/petrodash/internal/application/energy"
	environmentapp "github.com/petroenergy/petrodash/internal/application/environment"
	hrapp "github.com/petroenergy/petrodash/internal/application/hr"
	identityapp "github.com/petroenergy/petrodash/internal/application/identity"
	referenceapp "github.com/petroenergy/petrodash/internal/application/reference"
	workflowapp "github.com/petroenergy/petrodash/internal/application/workflow"
	"github.com/petroenergy/petrodash/internal/infrastructure/auth"
	"github.com/petroenergy/petrodash/internal/infrastructure/config"
	"github.com/petroenergy/petrodash/internal/infrastructure/logger"
	"github.com/petroenergy/petrodash/internal/infrastructure/persistence"
	"github.com/petroenergy/petrodash/internal/interfaces/http/handler"
	"github.com/petroenergy/petrodash/internal/interfaces/http/middleware"
	"github.com/petroenergy/petrodash/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/petroenergy/petrodash/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			PetroDash API
//	@version		1.0
//	@description	Sustainability dashboard backend for PetroEnergy - environment, energy, HR, CSR and economics reporting over the corporate data warehouse.

//	@contact.name	PetroDash Team
//	@contact.email	petrodash@petroenergy.example.com

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

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
		_ = log.Sync()
	}()

	log.Info("Starting PetroDash",
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

	// Token blacklist backed by Redis, falling back to an in-process store
	// when Redis is unreachable (single-node deployments).
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		log.Info("Redis token blacklist connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize repositories
	accountRepo := persistence.NewGormAccountRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)
	energyRepo := persistence.NewGormEnergyRepository(db.DB)
	environmentRepo := persistence.NewGormEnvironmentRepository(db.DB)
	hrRepo := persistence.NewGormHRRepository(db.DB)
	csrRepo := persistence.NewGormCSRRepository(db.DB)
	referenceRepo := persistence.NewGormReferenceRepository(db.DB)
	workflowRepo := persistence.NewGormWorkflowRepository(db.DB)
	economicsRepo := persistence.NewGormEconomicsRepository(db.DB)
	environmentAnalyticsRepo := persistence.NewGormEnvironmentAnalyticsRepository(db.DB)

	// Audit writes are best-effort and never fail the parent operation.
	auditor := persistence.NewZapAuditRecorder(auditRepo, log)

	// Initialize application services
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(accountRepo, jwtService, blacklist, auditor, log)
	accountService := identityapp.NewAccountService(accountRepo, jwtService, blacklist, auditor, log)
	environmentService := environmentapp.NewService(environmentRepo, referenceRepo, workflowRepo, auditor, log, cfg.Upload.MaxRows)
	energyService := energyapp.NewService(energyRepo, log)
	hrService := hrapp.NewService(hrRepo, log)
	csrService := csrapp.NewService(csrRepo, log)
	referenceService := referenceapp.NewService(referenceRepo, accountRepo, auditRepo, log)
	economicsService := economicsapp.NewService(economicsRepo, log)
	dashboardService := dashboardapp.NewService(environmentAnalyticsRepo, log)
	workflowService := workflowapp.NewService(workflowRepo, auditor, log)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	environmentHandler := handler.NewEnvironmentHandler(environmentService)
	energyHandler := handler.NewEnergyHandler(energyService)
	hrHandler := handler.NewHRHandler(hrService)
	csrHandler := handler.NewCSRHandler(csrService)
	referenceHandler := handler.NewReferenceHandler(referenceService)
	economicsHandler := handler.NewEconomicsHandler(economicsService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)
	systemHandler := handler.NewSystemHandler(db.DB)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, panic recovery, request
	// logging, security headers, CORS, body limit, rate limit, JWT auth.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.SecurityHeaders())

	corsConfig := middleware.CORSConfig{
		AllowedOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowedMethods: cfg.HTTP.CORSAllowMethods,
		AllowedHeaders: cfg.HTTP.CORSAllowHeaders,
	}
	engine.Use(middleware.CORS(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	jwtConfig := middleware.DefaultJWTConfig(jwtService)
	jwtConfig.TokenBlacklist = blacklist
	jwtConfig.Logger = log
	engine.Use(middleware.JWTAuthWithConfig(jwtConfig))

	// Swagger documentation endpoint
	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
		log.Info("Swagger UI enabled", zap.String("path", "/swagger/index.html"))
	}

	// Register API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(systemHandler).
		Register(authHandler).
		Register(accountHandler).
		Register(environmentHandler).
		Register(energyHandler).
		Register(hrHandler).
		Register(csrHandler).
		Register(referenceHandler).
		Register(economicsHandler).
		Register(dashboardHandler).
		Register(workflowHandler)
	r.Setup()

	// Start HTTP server
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
