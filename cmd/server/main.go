package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	auditapp "github.com/mailroom/backend/internal/application/audit"
	correspondenceapp "github.com/mailroom/backend/internal/application/correspondence"
	partnerapp "github.com/mailroom/backend/internal/application/partner"
	"github.com/mailroom/backend/internal/infrastructure/config"
	"github.com/mailroom/backend/internal/infrastructure/directory"
	"github.com/mailroom/backend/internal/infrastructure/logger"
	"github.com/mailroom/backend/internal/infrastructure/notification"
	"github.com/mailroom/backend/internal/infrastructure/persistence"
	"github.com/mailroom/backend/internal/interfaces/http/handler"
	"github.com/mailroom/backend/internal/interfaces/http/middleware"
	"github.com/mailroom/backend/internal/interfaces/http/router"
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

	log.Info("Starting Mailroom Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with zap-backed GORM logger
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

	// Redis backs the directory lookup cache; the service runs without it
	// when no cache TTL is configured
	var redisClient *redis.Client
	if cfg.Directory.CacheTTL > 0 {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
	}

	// External company directory client
	directoryClient, err := directory.NewClient(directory.NewClientConfig(cfg.Directory))
	if err != nil {
		log.Fatal("Failed to configure directory client", zap.Error(err))
	}
	companyDirectory := directory.NewCachedDirectory(directoryClient, redisClient, cfg.Directory.CacheTTL, log)

	// Outbound notification mail
	mailer := notification.NewSMTPMailer(cfg.Mail, log)
	if !cfg.Mail.Enabled {
		log.Info("Outbound mail disabled, notices will be logged only")
	}

	// Repositories
	correspondenceRepo := persistence.NewGormCorrespondenceRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	companyRepo := persistence.NewGormCompanyRepository(db.DB)
	auditRepo := persistence.NewGormAuditRepository(db.DB)

	// Application services
	reconciler := correspondenceapp.NewReconciler(customerRepo, companyRepo)
	correspondenceService := correspondenceapp.NewService(
		correspondenceRepo, reconciler, companyDirectory, mailer, auditRepo, log)
	companyService := partnerapp.NewCompanyService(companyRepo)
	auditService := auditapp.NewService(auditRepo)

	// Gin mode follows the environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack: request id, panic recovery, request logging,
	// security headers, CORS, body size limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Liveness endpoint outside API versioning
	engine.GET("/health", healthHandler(db))

	// API routes
	router.NewRouter(engine, router.WithAPIVersion("v1")).
		Register(handler.NewCorrespondenceHandler(correspondenceService)).
		Register(handler.NewCompanyHandler(companyService)).
		Register(handler.NewAuditHandler(auditService)).
		Register(handler.NewSystemHandler(db)).
		Setup()

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

// healthHandler reports liveness plus database reachability
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(c.Request.Context()); err != nil {
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
