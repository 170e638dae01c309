package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hive-match.backend/internal/config"
	"hive-match.backend/internal/infrastructure/repositories"
	"hive-match.backend/internal/interfaces/http/handlers"
	"hive-match.backend/internal/interfaces/http/middleware"
	"hive-match.backend/internal/usecases"
	"hive-match.backend/pkg/jwt"
	"hive-match.backend/pkg/logger"
	"hive-match.backend/pkg/redis"
	"hive-match.backend/pkg/token"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	newResetStore = redis.NewResetStore
	runServer     = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB      = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize reset token service and session store
	resetTokens, err := token.NewResetTokenService(cfg.Security.ResetTokenKey, cfg.Security.ResetTokenTTL)
	if err != nil {
		return fmt.Errorf("failed to initialize reset token service: %w", err)
	}
	resetStore, err := newResetStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize reset store: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	decisionRepo := repositories.NewDecisionRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, jwtService, resetTokens, resetStore)
	profileUsecase := usecases.NewProfileUsecase(profileRepo)
	matchUsecase := usecases.NewMatchUsecase(decisionRepo, profileRepo, usecases.RedisLikeCountCache{})
	adminUsecase := usecases.NewAdminUsecase(adminRepo, profileRepo, userRepo, auditRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	matchHandler := handlers.NewMatchHandler(matchUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:     authHandler,
		profileHandler:  profileHandler,
		matchHandler:    matchHandler,
		adminHandler:    adminHandler,
		authMiddleware:  middleware.AuthMiddleware(jwtService),
		adminMiddleware: middleware.RequireAdmin(adminUsecase),
		setPasswordLimit: middleware.RateLimitMiddleware(
			"set-password",
			cfg.Security.SetPasswordLimit,
			cfg.Security.SetPasswordWindow,
		),
	})

	// Print all registered routes for debugging
	log.Println("📋 Registered Routes:")
	for _, route := range r.Routes() {
		log.Printf("   %s %s", route.Method, route.Path)
	}

	// Start server
	log.Printf("🚀 Hive-Match Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
