package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard-backend/config"
	_ "go-jobboard-backend/docs" // Important for Swagger
	"go-jobboard-backend/internal/delivery/http/middleware"
	v1 "go-jobboard-backend/internal/delivery/http/v1"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/repository/postgres"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/database"
	"go-jobboard-backend/pkg/email"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/rolecache"
	"go-jobboard-backend/pkg/security"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Job Board API
// @version         1.0
// @description     Job board backend: accounts, postings, applications and profiles.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting job board backend", "port", cfg.Port, "store", cfg.StoreDriver)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]usecase.HealthCheck{}

	// 3. Setup Repositories
	var (
		userRepo domain.UserRepository
		jobRepo  domain.JobRepository
		appRepo  domain.ApplicationRepository
	)
	switch cfg.StoreDriver {
	case "postgres":
		dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		if err := postgres.Migrate(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
		userRepo = postgres.NewUserRepository(dbPool)
		jobRepo = postgres.NewJobRepository(dbPool)
		appRepo = postgres.NewApplicationRepository(dbPool)
		checks["database"] = dbPool.Ping
	default:
		logger.Log.Warn("Using in-memory store; data is lost on restart")
		store := memory.NewStore()
		userRepo = memory.NewUserRepository(store)
		jobRepo = memory.NewJobRepository(store)
		appRepo = memory.NewApplicationRepository(store)
	}

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.Connect(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory limits and cache", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			client := redisClient
			checks["redis"] = func(ctx context.Context) error { return redis.HealthCheck(ctx, client) }
		}
	}

	var roleCache domain.RoleCache
	if redisClient != nil {
		roleCache = rolecache.NewRedis(redisClient, cfg.RoleCacheTTL)
	} else {
		roleCache = rolecache.NewMemory(cfg.RoleCacheTTL)
	}

	rateLimiter := middleware.NewRateLimiter(redisClient)
	rateLimiter.StartCleanup(ctx, time.Minute)
	uploadLimiter := security.NewUploadLimiter(redisClient, cfg.UploadPerMinute, cfg.UploadPerDay)

	// 5. Setup Storage
	files, err := storage.New(ctx, storage.Config{
		Driver:     cfg.UploadDriver,
		BasePath:   cfg.UploadDir,
		PublicPath: cfg.UploadPublicPath,
		Endpoint:   cfg.S3Endpoint,
		Region:     cfg.S3Region,
		Bucket:     cfg.S3Bucket,
		AccessKey:  cfg.S3AccessKeyID,
		SecretKey:  cfg.S3SecretKey,
		PathStyle:  cfg.S3UsePathStyle,
		PublicURL:  cfg.S3PublicBaseURL,
	})
	if err != nil {
		logger.Log.Error("Failed to initialise upload storage", "driver", cfg.UploadDriver, "error", err)
		os.Exit(1)
	}

	// 6. Setup Credentials
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		logger.Log.Error("Failed to create token issuer", "error", err)
		os.Exit(1)
	}
	hasher := auth.NewHasher(cfg.BcryptCost)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, hasher, tokens, roleCache)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, files)
	var appOpts []usecase.ApplicationOption
	if mailer := email.NewMailer(email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}); mailer != nil {
		appOpts = append(appOpts, usecase.WithNotifier(mailer))
	} else {
		logger.Log.Warn("SMTP not configured - applicant notifications disabled")
	}
	applicationUC := usecase.NewApplicationUsecase(appRepo, jobRepo, userRepo, appOpts...)
	profileUC := usecase.NewProfileUsecase(userRepo)
	healthUC := usecase.NewHealthUsecase(checks)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		ProfileUC:     profileUC,
		HealthUC:      healthUC,
		Uploader:      v1.NewUploader(files, uploadLimiter, cfg.UploadMaxBytes),
		RateLimiter:   rateLimiter,
		Config:        cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
