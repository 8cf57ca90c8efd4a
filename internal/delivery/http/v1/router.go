package v1

import (
	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const swaggerPrefix = "/api/swagger"

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	ProfileUC     domain.ProfileUsecase
	HealthUC      usecase.HealthUsecase
	Uploader      *Uploader
	RateLimiter   *middleware.RateLimiter
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	validation.RegisterWithGin()

	r := gin.New()
	r.MaxMultipartMemory = deps.Config.UploadMaxBytes + (1 << 20)

	limiter := deps.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(nil)
	}
	window := deps.Config.RateLimitWindow()

	// Global Middlewares
	r.Use(middleware.RequestID())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware(deps.Config.CORSOrigins))
	r.Use(middleware.SecurityHeadersMiddleware(swaggerPrefix))
	r.Use(middleware.ErrorHandler())
	r.Use(limiter.Middleware(middleware.GlobalConfig(deps.Config.RateLimitGlobalThreshold, window)))

	if deps.Config.UploadDriver == "local" {
		r.Static(deps.Config.UploadPublicPath, deps.Config.UploadDir)
	}

	api := r.Group("/api")

	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	NewSystemHandler(api, deps.JobUC, deps.HealthUC)

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.AuthUC))

	authLimit := limiter.Middleware(middleware.AuthConfig(deps.Config.RateLimitAuthThreshold, window))
	NewAuthHandler(api, authLimit, deps.AuthUC)
	NewJobHandler(api, protected, deps.JobUC, deps.Uploader)
	NewApplicationHandler(protected, deps.ApplicationUC, deps.Uploader)
	NewProfileHandler(protected, deps.ProfileUC, deps.Uploader)

	return r
}
