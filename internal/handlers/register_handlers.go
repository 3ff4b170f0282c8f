package handlers

import (
	"github.com/pennywiseapp/pennywise_backend/cmd/docs"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/internal/middleware"
	"github.com/pennywiseapp/pennywise_backend/internal/platform/stream"
	"github.com/pennywiseapp/pennywise_backend/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *stream.Hub,
) {
	registerCustomValidations()

	r.GET("/", getHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes, rate limited per IP
	registerPublicAuthRoutes(r, services)

	// Everything else lives under /api/v1 behind the auth middleware
	setupAPIV1Routes(r, cfg, services, hub)

	setupSwaggerRoutes(r, cfg)
}

// registerPublicAuthRoutes sets up the unauthenticated auth endpoints.
func registerPublicAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	// 10 requests per minute per IP across all auth endpoints
	rate, _ := limiter.NewRateFromFormatted("10-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth", middleware.RateLimit(ipLimiter))

	registerAuthRoutes(auth, services)
	registerGoogleOAuthRoutes(auth, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *stream.Hub,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerAuthedAuthRoutes(v1, services)
	registerUserRoutes(v1, services.User)
	registerTransactionRoutes(v1, services.Transaction)
	registerBudgetRoutes(v1, services.Budget, services.Insights)
	registerBillRoutes(v1, services.Bill, services.Insights)
	registerGoalRoutes(v1, services.Goal, services.Insights)
	registerNetWorthRoutes(v1, services.NetWorth, services.Insights)
	registerReportRoutes(v1, services.Insights)
	registerStreamRoutes(v1, hub)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
