package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/service"
)

var defaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// RouterConfig holds router configuration options.
type RouterConfig struct {
	// RateLimit requests per RateWindow are allowed per client. Zero disables limiting.
	RateLimit  int
	RateWindow time.Duration
	APIKeys    map[string]bool
	EnableAuth bool
	// Idempotency replays retried writes. Nil disables replays.
	Idempotency       *middleware.IdempotencyStore
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
	RequestTimeout    time.Duration
	LoggingService    service.LoggingService
	AuthService       service.AuthService
	RoleService       service.RoleService
	PermissionService service.PermissionService
	Services          MealPlannerServices
}

func DefaultRouterConfig() RouterConfig {
	return RouterConfig{RateLimit: 100, RateWindow: time.Minute}
}

// NewRouter builds the engine: infrastructure endpoints at the root and the
// meal planner API under /api. With an AuthService the API sits behind JWT
// auth and permissions; without one it is public, optionally gated by API keys.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		// promhttp negotiates its own encoding
		gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
		withLoggingService(cfg.LoggingService),
	)
	if cfg.RateLimit > 0 {
		router.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).RateLimit())
	}

	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	registerSwagger(router, cfg.SwaggerUser, cfg.SwaggerPass)

	api := router.Group("/api")
	if cfg.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	routes := NewMealPlannerRoutes(cfg.Services)
	if cfg.AuthService != nil {
		authRoutes := NewAuthRoutes(cfg.AuthService)
		authRoutes.RegisterPublicRoutes(api)
		routes.RegisterProtectedRoutes(authRoutes.Protected(api, &cfg), &cfg)
		return router
	}

	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
	if cfg.Idempotency != nil {
		api.Use(cfg.Idempotency.Middleware())
	}
	routes.RegisterPublicRoutes(api)
	return router
}

func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language",
			"Authorization", "X-Refresh-Token", "X-API-Key", "X-Request-ID",
			middleware.IdempotencyKeyHeader,
		},
		ExposeHeaders: []string{
			"X-Request-ID", "Location", "Retry-After",
			"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset",
			middleware.IdempotencyReplayedHeader,
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// withLoggingService exposes the audit sink to handlers.
func withLoggingService(logs service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyLoggingService, logs)
		c.Next()
	}
}

// registerSwagger serves the API docs, behind basic auth when credentials are set.
func registerSwagger(router *gin.Engine, user, pass string) {
	docs := ginSwagger.WrapHandler(swaggerFiles.Handler)
	if user == "" || pass == "" {
		router.GET("/swagger/*any", docs)
		return
	}
	router.Group("/swagger", gin.BasicAuth(gin.Accounts{user: pass})).GET("/*any", docs)
}
