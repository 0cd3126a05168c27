// Package app provides router configuration.
package app

import (
	"sort"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/http"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// Idempotency is also referenced from Config; App.Close stops it.
	Idempotency *middleware.IdempotencyStore
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services http.MealPlannerServices,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}
	if loggingService != nil {
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	}

	healthHandler := http.NewHealthHandler()

	// Register circuit breakers and the database ping for health monitoring
	if dbComponents != nil {
		names := make([]string, 0, len(dbComponents.CircuitBreakers))
		for name := range dbComponents.CircuitBreakers {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			healthHandler.RegisterCircuitBreaker(name, dbComponents.CircuitBreakers[name])
		}

		if db := dbComponents.DB; db != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(db.HealthCheck))
		}
	}

	// Initialize authentication service
	var authService service.AuthService
	if dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.RoleRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	// Initialize permission service
	var permissionService service.PermissionService
	if dbComponents != nil && dbComponents.PermissionRepo != nil {
		permissionService = service.NewPermissionService(dbComponents.PermissionRepo)
	}

	// Initialize role service
	var roleService service.RoleService
	if dbComponents != nil && dbComponents.RoleRepo != nil {
		roleService = service.NewRoleService(dbComponents.RoleRepo)
	}

	idempotency := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{TTL: cfg.Server.IdempotencyTTL})

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		EnableAuth:        cfg.Auth.Enabled,
		APIKeys:           cfg.Auth.APIKeys,
		Idempotency:       idempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		RequestTimeout:    cfg.Server.RequestTimeout,
		LoggingService:    loggingService,
		AuthService:       authService,
		RoleService:       roleService,
		PermissionService: permissionService,
		Services:          services,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
		Idempotency:   idempotency,
	}
}
