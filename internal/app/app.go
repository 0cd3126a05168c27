// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/http"
	"github.com/guttosm/meal-planner/internal/logger"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/seed"
	"github.com/guttosm/meal-planner/internal/service"
	"github.com/rs/zerolog/log"
)

const seedTimeout = 30 * time.Second

// ErrDatabaseUnavailable is returned by operations that cannot run without MongoDB.
var ErrDatabaseUnavailable = errors.New("database is not available")

// App is the wired application.
type App struct {
	Router      *gin.Engine
	Database    *DatabaseComponents
	Services    *ServiceComponents
	idempotency *middleware.IdempotencyStore
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services
	serviceComponents := InitializeServices(cfg.Cache, dbComponents)

	if cfg.Seed.Ingredients && dbComponents != nil {
		ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
		if _, err := SeedIngredients(ctx, serviceComponents.Services.Ingredients, cfg.Seed.File); err != nil {
			log.Warn().Err(err).Msg("Failed to seed ingredient catalog")
		}
		cancel()
	}

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents.Services, dbComponents, cfg)

	return &App{
		Router:      http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		Database:    dbComponents,
		Services:    serviceComponents,
		idempotency: routerComponents.Idempotency,
	}
}

// Close flushes pending log entries, stops background cache workers and
// disconnects from MongoDB.
func (a *App) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()
	if a.idempotency != nil {
		a.idempotency.Stop()
	}
	if a.Services != nil && a.Services.NameCache != nil {
		a.Services.NameCache.Stop()
	}
	return a.Database.Close(ctx)
}

// SeedIngredients imports the catalog at path (the embedded one when empty)
// and returns how many ingredients were new.
func SeedIngredients(ctx context.Context, ingredients service.IngredientService, path string) (int, error) {
	if ingredients == nil {
		return 0, ErrDatabaseUnavailable
	}

	catalog, err := seed.Load(path)
	if err != nil {
		return 0, err
	}

	inserted, err := ingredients.Seed(ctx, catalog)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			return 0, ErrDatabaseUnavailable
		}
		return inserted, fmt.Errorf("seed ingredients: %w", err)
	}
	return inserted, nil
}
