// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/guttosm/meal-planner/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                *repository.MongoDB
	HouseholdRepo     repository.HouseholdRepositoryInterface
	IngredientRepo    repository.IngredientRepositoryInterface
	RecipeRepo        repository.RecipeRepositoryInterface
	MealPlanRepo      repository.MealPlanRepositoryInterface
	PantryRepo        repository.PantryRepositoryInterface
	ShoppingListRepo  repository.ShoppingListRepositoryInterface
	LoggingService    service.LoggingService
	CircuitBreakers   map[string]*circuitbreaker.CircuitBreaker
	UserRepo          repository.UserRepositoryInterface
	RoleRepo          repository.RoleRepositoryInterface
	PermissionRepo    repository.PermissionRepositoryInterface
	TokenRepo         repository.TokenRepositoryInterface
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	if err := db.SetLogsTTL(context.Background(), cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Dur("ttl", cfg.LogsTTL).Msg("Failed to set logs TTL index")
	}

	return newDatabaseComponents(db, cfg)
}

// newDatabaseComponents wraps every domain repository in its own circuit breaker
// so that one slow collection does not trip the others.
func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	breakers := make(map[string]*circuitbreaker.CircuitBreaker)
	cb := func(name string) *circuitbreaker.CircuitBreaker {
		breaker := newCircuitBreaker(name, cfg)
		breakers[name] = breaker
		return breaker
	}

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb("mongodb_logs"))

	components := &DatabaseComponents{
		DB:               db,
		HouseholdRepo:    repository.NewHouseholdRepositoryWithCircuitBreaker(repository.NewHouseholdRepository(db), cb("mongodb_households")),
		IngredientRepo:   repository.NewIngredientRepositoryWithCircuitBreaker(repository.NewIngredientRepository(db), cb("mongodb_ingredients")),
		RecipeRepo:       repository.NewRecipeRepositoryWithCircuitBreaker(repository.NewRecipeRepository(db), cb("mongodb_recipes")),
		MealPlanRepo:     repository.NewMealPlanRepositoryWithCircuitBreaker(repository.NewMealPlanRepository(db), cb("mongodb_meal_plans")),
		PantryRepo:       repository.NewPantryRepositoryWithCircuitBreaker(repository.NewPantryRepository(db), cb("mongodb_pantries")),
		ShoppingListRepo: repository.NewShoppingListRepositoryWithCircuitBreaker(repository.NewShoppingListRepository(db), cb("mongodb_shopping_lists")),
		LoggingService:   service.NewLoggingService(logsRepo),
		CircuitBreakers:  breakers,
		UserRepo:         repository.NewUserRepository(db),
		RoleRepo:         repository.NewRoleRepository(db),
		PermissionRepo:   repository.NewPermissionRepository(db),
		TokenRepo:        repository.NewTokenRepository(db),
	}

	if err := seedAccessControl(context.Background(), components.RoleRepo, components.PermissionRepo); err != nil {
		log.Warn().Err(err).Msg("Default roles and permissions are incomplete")
	}

	return components
}

// newCircuitBreaker builds a breaker that only counts database outages, not
// missing documents or duplicate keys, and publishes its state to Prometheus.
func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.SetCircuitBreakerState(name, int(circuitbreaker.StateClosed))
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		IsFailure:        repository.IsInfrastructureError,
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.SetCircuitBreakerState(name, int(to))
		},
	})
}

// Close releases the MongoDB connection.
func (d *DatabaseComponents) Close(ctx context.Context) error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close(ctx)
}
