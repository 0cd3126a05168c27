// Package app provides service initialization.
package app

import (
	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/http"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/guttosm/meal-planner/internal/service"
	"github.com/guttosm/meal-planner/internal/service/cache"
)

const ingredientNameCacheShards = 16

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Services  http.MealPlannerServices
	NameCache *cache.ShardedCache[string]
}

// InitializeServices initializes business logic services. Without a database
// every service still exists but reports its repository as unavailable.
func InitializeServices(cfg config.CacheConfig, db *DatabaseComponents) *ServiceComponents {
	var (
		households    repository.HouseholdRepositoryInterface
		ingredients   repository.IngredientRepositoryInterface
		recipes       repository.RecipeRepositoryInterface
		mealPlans     repository.MealPlanRepositoryInterface
		pantries      repository.PantryRepositoryInterface
		shoppingLists repository.ShoppingListRepositoryInterface
	)
	if db != nil {
		households = db.HouseholdRepo
		ingredients = db.IngredientRepo
		recipes = db.RecipeRepo
		mealPlans = db.MealPlanRepo
		pantries = db.PantryRepo
		shoppingLists = db.ShoppingListRepo
	}

	components := &ServiceComponents{}

	var opts []service.IngredientOption
	if cfg.Size > 0 {
		components.NameCache = cache.NewSharded[string]("ingredient_names", cfg.Size, cfg.TTL, ingredientNameCacheShards)
		opts = append(opts, service.WithNameCache(components.NameCache))
	}

	components.Services = http.MealPlannerServices{
		Households:    service.NewHouseholdService(households),
		Ingredients:   service.NewIngredientService(ingredients, opts...),
		Recipes:       service.NewRecipeService(recipes, households, ingredients),
		MealPlans:     service.NewMealPlanService(mealPlans, households, recipes),
		Pantries:      service.NewPantryService(pantries, households),
		ShoppingLists: service.NewShoppingListService(shoppingLists, mealPlans, households),
	}

	return components
}
