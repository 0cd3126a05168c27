//go:build integration

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/guttosm/meal-planner/internal/service"
)

func setupMealPlannerIntegrationRouter(t *testing.T) (*gin.Engine, *repository.MongoDB) {
	t.Helper()

	db, err := repository.NewMongoDB(getSharedContainerURI(), sanitizeDBNameForHTTP(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(context.Background())
	})

	cb := func() *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.DefaultConfig())
	}
	households := repository.NewHouseholdRepositoryWithCircuitBreaker(repository.NewHouseholdRepository(db), cb())
	ingredients := repository.NewIngredientRepositoryWithCircuitBreaker(repository.NewIngredientRepository(db), cb())
	recipes := repository.NewRecipeRepositoryWithCircuitBreaker(repository.NewRecipeRepository(db), cb())
	mealPlans := repository.NewMealPlanRepositoryWithCircuitBreaker(repository.NewMealPlanRepository(db), cb())
	pantries := repository.NewPantryRepositoryWithCircuitBreaker(repository.NewPantryRepository(db), cb())
	lists := repository.NewShoppingListRepositoryWithCircuitBreaker(repository.NewShoppingListRepository(db), cb())
	logs := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb())

	cfg := RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: 10 * time.Second,
		LoggingService: service.NewLoggingService(logs),
		Services: MealPlannerServices{
			Households:    service.NewHouseholdService(households),
			Ingredients:   service.NewIngredientService(ingredients),
			Recipes:       service.NewRecipeService(recipes, households, ingredients),
			MealPlans:     service.NewMealPlanService(mealPlans, households, recipes),
			Pantries:      service.NewPantryService(pantries, households),
			ShoppingLists: service.NewShoppingListService(lists, mealPlans, households),
		},
	}

	healthHandler := NewHealthHandler()
	healthHandler.RegisterChecker("mongodb", HealthCheckFunc(db.HealthCheck))
	return NewRouter(healthHandler, cfg), db
}

func TestIntegration_WeeklyPlanToShoppingList(t *testing.T) {
	router, _ := setupMealPlannerIntegrationRouter(t)

	w := performRequest(router, http.MethodPost, "/api/households", dto.HouseholdRequest{Name: "The Smiths"})
	require.Equal(t, http.StatusCreated, w.Code)
	household := decodeData[dto.HouseholdResponse](t, w)

	w = performRequest(router, http.MethodPost, "/api/ingredients", dto.IngredientRequest{Name: "Spaghetti", Category: "Grains"})
	require.Equal(t, http.StatusCreated, w.Code)
	pasta := decodeData[dto.IngredientResponse](t, w)

	w = performRequest(router, http.MethodPost, "/api/ingredients", dto.IngredientRequest{Name: "Spaghetti"})
	require.Equal(t, http.StatusConflict, w.Code)

	w = performRequest(router, http.MethodPost, "/api/recipes/household/"+household.ID, dto.RecipeRequest{
		Name:        "Buttered noodles",
		ServingSize: 2,
		Ingredients: []dto.RecipeIngredientRequest{
			{IngredientID: pasta.ID, Quantity: decimal.NewFromInt(200), Unit: model.Gram},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	recipe := decodeData[dto.RecipeResponse](t, w)

	w = performRequest(router, http.MethodGet, "/api/recipes/"+recipe.ID+"/scale?servings=6", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "600g", decodeData[dto.RecipeResponse](t, w).Ingredients[0].Display)

	w = performRequest(router, http.MethodPost, "/api/meal-plans/household/"+household.ID, dto.MealPlanRequest{
		WeekStartDate: futureWeek,
		PlannedMeals: []dto.PlannedMealRequest{
			{RecipeID: recipe.ID, DayOfWeek: 1, MealType: model.Dinner, Servings: 4},
			{RecipeID: recipe.ID, DayOfWeek: 2, MealType: model.Lunch, Servings: 1},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	plan := decodeData[dto.MealPlanResponse](t, w)

	w = performRequest(router, http.MethodPost, "/api/shopping-lists/generate/meal-plan/"+plan.ID+"/household/"+household.ID, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	list := decodeData[dto.ShoppingListResponse](t, w)
	assert.Equal(t, plan.ID, list.MealPlanID)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Spaghetti", list.Items[0].IngredientName)
	assert.Equal(t, "500g", list.Items[0].Display)

	togglePath := "/api/shopping-lists/" + list.ID + "/items/" + list.Items[0].ID + "/toggle"
	w = performRequest(router, http.MethodPatch, togglePath, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(router, http.MethodGet, "/api/shopping-lists/"+list.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeData[dto.ShoppingListResponse](t, w).Items[0].IsChecked)

	w = performRequest(router, http.MethodPatch, togglePath, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(router, http.MethodGet, "/api/shopping-lists/"+list.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, list.Items, decodeData[dto.ShoppingListResponse](t, w).Items)
}

func TestIntegration_Pantry(t *testing.T) {
	router, _ := setupMealPlannerIntegrationRouter(t)

	w := performRequest(router, http.MethodPost, "/api/households", dto.HouseholdRequest{Name: "Flat 4"})
	require.Equal(t, http.StatusCreated, w.Code)
	household := decodeData[dto.HouseholdResponse](t, w)
	pantryPath := "/api/households/" + household.ID + "/pantry"

	w = performRequest(router, http.MethodGet, pantryPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodPost, pantryPath, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	pantry := decodeData[dto.PantryResponse](t, w)

	w = performRequest(router, http.MethodPost, pantryPath, nil)
	assert.Equal(t, http.StatusConflict, w.Code, "a household has at most one pantry")

	w = performRequest(router, http.MethodPost, "/api/ingredients", dto.IngredientRequest{Name: "Rice"})
	require.Equal(t, http.StatusCreated, w.Code)
	rice := decodeData[dto.IngredientResponse](t, w)

	w = performRequest(router, http.MethodPost, pantryPath+"/items", dto.PantryItemRequest{
		IngredientID: rice.ID, Quantity: decimal.RequireFromString("1.5"), Unit: model.Kilogram,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	item := decodeData[dto.PantryItemResponse](t, w)
	assert.Equal(t, "1.5kg", item.Display)

	itemPath := pantryPath + "/" + pantry.ID + "/items/" + item.ID
	w = performRequest(router, http.MethodDelete, itemPath, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(router, http.MethodDelete, itemPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIntegration_ReadinessWithMongoDB(t *testing.T) {
	router, _ := setupMealPlannerIntegrationRouter(t)

	w := performRequest(router, http.MethodGet, "/readyz", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mongodb")
}

func TestIntegration_RequestsAreLogged(t *testing.T) {
	router, db := setupMealPlannerIntegrationRouter(t)

	w := performRequest(router, http.MethodGet, "/api/units", nil)
	require.Equal(t, http.StatusOK, w.Code)

	logsRepo := repository.NewLogsRepository(db)
	assert.Eventually(t, func() bool {
		logs, err := logsRepo.Query(context.Background(), model.LogQueryOptions{Path: "/api/units", Limit: 10})
		return err == nil && len(logs) >= 1
	}, 2*time.Second, 50*time.Millisecond)
}

func TestIntegration_RateLimiting(t *testing.T) {
	cfg := RouterConfig{
		RateLimit:  5,
		RateWindow: time.Second,
	}
	router := NewRouter(NewHealthHandler(), cfg)

	for i := 0; i < 5; i++ {
		w := performRequest(router, http.MethodGet, "/api/units", nil)
		assert.Equal(t, http.StatusOK, w.Code, "Request %d", i+1)
	}

	w := performRequest(router, http.MethodGet, "/api/units", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestIntegration_APIKeyAuth(t *testing.T) {
	cfg := RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
		EnableAuth: true,
		APIKeys:    map[string]bool{"valid-key": true},
	}
	router := NewRouter(NewHealthHandler(), cfg)

	tests := []struct {
		name           string
		path           string
		apiKey         string
		expectedStatus int
	}{
		{"missing API key", "/api/units", "", http.StatusUnauthorized},
		{"invalid API key", "/api/units", "invalid-key", http.StatusUnauthorized},
		{"valid API key in header", "/api/units", "valid-key", http.StatusOK},
		{"valid API key in query param", "/api/units?api_key=valid-key", "", http.StatusOK},
		{"health endpoints bypass auth", "/healthz", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
