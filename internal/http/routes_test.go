package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestAuthRoutes_RegisterPublicRoutes(t *testing.T) {
	router := gin.New()
	NewAuthRoutes(new(mocks.MockAuthService)).RegisterPublicRoutes(router.Group("/api"))

	for _, path := range []string{"/api/auth/login", "/api/auth/register", "/api/auth/refresh"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
		assert.NotEqual(t, http.StatusNotFound, w.Code, path)
	}
}

func TestAuthRoutes_Protected(t *testing.T) {
	userID := primitive.NewObjectID()
	auth := new(mocks.MockAuthService)
	auth.On("ValidateToken", mock.Anything, "good").Return(&dto.Claims{UserID: userID, Email: "ana@example.com"}, nil)
	auth.On("ValidateToken", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	store := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{})
	t.Cleanup(store.Stop)

	router := gin.New()
	protected := NewAuthRoutes(auth).Protected(router.Group("/api"), &RouterConfig{
		RateLimit:   100,
		RateWindow:  time.Minute,
		Idempotency: store,
	})
	created := 0
	protected.POST("/households", func(c *gin.Context) {
		created++
		assert.Equal(t, userID.Hex(), middleware.UserID(c))
		c.JSON(http.StatusCreated, gin.H{"n": created})
	})

	send := func(token, key string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/households", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		if key != "" {
			req.Header.Set(middleware.IdempotencyKeyHeader, key)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, send("", "").Code)
	assert.Equal(t, http.StatusUnauthorized, send("bad", "").Code)

	first := send("good", "k1")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.NotEmpty(t, first.Header().Get("X-RateLimit-Remaining"))

	replayed := send("good", "k1")
	assert.Equal(t, "true", replayed.Header().Get(middleware.IdempotencyReplayedHeader))
	assert.Equal(t, 1, created)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code, "logout is registered behind auth")
}

// Tests for MealPlannerRoutes

func TestNewMealPlannerRoutes(t *testing.T) {
	t.Run("all services", func(t *testing.T) {
		routes := NewMealPlannerRoutes(MealPlannerServices{
			Households:    new(mocks.MockHouseholdService),
			Ingredients:   new(mocks.MockIngredientService),
			Recipes:       new(mocks.MockRecipeService),
			MealPlans:     new(mocks.MockMealPlanService),
			Pantries:      new(mocks.MockPantryService),
			ShoppingLists: new(mocks.MockShoppingListService),
		})

		assert.NotNil(t, routes.households)
		assert.NotNil(t, routes.ingredients)
		assert.NotNil(t, routes.recipes)
		assert.NotNil(t, routes.mealPlans)
		assert.NotNil(t, routes.pantries)
		assert.NotNil(t, routes.shoppingLists)
	})

	t.Run("only ingredients", func(t *testing.T) {
		routes := NewMealPlannerRoutes(MealPlannerServices{Ingredients: new(mocks.MockIngredientService)})

		assert.NotNil(t, routes.ingredients)
		assert.Nil(t, routes.households)
		assert.Nil(t, routes.recipes)
		assert.Nil(t, routes.shoppingLists)
	})
}

func TestMealPlannerRoutes_RegisterPublicRoutes(t *testing.T) {
	routes := NewMealPlannerRoutes(MealPlannerServices{Households: new(mocks.MockHouseholdService)})

	router := gin.New()
	routes.RegisterPublicRoutes(router.Group("/api"))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"units are always served", http.MethodGet, "/api/units", http.StatusOK},
		{"household route registered", http.MethodGet, "/api/households/bad-id", http.StatusBadRequest},
		{"recipes not configured", http.MethodGet, "/api/recipes/household/" + primitive.NewObjectID().Hex(), http.StatusNotFound},
		{"pantry not configured", http.MethodGet, "/api/households/" + primitive.NewObjectID().Hex() + "/pantry", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestMealPlannerRoutes_RegisterProtectedRoutes(t *testing.T) {
	permID := primitive.NewObjectID().Hex()

	tests := []struct {
		name            string
		permErr         error
		rolePermissions []string
		expectedStatus  int
	}{
		{name: "role grants the permission", rolePermissions: []string{permID}, expectedStatus: http.StatusOK},
		{name: "role lacks the permission", rolePermissions: []string{}, expectedStatus: http.StatusForbidden},
		{name: "permission cannot be resolved", permErr: assert.AnError, expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roleID := primitive.NewObjectID()

			permService := new(mocks.MockPermissionService)
			permService.On("PermissionID", mock.Anything, ResourceIngredients, "read").Return(permID, tt.permErr)
			roleService := new(mocks.MockRoleService)
			roleService.On("GrantedPermissions", mock.Anything, []string{roleID.Hex()}).
				Return(model.GrantedBy([]*model.Role{{ID: roleID, Permissions: tt.rolePermissions, Active: true}}), nil).Maybe()
			ingredients := new(mocks.MockIngredientService)
			ingredients.On("List", mock.Anything).Return([]*model.Ingredient{}, nil).Maybe()

			routes := NewMealPlannerRoutes(MealPlannerServices{Ingredients: ingredients})
			cfg := &RouterConfig{RoleService: roleService, PermissionService: permService}

			router := gin.New()
			protected := router.Group("/api")
			protected.Use(func(c *gin.Context) {
				c.Set(middleware.ContextKeyClaims, &dto.Claims{Roles: []string{roleID.Hex()}})
				c.Next()
			})
			routes.RegisterProtectedRoutes(protected, cfg)

			req := httptest.NewRequest(http.MethodGet, "/api/ingredients", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				ingredients.AssertNotCalled(t, "List", mock.Anything)
			}
		})
	}
}

func TestMealPlannerRoutes_RegisterProtectedRoutes_WithoutAccessControl(t *testing.T) {
	ingredients := new(mocks.MockIngredientService)
	ingredients.On("List", mock.Anything).Return([]*model.Ingredient{}, nil).Once()

	router := gin.New()
	NewMealPlannerRoutes(MealPlannerServices{Ingredients: ingredients}).
		RegisterProtectedRoutes(router.Group("/api"), &RouterConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ingredients", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	ingredients.AssertExpectations(t)
}

func TestMealPlannerRoutes_HouseholdMembership(t *testing.T) {
	caller := primitive.NewObjectID()
	householdID := primitive.NewObjectID()

	tests := []struct {
		name           string
		path           string
		member         bool
		checked        bool
		expectedStatus int
	}{
		{name: "member reads the household", path: "/api/households/" + householdID.Hex(), member: true, checked: true, expectedStatus: http.StatusOK},
		{name: "outsider is refused", path: "/api/households/" + householdID.Hex(), checked: true, expectedStatus: http.StatusForbidden},
		{name: "own households need no membership", path: "/api/households/mine", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			households := new(mocks.MockHouseholdService)
			if tt.checked {
				households.On("IsMember", mock.Anything, householdID, caller.Hex()).Return(tt.member, nil).Once()
			}
			households.On("Get", mock.Anything, householdID).
				Return(&model.Household{ID: householdID, Name: "Flat 4"}, nil).Maybe()
			households.On("ListByUser", mock.Anything, caller.Hex()).Return([]*model.Household{}, nil).Maybe()

			router := gin.New()
			protected := router.Group("/api")
			protected.Use(func(c *gin.Context) {
				middleware.SetIdentity(c, caller, "cook@example.com")
				c.Next()
			})
			NewMealPlannerRoutes(MealPlannerServices{Households: households}).
				RegisterProtectedRoutes(protected, &RouterConfig{})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			households.AssertExpectations(t)
			if tt.expectedStatus == http.StatusForbidden {
				households.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
			}
		})
	}
}
