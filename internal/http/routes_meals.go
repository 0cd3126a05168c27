package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/service"
)

// Permission resources guarded on the meal planner routes. Each has a read and a write action.
const (
	ResourceHouseholds    = "households"
	ResourceIngredients   = "ingredients"
	ResourceRecipes       = "recipes"
	ResourceMealPlans     = "meal_plans"
	ResourcePantries      = "pantries"
	ResourceShoppingLists = "shopping_lists"
)

// MealPlannerServices bundles the domain services the routes are served by.
type MealPlannerServices struct {
	Households    service.HouseholdService
	Ingredients   service.IngredientService
	Recipes       service.RecipeService
	MealPlans     service.MealPlanService
	Pantries      service.PantryService
	ShoppingLists service.ShoppingListService
}

// MealPlannerRoutes handles meal planner route registration.
type MealPlannerRoutes struct {
	households    *HouseholdHandler
	ingredients   *IngredientHandler
	recipes       *RecipeHandler
	mealPlans     *MealPlanHandler
	pantries      *PantryHandler
	shoppingLists *ShoppingListHandler
	members       middleware.MembershipChecker
}

// NewMealPlannerRoutes creates the handlers for every configured service.
// Routes of a nil service are not registered.
func NewMealPlannerRoutes(s MealPlannerServices) *MealPlannerRoutes {
	r := &MealPlannerRoutes{}
	if s.Households != nil {
		r.households = NewHouseholdHandler(s.Households)
		r.members = s.Households
	}
	if s.Ingredients != nil {
		r.ingredients = NewIngredientHandler(s.Ingredients)
	}
	if s.Recipes != nil {
		r.recipes = NewRecipeHandler(s.Recipes, s.Ingredients)
	}
	if s.MealPlans != nil {
		r.mealPlans = NewMealPlanHandler(s.MealPlans)
	}
	if s.Pantries != nil {
		r.pantries = NewPantryHandler(s.Pantries, s.Ingredients)
	}
	if s.ShoppingLists != nil {
		r.shoppingLists = NewShoppingListHandler(s.ShoppingLists, s.Ingredients)
	}
	return r
}

// guard returns the middleware that enforces one permission on a route.
type guard func(resource, action string) []gin.HandlerFunc

func noGuard(string, string) []gin.HandlerFunc { return nil }

// memberGuard returns the middleware that admits only members of the
// household named by a path parameter.
type memberGuard func(param string) []gin.HandlerFunc

func noMemberGuard(string) []gin.HandlerFunc { return nil }

// RegisterPublicRoutes registers every route without authorization (when auth is disabled).
func (r *MealPlannerRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg, noGuard, noMemberGuard)
}

// RegisterProtectedRoutes registers every route behind the permission
// middleware; routes scoped to a household also require membership of it.
// Without role and permission services the permission check is skipped.
func (r *MealPlannerRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	permissions := guard(noGuard)
	if cfg.RoleService != nil && cfg.PermissionService != nil {
		permissions = func(resource, action string) []gin.HandlerFunc {
			return []gin.HandlerFunc{
				middleware.RequirePermission(resource, action, cfg.PermissionService, cfg.RoleService),
			}
		}
	}
	members := memberGuard(noMemberGuard)
	if r.members != nil {
		members = func(param string) []gin.HandlerFunc {
			return []gin.HandlerFunc{middleware.RequireHouseholdMember(param, r.members)}
		}
	}
	r.register(protected, permissions, members)
}

func (r *MealPlannerRoutes) register(rg *gin.RouterGroup, auth guard, member memberGuard) {
	rg.GET("/units", ListUnits)

	with := func(resource, action string, h gin.HandlerFunc) []gin.HandlerFunc {
		return append(auth(resource, action), h)
	}
	// in additionally requires membership of the household in param.
	in := func(param, resource, action string, h gin.HandlerFunc) []gin.HandlerFunc {
		return append(append(auth(resource, action), member(param)...), h)
	}

	if h := r.households; h != nil {
		g := rg.Group("/households")
		g.GET("/mine", with(ResourceHouseholds, "read", h.ListMine)...)
		g.GET("/user/:userId", with(ResourceHouseholds, "read", h.ListByUser)...)
		g.GET("/:id", in("id", ResourceHouseholds, "read", h.Get)...)
		g.POST("", with(ResourceHouseholds, "write", h.Create)...)
		g.PUT("/:id", in("id", ResourceHouseholds, "write", h.Update)...)
		g.DELETE("/:id", in("id", ResourceHouseholds, "write", h.Delete)...)
		g.POST("/:id/members", in("id", ResourceHouseholds, "write", h.AddMember)...)
		g.DELETE("/:id/members/:userId", in("id", ResourceHouseholds, "write", h.RemoveMember)...)
		g.PUT("/:id/members/:userId/role", in("id", ResourceHouseholds, "write", h.UpdateMemberRole)...)
	}

	if h := r.pantries; h != nil {
		g := rg.Group("/households/:id/pantry")
		g.GET("", in("id", ResourcePantries, "read", h.Get)...)
		g.POST("", in("id", ResourcePantries, "write", h.Create)...)
		g.POST("/items", in("id", ResourcePantries, "write", h.AddItem)...)
		g.PUT("/:pantryId/items/:itemId", in("id", ResourcePantries, "write", h.UpdateItem)...)
		g.DELETE("/:pantryId/items/:itemId", in("id", ResourcePantries, "write", h.RemoveItem)...)
	}

	if h := r.ingredients; h != nil {
		g := rg.Group("/ingredients")
		g.GET("", with(ResourceIngredients, "read", h.List)...)
		g.GET("/search", with(ResourceIngredients, "read", h.Search)...)
		g.GET("/:id", with(ResourceIngredients, "read", h.Get)...)
		g.POST("", with(ResourceIngredients, "write", h.Create)...)
		g.PUT("/:id", with(ResourceIngredients, "write", h.Update)...)
		g.DELETE("/:id", with(ResourceIngredients, "write", h.Delete)...)
	}

	if h := r.recipes; h != nil {
		g := rg.Group("/recipes")
		g.GET("/household/:householdId", in("householdId", ResourceRecipes, "read", h.ListByHousehold)...)
		g.GET("/household/:householdId/search", in("householdId", ResourceRecipes, "read", h.Search)...)
		g.POST("/household/:householdId", in("householdId", ResourceRecipes, "write", h.Create)...)
		g.GET("/:id", with(ResourceRecipes, "read", h.Get)...)
		g.GET("/:id/scale", with(ResourceRecipes, "read", h.Scale)...)
		g.PUT("/:id", with(ResourceRecipes, "write", h.Update)...)
		g.DELETE("/:id", with(ResourceRecipes, "write", h.Delete)...)
	}

	if h := r.mealPlans; h != nil {
		g := rg.Group("/meal-plans")
		g.GET("/household/:householdId", in("householdId", ResourceMealPlans, "read", h.ListByHousehold)...)
		g.POST("/household/:householdId", in("householdId", ResourceMealPlans, "write", h.Create)...)
		g.GET("/:id", with(ResourceMealPlans, "read", h.Get)...)
		g.PUT("/:id", with(ResourceMealPlans, "write", h.Update)...)
		g.DELETE("/:id", with(ResourceMealPlans, "write", h.Delete)...)
	}

	if h := r.shoppingLists; h != nil {
		g := rg.Group("/shopping-lists")
		g.GET("/household/:householdId", in("householdId", ResourceShoppingLists, "read", h.ListByHousehold)...)
		g.POST("/household/:householdId", in("householdId", ResourceShoppingLists, "write", h.Create)...)
		g.POST("/generate/meal-plan/:mealPlanId/household/:householdId", in("householdId", ResourceShoppingLists, "write", h.Generate)...)
		g.GET("/:id", with(ResourceShoppingLists, "read", h.Get)...)
		g.PUT("/:id", with(ResourceShoppingLists, "write", h.Update)...)
		g.DELETE("/:id", with(ResourceShoppingLists, "write", h.Delete)...)
		g.PATCH("/:id/items/:itemId/toggle", with(ResourceShoppingLists, "write", h.ToggleItem)...)
	}
}
