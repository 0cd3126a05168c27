package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/service"
)

// RecipeHandler serves household recipes and recipe scaling.
type RecipeHandler struct {
	recipes     service.RecipeService
	ingredients service.IngredientService
}

// NewRecipeHandler creates a new RecipeHandler. ingredients resolves display
// names in responses and may be nil.
func NewRecipeHandler(recipes service.RecipeService, ingredients service.IngredientService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, ingredients: ingredients}
}

// Get handles GET /api/recipes/{id}.
//
// @Summary      Get recipe
// @Tags         Recipes
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeResponse}
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Security     BearerAuth
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if recipe == nil {
		respondNotFound(c, "Recipe", id)
		return
	}
	names := ingredientNames(c, h.ingredients, recipe.IngredientIDs())
	NewResponseBuilder(c).SuccessOK(dto.NewRecipeResponse(recipe, names))
}

// ListByHousehold handles GET /api/recipes/household/{householdId}.
//
// @Summary      List household recipes
// @Tags         Recipes
// @Produce      json
// @Param        householdId path string true "Household ID"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.RecipeResponse}
// @Security     BearerAuth
// @Router       /api/recipes/household/{householdId} [get]
func (h *RecipeHandler) ListByHousehold(c *gin.Context) {
	householdID, ok := pathID(c, "householdId")
	if !ok {
		return
	}

	recipes, err := h.recipes.ListByHousehold(c.Request.Context(), householdID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	names := ingredientNames(c, h.ingredients, dto.RecipeIngredientIDs(recipes...))
	NewResponseBuilder(c).SuccessOK(dto.NewRecipeResponses(recipes, names))
}

// Search handles GET /api/recipes/household/{householdId}/search?searchTerm=.
//
// @Summary      Search household recipes
// @Tags         Recipes
// @Produce      json
// @Param        householdId path string true "Household ID"
// @Param        searchTerm query string false "Matched against name and description"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.RecipeResponse}
// @Security     BearerAuth
// @Router       /api/recipes/household/{householdId}/search [get]
func (h *RecipeHandler) Search(c *gin.Context) {
	householdID, ok := pathID(c, "householdId")
	if !ok {
		return
	}

	recipes, err := h.recipes.Search(c.Request.Context(), householdID, c.Query("searchTerm"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	names := ingredientNames(c, h.ingredients, dto.RecipeIngredientIDs(recipes...))
	NewResponseBuilder(c).SuccessOK(dto.NewRecipeResponses(recipes, names))
}

// Create handles POST /api/recipes/household/{householdId}.
//
// @Summary      Create recipe
// @Tags         Recipes
// @Accept       json
// @Produce      json
// @Param        householdId path string true "Household ID"
// @Param        request body dto.RecipeRequest true "Recipe"
// @Success      201 {object} dto.SuccessResponse{data=dto.RecipeResponse}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Household or ingredient not found"
// @Security     BearerAuth
// @Router       /api/recipes/household/{householdId} [post]
func (h *RecipeHandler) Create(c *gin.Context) {
	householdID, ok := pathID(c, "householdId")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.RecipeRequest](c)
	if !ok {
		return
	}

	recipe := req.ToModel(householdID)
	if err := h.recipes.Create(c.Request.Context(), recipe); err != nil {
		respondServiceError(c, err)
		return
	}

	audit(c, "recipe_created", "Recipe created", map[string]interface{}{
		"recipe_id":    recipe.ID.Hex(),
		"household_id": householdID.Hex(),
	})
	names := ingredientNames(c, h.ingredients, recipe.IngredientIDs())
	respondCreated(c, resourcePath("/api/recipes", recipe.ID.Hex()), dto.NewRecipeResponse(recipe, names))
}

// Update handles PUT /api/recipes/{id}.
//
// @Summary      Update recipe
// @Description  Overwrites the recipe and reconciles its ingredient lines by ingredient id.
// @Tags         Recipes
// @Accept       json
// @Param        id path string true "Recipe ID"
// @Param        request body dto.RecipeRequest true "Recipe"
// @Success      204
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Security     BearerAuth
// @Router       /api/recipes/{id} [put]
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.RecipeRequest](c)
	if !ok {
		return
	}

	// The recipe keeps its household; only its fields are replaced.
	changes := req.ToModel(primitive.NilObjectID)
	if err := h.recipes.Update(c.Request.Context(), id, changes); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// Delete handles DELETE /api/recipes/{id}.
//
// @Summary      Delete recipe
// @Tags         Recipes
// @Param        id path string true "Recipe ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Security     BearerAuth
// @Router       /api/recipes/{id} [delete]
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// Scale handles GET /api/recipes/{id}/scale?servings=N.
//
// @Summary      Scale recipe
// @Description  Returns the recipe with every quantity multiplied by servings / serving_size. Nothing is stored.
// @Tags         Recipes
// @Produce      json
// @Param        id path string true "Recipe ID"
// @Param        servings query int true "Target servings"
// @Success      200 {object} dto.SuccessResponse{data=dto.RecipeResponse}
// @Failure      400 {object} dto.ErrorResponse "Servings missing or not positive"
// @Failure      404 {object} dto.ErrorResponse "Recipe not found"
// @Security     BearerAuth
// @Router       /api/recipes/{id}/scale [get]
func (h *RecipeHandler) Scale(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	servings, err := strconv.Atoi(c.Query("servings"))
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidServings, err)
		return
	}

	scaled, err := h.recipes.Scale(c.Request.Context(), id, servings)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	names := ingredientNames(c, h.ingredients, scaled.IngredientIDs())
	NewResponseBuilder(c).SuccessOK(dto.NewRecipeResponse(scaled, names))
}
