package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/service"
)

// ShoppingListHandler serves shopping lists, including generation from a meal plan.
type ShoppingListHandler struct {
	lists       service.ShoppingListService
	ingredients service.IngredientService
}

// NewShoppingListHandler creates a new ShoppingListHandler.
func NewShoppingListHandler(lists service.ShoppingListService, ingredients service.IngredientService) *ShoppingListHandler {
	return &ShoppingListHandler{lists: lists, ingredients: ingredients}
}

// Get handles GET /api/shopping-lists/{id}.
//
// @Summary      Get shopping list
// @Tags         Shopping lists
// @Produce      json
// @Param        id path string true "Shopping list ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.ShoppingListResponse}
// @Failure      404 {object} dto.ErrorResponse "Shopping list not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id} [get]
func (h *ShoppingListHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	list, err := h.lists.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if list == nil {
		respondNotFound(c, "Shopping list", id)
		return
	}
	names := ingredientNames(c, h.ingredients, dto.ShoppingListIngredientIDs(list))
	NewResponseBuilder(c).SuccessOK(dto.NewShoppingListResponse(list, names))
}

// ListByHousehold handles GET /api/shopping-lists/household/{householdId}.
//
// @Summary      List household shopping lists
// @Tags         Shopping lists
// @Produce      json
// @Param        householdId path string true "Household ID"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.ShoppingListResponse}
// @Security     BearerAuth
// @Router       /api/shopping-lists/household/{householdId} [get]
func (h *ShoppingListHandler) ListByHousehold(c *gin.Context) {
	householdID, ok := pathID(c, "householdId")
	if !ok {
		return
	}

	lists, err := h.lists.ListByHousehold(c.Request.Context(), householdID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	names := ingredientNames(c, h.ingredients, dto.ShoppingListIngredientIDs(lists...))
	NewResponseBuilder(c).SuccessOK(dto.NewShoppingListResponses(lists, names))
}

// Create handles POST /api/shopping-lists/household/{householdId}.
//
// @Summary      Create shopping list
// @Tags         Shopping lists
// @Accept       json
// @Produce      json
// @Param        householdId path string true "Household ID"
// @Param        request body dto.ShoppingListRequest true "Shopping list"
// @Success      201 {object} dto.SuccessResponse{data=dto.ShoppingListResponse}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Household not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/household/{householdId} [post]
func (h *ShoppingListHandler) Create(c *gin.Context) {
	householdID, ok := pathID(c, "householdId")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.ShoppingListRequest](c)
	if !ok {
		return
	}

	list := req.ToModel(householdID)
	if err := h.lists.Create(c.Request.Context(), list); err != nil {
		respondServiceError(c, err)
		return
	}
	h.created(c, list)
}

// Generate handles POST /api/shopping-lists/generate/meal-plan/{mealPlanId}/household/{householdId}.
//
// @Summary      Generate shopping list from meal plan
// @Description  Scales every planned meal's recipe to the planned servings and sums quantities per ingredient and unit into a new list.
// @Tags         Shopping lists
// @Produce      json
// @Param        mealPlanId path string true "Meal plan ID"
// @Param        householdId path string true "Household ID"
// @Success      201 {object} dto.SuccessResponse{data=dto.ShoppingListResponse}
// @Failure      404 {object} dto.ErrorResponse "Meal plan or household not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/generate/meal-plan/{mealPlanId}/household/{householdId} [post]
func (h *ShoppingListHandler) Generate(c *gin.Context) {
	mealPlanID, ok := pathID(c, "mealPlanId")
	if !ok {
		return
	}
	householdID, ok := pathID(c, "householdId")
	if !ok {
		return
	}

	list, err := h.lists.GenerateFromMealPlan(c.Request.Context(), mealPlanID, householdID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	audit(c, "shopping_list_generated", "Shopping list generated from meal plan", map[string]interface{}{
		"shopping_list_id": list.ID.Hex(),
		"meal_plan_id":     mealPlanID.Hex(),
		"items":            len(list.Items),
	})
	h.created(c, list)
}

// Update handles PUT /api/shopping-lists/{id}.
//
// @Summary      Update shopping list
// @Description  Replaces the source meal plan, the notes and every item.
// @Tags         Shopping lists
// @Accept       json
// @Param        id path string true "Shopping list ID"
// @Param        request body dto.ShoppingListRequest true "Shopping list"
// @Success      204
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Shopping list not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id} [put]
func (h *ShoppingListHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.ShoppingListRequest](c)
	if !ok {
		return
	}

	if err := h.lists.Update(c.Request.Context(), id, req.MealPlan(), req.Notes, req.ToItems()); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// Delete handles DELETE /api/shopping-lists/{id}.
//
// @Summary      Delete shopping list
// @Tags         Shopping lists
// @Param        id path string true "Shopping list ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Shopping list not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id} [delete]
func (h *ShoppingListHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.lists.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// ToggleItem handles PATCH /api/shopping-lists/{id}/items/{itemId}/toggle.
//
// @Summary      Toggle shopping list item
// @Description  Flips the item's checked flag.
// @Tags         Shopping lists
// @Param        id path string true "Shopping list ID"
// @Param        itemId path string true "Item ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Shopping list or item not found"
// @Security     BearerAuth
// @Router       /api/shopping-lists/{id}/items/{itemId}/toggle [patch]
func (h *ShoppingListHandler) ToggleItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if _, err := h.lists.ToggleItem(c.Request.Context(), id, itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

func (h *ShoppingListHandler) created(c *gin.Context, list *model.ShoppingList) {
	names := ingredientNames(c, h.ingredients, dto.ShoppingListIngredientIDs(list))
	respondCreated(c, resourcePath("/api/shopping-lists", list.ID.Hex()), dto.NewShoppingListResponse(list, names))
}
