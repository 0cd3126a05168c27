package http

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/service"
)

// PantryHandler serves a household's pantry under /api/households/{id}/pantry.
type PantryHandler struct {
	pantries    service.PantryService
	ingredients service.IngredientService
}

// NewPantryHandler creates a new PantryHandler.
func NewPantryHandler(pantries service.PantryService, ingredients service.IngredientService) *PantryHandler {
	return &PantryHandler{pantries: pantries, ingredients: ingredients}
}

// Get handles GET /api/households/{id}/pantry.
//
// @Summary      Get household pantry
// @Tags         Pantry
// @Produce      json
// @Param        id path string true "Household ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.PantryResponse}
// @Failure      404 {object} dto.ErrorResponse "Household has no pantry"
// @Security     BearerAuth
// @Router       /api/households/{id}/pantry [get]
func (h *PantryHandler) Get(c *gin.Context) {
	householdID, ok := pathID(c, "id")
	if !ok {
		return
	}

	pantry, err := h.pantries.GetByHousehold(c.Request.Context(), householdID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if pantry == nil {
		respondNotFound(c, "Pantry for household", householdID)
		return
	}

	ids := make([]primitive.ObjectID, len(pantry.Items))
	for i, item := range pantry.Items {
		ids[i] = item.IngredientID
	}
	names := ingredientNames(c, h.ingredients, ids)
	NewResponseBuilder(c).SuccessOK(dto.NewPantryResponse(pantry, names))
}

// Create handles POST /api/households/{id}/pantry.
//
// @Summary      Create household pantry
// @Tags         Pantry
// @Produce      json
// @Param        id path string true "Household ID"
// @Success      201 {object} dto.SuccessResponse{data=dto.PantryResponse}
// @Failure      404 {object} dto.ErrorResponse "Household not found"
// @Failure      409 {object} dto.ErrorResponse "Household already has a pantry"
// @Security     BearerAuth
// @Router       /api/households/{id}/pantry [post]
func (h *PantryHandler) Create(c *gin.Context) {
	householdID, ok := pathID(c, "id")
	if !ok {
		return
	}

	pantry, err := h.pantries.Create(c.Request.Context(), householdID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, pantryPath(householdID), dto.NewPantryResponse(pantry, nil))
}

// AddItem handles POST /api/households/{id}/pantry/items.
//
// @Summary      Add pantry item
// @Description  Creates the household's pantry first when it does not exist yet.
// @Tags         Pantry
// @Accept       json
// @Produce      json
// @Param        id path string true "Household ID"
// @Param        request body dto.PantryItemRequest true "Pantry item"
// @Success      201 {object} dto.SuccessResponse{data=dto.PantryItemResponse}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Household or ingredient not found"
// @Security     BearerAuth
// @Router       /api/households/{id}/pantry/items [post]
func (h *PantryHandler) AddItem(c *gin.Context) {
	householdID, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.PantryItemRequest](c)
	if !ok {
		return
	}

	item, err := h.pantries.AddItem(c.Request.Context(), householdID, req.ToModel())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	names := ingredientNames(c, h.ingredients, []primitive.ObjectID{item.IngredientID})
	respondCreated(c, pantryPath(householdID), dto.NewPantryItemResponse(item, names))
}

// UpdateItem handles PUT /api/households/{id}/pantry/{pantryId}/items/{itemId}.
//
// @Summary      Update pantry item
// @Tags         Pantry
// @Accept       json
// @Param        id path string true "Household ID"
// @Param        pantryId path string true "Pantry ID"
// @Param        itemId path string true "Pantry item ID"
// @Param        request body dto.PantryItemRequest true "Pantry item"
// @Success      204
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Pantry or item not found"
// @Security     BearerAuth
// @Router       /api/households/{id}/pantry/{pantryId}/items/{itemId} [put]
func (h *PantryHandler) UpdateItem(c *gin.Context) {
	pantryID, itemID, ok := pantryItemIDs(c)
	if !ok {
		return
	}
	req, ok := bindRequest[dto.PantryItemRequest](c)
	if !ok {
		return
	}

	if err := h.pantries.UpdateItem(c.Request.Context(), pantryID, itemID, req.ToModel()); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// RemoveItem handles DELETE /api/households/{id}/pantry/{pantryId}/items/{itemId}.
//
// @Summary      Remove pantry item
// @Tags         Pantry
// @Param        id path string true "Household ID"
// @Param        pantryId path string true "Pantry ID"
// @Param        itemId path string true "Pantry item ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Pantry or item not found"
// @Security     BearerAuth
// @Router       /api/households/{id}/pantry/{pantryId}/items/{itemId} [delete]
func (h *PantryHandler) RemoveItem(c *gin.Context) {
	pantryID, itemID, ok := pantryItemIDs(c)
	if !ok {
		return
	}

	if err := h.pantries.RemoveItem(c.Request.Context(), pantryID, itemID); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

func pantryItemIDs(c *gin.Context) (pantryID, itemID primitive.ObjectID, ok bool) {
	if pantryID, ok = pathID(c, "pantryId"); !ok {
		return
	}
	itemID, ok = pathID(c, "itemId")
	return
}

func pantryPath(householdID primitive.ObjectID) string {
	return resourcePath("/api/households", householdID.Hex(), "pantry")
}
