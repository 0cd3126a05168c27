package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/service"
)

// IngredientHandler serves the shared ingredient catalog.
type IngredientHandler struct {
	ingredients service.IngredientService
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(ingredients service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// Get handles GET /api/ingredients/{id}.
//
// @Summary      Get ingredient
// @Tags         Ingredients
// @Produce      json
// @Param        id path string true "Ingredient ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.IngredientResponse}
// @Failure      404 {object} dto.ErrorResponse "Ingredient not found"
// @Security     BearerAuth
// @Router       /api/ingredients/{id} [get]
func (h *IngredientHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ingredient, err := h.ingredients.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if ingredient == nil {
		respondNotFound(c, "Ingredient", id)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewIngredientResponse(ingredient))
}

// List handles GET /api/ingredients.
//
// @Summary      List ingredients
// @Tags         Ingredients
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=[]dto.IngredientResponse}
// @Security     BearerAuth
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredients.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewIngredientResponses(ingredients))
}

// Search handles GET /api/ingredients/search?searchTerm=.
//
// @Summary      Search ingredients
// @Description  Case-insensitive substring match on name and category.
// @Tags         Ingredients
// @Produce      json
// @Param        searchTerm query string false "Search term"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.IngredientResponse}
// @Security     BearerAuth
// @Router       /api/ingredients/search [get]
func (h *IngredientHandler) Search(c *gin.Context) {
	ingredients, err := h.ingredients.Search(c.Request.Context(), c.Query("searchTerm"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewIngredientResponses(ingredients))
}

// Create handles POST /api/ingredients.
//
// @Summary      Create ingredient
// @Tags         Ingredients
// @Accept       json
// @Produce      json
// @Param        request body dto.IngredientRequest true "Ingredient"
// @Success      201 {object} dto.SuccessResponse{data=dto.IngredientResponse}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      409 {object} dto.ErrorResponse "Name already taken"
// @Security     BearerAuth
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Create(c *gin.Context) {
	req, ok := bindRequest[dto.IngredientRequest](c)
	if !ok {
		return
	}

	ingredient := req.ToModel()
	if err := h.ingredients.Create(c.Request.Context(), ingredient); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, resourcePath("/api/ingredients", ingredient.ID.Hex()), dto.NewIngredientResponse(ingredient))
}

// Update handles PUT /api/ingredients/{id}.
//
// @Summary      Update ingredient
// @Tags         Ingredients
// @Accept       json
// @Param        id path string true "Ingredient ID"
// @Param        request body dto.IngredientRequest true "Ingredient"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Ingredient not found"
// @Security     BearerAuth
// @Router       /api/ingredients/{id} [put]
func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.IngredientRequest](c)
	if !ok {
		return
	}

	if err := h.ingredients.Update(c.Request.Context(), id, req.Name, req.Category); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// Delete handles DELETE /api/ingredients/{id}.
//
// @Summary      Delete ingredient
// @Tags         Ingredients
// @Param        id path string true "Ingredient ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Ingredient not found"
// @Security     BearerAuth
// @Router       /api/ingredients/{id} [delete]
func (h *IngredientHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.ingredients.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}
