package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/service"
)

// MealPlanHandler serves weekly meal plans.
type MealPlanHandler struct {
	mealPlans service.MealPlanService
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(mealPlans service.MealPlanService) *MealPlanHandler {
	return &MealPlanHandler{mealPlans: mealPlans}
}

// Get handles GET /api/meal-plans/{id}.
//
// @Summary      Get meal plan
// @Description  Returns the plan with the name of each planned recipe.
// @Tags         Meal plans
// @Produce      json
// @Param        id path string true "Meal plan ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.MealPlanResponse}
// @Failure      404 {object} dto.ErrorResponse "Meal plan not found"
// @Security     BearerAuth
// @Router       /api/meal-plans/{id} [get]
func (h *MealPlanHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	plan, err := h.mealPlans.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if plan == nil {
		respondNotFound(c, "Meal plan", id)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewMealPlanResponse(plan))
}

// ListByHousehold handles GET /api/meal-plans/household/{householdId}.
//
// @Summary      List household meal plans
// @Tags         Meal plans
// @Produce      json
// @Param        householdId path string true "Household ID"
// @Success      200 {object} dto.SuccessResponse{data=[]dto.MealPlanResponse}
// @Security     BearerAuth
// @Router       /api/meal-plans/household/{householdId} [get]
func (h *MealPlanHandler) ListByHousehold(c *gin.Context) {
	householdID, ok := pathID(c, "householdId")
	if !ok {
		return
	}

	plans, err := h.mealPlans.ListByHousehold(c.Request.Context(), householdID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	NewResponseBuilder(c).SuccessOK(dto.NewMealPlanResponses(plans))
}

// Create handles POST /api/meal-plans/household/{householdId}.
//
// @Summary      Create meal plan
// @Tags         Meal plans
// @Accept       json
// @Produce      json
// @Param        householdId path string true "Household ID"
// @Param        request body dto.MealPlanRequest true "Meal plan"
// @Success      201 {object} dto.SuccessResponse{data=dto.MealPlanResponse}
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Household or recipe not found"
// @Security     BearerAuth
// @Router       /api/meal-plans/household/{householdId} [post]
func (h *MealPlanHandler) Create(c *gin.Context) {
	householdID, ok := pathID(c, "householdId")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.MealPlanRequest](c)
	if !ok {
		return
	}

	plan := &model.MealPlan{
		HouseholdID:   householdID,
		WeekStartDate: req.WeekStart(),
		PlannedMeals:  req.Meals(),
	}
	if err := h.mealPlans.Create(c.Request.Context(), plan); err != nil {
		respondServiceError(c, err)
		return
	}

	audit(c, "meal_plan_created", "Meal plan created", map[string]interface{}{
		"meal_plan_id": plan.ID.Hex(),
		"household_id": householdID.Hex(),
		"meals":        len(plan.PlannedMeals),
	})
	respondCreated(c, resourcePath("/api/meal-plans", plan.ID.Hex()), dto.NewMealPlanResponse(plan))
}

// Update handles PUT /api/meal-plans/{id}.
//
// @Summary      Update meal plan
// @Description  Moves the plan's week and replaces all of its planned meals.
// @Tags         Meal plans
// @Accept       json
// @Param        id path string true "Meal plan ID"
// @Param        request body dto.MealPlanRequest true "Meal plan"
// @Success      204
// @Failure      400 {object} dto.ErrorResponse "Validation failed"
// @Failure      404 {object} dto.ErrorResponse "Meal plan or recipe not found"
// @Security     BearerAuth
// @Router       /api/meal-plans/{id} [put]
func (h *MealPlanHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	req, ok := bindRequest[dto.MealPlanRequest](c)
	if !ok {
		return
	}

	if err := h.mealPlans.Update(c.Request.Context(), id, req.WeekStart(), req.Meals()); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}

// Delete handles DELETE /api/meal-plans/{id}.
//
// @Summary      Delete meal plan
// @Tags         Meal plans
// @Param        id path string true "Meal plan ID"
// @Success      204
// @Failure      404 {object} dto.ErrorResponse "Meal plan not found"
// @Security     BearerAuth
// @Router       /api/meal-plans/{id} [delete]
func (h *MealPlanHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.mealPlans.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	respondNoContent(c)
}
