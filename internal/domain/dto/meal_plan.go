package dto

import (
	"fmt"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// PlannedMealRequest is one meal slot in a meal plan.
type PlannedMealRequest struct {
	RecipeID  string         `json:"recipe_id" example:"65f1c0ffee0ddba11ad0be03"`
	DayOfWeek int            `json:"day_of_week" example:"1" minimum:"0" maximum:"6"`
	MealType  model.MealType `json:"meal_type" example:"dinner" enums:"breakfast,lunch,dinner,snack"`
	Servings  int            `json:"servings" example:"4"`
	Notes     string         `json:"notes,omitempty"`
} // @name PlannedMealRequest

// MealPlanRequest is the body for creating or updating a meal plan.
//
// @Description Weekly meal plan; week_start_date is a calendar date (YYYY-MM-DD)
type MealPlanRequest struct {
	WeekStartDate string               `json:"week_start_date" example:"2024-03-04"`
	PlannedMeals  []PlannedMealRequest `json:"planned_meals"`
} // @name MealPlanRequest

// Validate collects every violation. The week may not start before today (UTC).
func (r *MealPlanRequest) Validate() error {
	var errs ValidationErrors
	week, err := time.Parse(time.DateOnly, r.WeekStartDate)
	switch {
	case err != nil:
		errs.add("week_start_date", "must be a date in YYYY-MM-DD format")
	case week.Before(today()):
		errs.add("week_start_date", "must not be in the past")
	}
	if len(r.PlannedMeals) == 0 {
		errs.add("planned_meals", "at least one planned meal is required")
	}

	for i, pm := range r.PlannedMeals {
		field := fmt.Sprintf("planned_meals[%d]", i)
		errs.objectID(field+".recipe_id", pm.RecipeID)
		if pm.DayOfWeek < 0 || pm.DayOfWeek > 6 {
			errs.add(field+".day_of_week", "must be between 0 (Sunday) and 6 (Saturday)")
		}
		if !pm.MealType.IsValid() {
			errs.add(field+".meal_type", "must be breakfast, lunch, dinner or snack")
		}
		if pm.Servings <= 0 {
			errs.add(field+".servings", "must be greater than zero")
		}
		errs.maxLen(field+".notes", pm.Notes, 1000)
	}
	return errs.err()
}

// WeekStart returns the parsed week start. Call Validate first.
func (r *MealPlanRequest) WeekStart() time.Time {
	week, _ := time.Parse(time.DateOnly, r.WeekStartDate)
	return week
}

// Meals converts the planned meals. Call Validate first.
func (r *MealPlanRequest) Meals() []model.PlannedMeal {
	meals := make([]model.PlannedMeal, len(r.PlannedMeals))
	for i, pm := range r.PlannedMeals {
		meals[i] = model.PlannedMeal{
			RecipeID:  objectIDOrNil(pm.RecipeID),
			DayOfWeek: time.Weekday(pm.DayOfWeek),
			MealType:  pm.MealType,
			Servings:  pm.Servings,
			Notes:     pm.Notes,
		}
	}
	return meals
}

func today() time.Time {
	y, m, d := now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// PlannedMealResponse is a meal slot as returned by the API.
type PlannedMealResponse struct {
	ID         string         `json:"id"`
	RecipeID   string         `json:"recipe_id"`
	RecipeName string         `json:"recipe_name,omitempty" example:"Spaghetti Pomodoro"`
	DayOfWeek  int            `json:"day_of_week" example:"1"`
	DayName    string         `json:"day_name" example:"Monday"`
	MealType   model.MealType `json:"meal_type" example:"dinner"`
	Servings   int            `json:"servings" example:"4"`
	Notes      string         `json:"notes,omitempty"`
} // @name PlannedMealResponse

// MealPlanResponse is a meal plan as returned by the API.
type MealPlanResponse struct {
	ID            string                `json:"id"`
	HouseholdID   string                `json:"household_id"`
	WeekStartDate string                `json:"week_start_date" example:"2024-03-04"`
	PlannedMeals  []PlannedMealResponse `json:"planned_meals"`
	CreatedAt     time.Time             `json:"created_at"`
} // @name MealPlanResponse

// NewMealPlanResponse maps a meal plan to its API form. Recipe names are
// filled in when the plan was loaded with its recipes.
func NewMealPlanResponse(p *model.MealPlan) MealPlanResponse {
	meals := make([]PlannedMealResponse, len(p.PlannedMeals))
	for i, pm := range p.PlannedMeals {
		meals[i] = PlannedMealResponse{
			ID:        pm.ID.Hex(),
			RecipeID:  pm.RecipeID.Hex(),
			DayOfWeek: int(pm.DayOfWeek),
			DayName:   pm.DayOfWeek.String(),
			MealType:  pm.MealType,
			Servings:  pm.Servings,
			Notes:     pm.Notes,
		}
		if pm.Recipe != nil {
			meals[i].RecipeName = pm.Recipe.Name
		}
	}
	return MealPlanResponse{
		ID:            p.ID.Hex(),
		HouseholdID:   p.HouseholdID.Hex(),
		WeekStartDate: p.WeekStartDate.Format(time.DateOnly),
		PlannedMeals:  meals,
		CreatedAt:     p.CreatedAt,
	}
}

// NewMealPlanResponses maps a slice of meal plans.
func NewMealPlanResponses(ps []*model.MealPlan) []MealPlanResponse {
	out := make([]MealPlanResponse, len(ps))
	for i, p := range ps {
		out[i] = NewMealPlanResponse(p)
	}
	return out
}
