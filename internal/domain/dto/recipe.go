package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/units"
)

// IngredientNames resolves ingredient ids to display names. Missing ids
// render with an empty name.
type IngredientNames map[primitive.ObjectID]string

// RecipeIngredientRequest is one ingredient line of a recipe.
type RecipeIngredientRequest struct {
	IngredientID string                `json:"ingredient_id" example:"65f1c0ffee0ddba11ad0be02"`
	Quantity     decimal.Decimal       `json:"quantity" swaggertype:"string" example:"200"`
	Unit         model.MeasurementUnit `json:"unit" example:"1"`
	Notes        string                `json:"notes,omitempty" example:"al dente"`
} // @name RecipeIngredientRequest

// RecipeRequest is the body for creating or updating a recipe.
//
// @Description Recipe with ingredient quantities calibrated to serving_size
type RecipeRequest struct {
	Name            string                    `json:"name" example:"Spaghetti Pomodoro"`
	Description     string                    `json:"description,omitempty"`
	Instructions    string                    `json:"instructions,omitempty"`
	PrepTimeMinutes int                       `json:"prep_time_minutes" example:"10"`
	CookTimeMinutes int                       `json:"cook_time_minutes" example:"15"`
	ServingSize     int                       `json:"serving_size" example:"2"`
	Ingredients     []RecipeIngredientRequest `json:"ingredients"`
} // @name RecipeRequest

// Validate collects every field and ingredient line violation.
func (r *RecipeRequest) Validate() error {
	var errs ValidationErrors
	errs.required("name", r.Name)
	errs.maxLen("name", r.Name, 200)
	errs.maxLen("description", r.Description, 1000)
	errs.maxLen("instructions", r.Instructions, 5000)
	if r.PrepTimeMinutes < 0 {
		errs.add("prep_time_minutes", "must not be negative")
	}
	if r.CookTimeMinutes < 0 {
		errs.add("cook_time_minutes", "must not be negative")
	}
	if r.ServingSize <= 0 {
		errs.add("serving_size", "must be greater than zero")
	}
	if len(r.Ingredients) == 0 {
		errs.add("ingredients", "at least one ingredient is required")
	}

	seen := make(map[string]struct{}, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		field := fmt.Sprintf("ingredients[%d]", i)
		errs.objectID(field+".ingredient_id", ing.IngredientID)
		errs.positive(field+".quantity", ing.Quantity)
		errs.unit(field+".unit", ing.Unit)
		errs.maxLen(field+".notes", ing.Notes, 1000)
		if _, dup := seen[ing.IngredientID]; dup {
			errs.add(field+".ingredient_id", "is listed more than once")
		}
		seen[ing.IngredientID] = struct{}{}
	}
	return errs.err()
}

// ToModel builds a recipe owned by householdID. Call Validate first.
func (r *RecipeRequest) ToModel(householdID primitive.ObjectID) *model.Recipe {
	ingredients := make([]model.RecipeIngredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = model.RecipeIngredient{
			IngredientID: objectIDOrNil(ing.IngredientID),
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			Notes:        ing.Notes,
		}
	}
	return &model.Recipe{
		HouseholdID:     householdID,
		Name:            r.Name,
		Description:     r.Description,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		ServingSize:     r.ServingSize,
		Ingredients:     ingredients,
	}
}

// RecipeIngredientResponse is one ingredient line as returned by the API.
type RecipeIngredientResponse struct {
	IngredientID     string                `json:"ingredient_id"`
	IngredientName   string                `json:"ingredient_name,omitempty" example:"Spaghetti"`
	Quantity         decimal.Decimal       `json:"quantity" swaggertype:"string" example:"200"`
	Unit             model.MeasurementUnit `json:"unit" example:"1"`
	UnitAbbreviation string                `json:"unit_abbreviation" example:"g"`
	Display          string                `json:"display" example:"200g"`
	Notes            string                `json:"notes,omitempty"`
} // @name RecipeIngredientResponse

// RecipeResponse is a recipe as returned by the API.
type RecipeResponse struct {
	ID              string                     `json:"id"`
	HouseholdID     string                     `json:"household_id"`
	Name            string                     `json:"name"`
	Description     string                     `json:"description,omitempty"`
	Instructions    string                     `json:"instructions,omitempty"`
	PrepTimeMinutes int                        `json:"prep_time_minutes"`
	CookTimeMinutes int                        `json:"cook_time_minutes"`
	TotalMinutes    int                        `json:"total_time_minutes"`
	ServingSize     int                        `json:"serving_size"`
	Ingredients     []RecipeIngredientResponse `json:"ingredients"`
	CreatedAt       time.Time                  `json:"created_at"`
	UpdatedAt       time.Time                  `json:"updated_at"`
} // @name RecipeResponse

// NewRecipeResponse maps a recipe to its API form.
func NewRecipeResponse(r *model.Recipe, names IngredientNames) RecipeResponse {
	ingredients := make([]RecipeIngredientResponse, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ingredients[i] = RecipeIngredientResponse{
			IngredientID:     ing.IngredientID.Hex(),
			IngredientName:   names[ing.IngredientID],
			Quantity:         ing.Quantity,
			Unit:             ing.Unit,
			UnitAbbreviation: units.Abbreviation(ing.Unit),
			Display:          units.FormatWithUnit(ing.Quantity, ing.Unit),
			Notes:            ing.Notes,
		}
	}
	return RecipeResponse{
		ID:              r.ID.Hex(),
		HouseholdID:     r.HouseholdID.Hex(),
		Name:            r.Name,
		Description:     r.Description,
		Instructions:    r.Instructions,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		TotalMinutes:    r.PrepTimeMinutes + r.CookTimeMinutes,
		ServingSize:     r.ServingSize,
		Ingredients:     ingredients,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// NewRecipeResponses maps a slice of recipes.
func NewRecipeResponses(rs []*model.Recipe, names IngredientNames) []RecipeResponse {
	out := make([]RecipeResponse, len(rs))
	for i, r := range rs {
		out[i] = NewRecipeResponse(r, names)
	}
	return out
}

// RecipeIngredientIDs collects the ingredient ids referenced by recipes.
func RecipeIngredientIDs(rs ...*model.Recipe) []primitive.ObjectID {
	var ids []primitive.ObjectID
	for _, r := range rs {
		ids = append(ids, r.IngredientIDs()...)
	}
	return ids
}
