package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ingredientKey groups demand by ingredient and unit. Different units of the
// same ingredient stay separate lines; no conversion is attempted.
type ingredientKey struct {
	ingredientID primitive.ObjectID
	unit         model.MeasurementUnit
}

// AggregateMealPlan sums the scaled ingredient demand of every planned meal in
// plan. Planned meals without a loaded recipe, or whose recipe has no
// ingredients or an invalid serving size, contribute nothing. The result is
// sorted by ingredient ID then unit, and every item is unchecked.
func AggregateMealPlan(plan *model.MealPlan) []model.ShoppingListItem {
	totals := make(map[ingredientKey]decimal.Decimal)

	for _, meal := range plan.PlannedMeals {
		recipe := meal.Recipe
		if recipe == nil || len(recipe.Ingredients) == 0 || recipe.ServingSize <= 0 {
			continue
		}
		for _, ing := range recipe.Ingredients {
			key := ingredientKey{ingredientID: ing.IngredientID, unit: ing.Unit}
			totals[key] = totals[key].Add(ScaleQuantity(ing.Quantity, meal.Servings, recipe.ServingSize))
		}
	}

	items := make([]model.ShoppingListItem, 0, len(totals))
	for key, quantity := range totals {
		items = append(items, model.ShoppingListItem{
			IngredientID: key.ingredientID,
			Quantity:     quantity,
			Unit:         key.unit,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.IngredientID != b.IngredientID {
			return a.IngredientID.Hex() < b.IngredientID.Hex()
		}
		return a.Unit < b.Unit
	})
	return items
}

// generatedListNote is the note stamped on lists built from a meal plan.
func generatedListNote(weekStart time.Time) string {
	return fmt.Sprintf("Generated from meal plan for week of %s", weekStart.Format(time.DateOnly))
}

// BuildShoppingList creates a new, unsaved shopping list for householdID from plan.
func BuildShoppingList(plan *model.MealPlan, householdID primitive.ObjectID, createdAt time.Time) *model.ShoppingList {
	planID := plan.ID
	return &model.ShoppingList{
		HouseholdID: householdID,
		MealPlanID:  &planID,
		Notes:       generatedListNote(plan.WeekStartDate),
		Items:       AggregateMealPlan(plan),
		CreatedAt:   createdAt,
	}
}
