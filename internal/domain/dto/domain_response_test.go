package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

func TestNewRecipeResponse(t *testing.T) {
	pasta, garlic := primitive.NewObjectID(), primitive.NewObjectID()
	recipe := &model.Recipe{
		ID:              primitive.NewObjectID(),
		Name:            "Spaghetti",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 12,
		ServingSize:     2,
		Ingredients: []model.RecipeIngredient{
			{IngredientID: pasta, Quantity: decimal.NewFromInt(200), Unit: model.Gram},
			{IngredientID: garlic, Quantity: decimal.NewFromInt(3), Unit: model.Clove},
		},
	}

	resp := NewRecipeResponse(recipe, IngredientNames{pasta: "Spaghetti"})

	assert.Equal(t, 22, resp.TotalMinutes)
	require.Len(t, resp.Ingredients, 2)
	assert.Equal(t, "Spaghetti", resp.Ingredients[0].IngredientName)
	assert.Equal(t, "200g", resp.Ingredients[0].Display)
	assert.Equal(t, "g", resp.Ingredients[0].UnitAbbreviation)
	assert.Empty(t, resp.Ingredients[1].IngredientName)
	assert.Equal(t, "3 cloves", resp.Ingredients[1].Display)

	raw, err := json.Marshal(resp.Ingredients[0])
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"quantity":"200"`)
}

func TestNewMealPlanResponse(t *testing.T) {
	recipe := &model.Recipe{ID: primitive.NewObjectID(), Name: "Curry"}
	plan := &model.MealPlan{
		ID:            primitive.NewObjectID(),
		WeekStartDate: time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		PlannedMeals: []model.PlannedMeal{
			{ID: primitive.NewObjectID(), RecipeID: recipe.ID, DayOfWeek: time.Friday, MealType: model.Dinner, Servings: 4, Recipe: recipe},
			{ID: primitive.NewObjectID(), RecipeID: primitive.NewObjectID(), DayOfWeek: time.Sunday, MealType: model.Lunch, Servings: 2},
		},
	}

	resp := NewMealPlanResponse(plan)

	assert.Equal(t, "2024-03-04", resp.WeekStartDate)
	assert.Equal(t, "Curry", resp.PlannedMeals[0].RecipeName)
	assert.Equal(t, "Friday", resp.PlannedMeals[0].DayName)
	assert.Equal(t, 5, resp.PlannedMeals[0].DayOfWeek)
	assert.Empty(t, resp.PlannedMeals[1].RecipeName)
}

func TestNewShoppingListResponse(t *testing.T) {
	salt := primitive.NewObjectID()
	planID := primitive.NewObjectID()
	list := &model.ShoppingList{
		ID:         primitive.NewObjectID(),
		MealPlanID: &planID,
		Items: []model.ShoppingListItem{
			{ID: primitive.NewObjectID(), IngredientID: salt, Quantity: decimal.NewFromInt(1), Unit: model.ToTaste},
			{ID: primitive.NewObjectID(), IngredientID: primitive.NewObjectID(), Quantity: decimal.RequireFromString("1.3333"), Unit: model.Cup, IsChecked: true},
		},
	}

	resp := NewShoppingListResponse(list, IngredientNames{salt: "Salt"})

	assert.Equal(t, planID.Hex(), resp.MealPlanID)
	assert.Equal(t, "to taste", resp.Items[0].Display)
	assert.Equal(t, "Salt", resp.Items[0].IngredientName)
	assert.Equal(t, "1.33cup", resp.Items[1].Display)
	assert.True(t, resp.Items[1].IsChecked)
	assert.Len(t, ShoppingListIngredientIDs(list), 2)
}

func TestNewPantryResponse(t *testing.T) {
	flour := primitive.NewObjectID()
	pantry := &model.Pantry{
		ID:    primitive.NewObjectID(),
		Items: []model.PantryItem{{ID: primitive.NewObjectID(), IngredientID: flour, Quantity: decimal.RequireFromString("1.50"), Unit: model.Kilogram}},
	}

	resp := NewPantryResponse(pantry, IngredientNames{flour: "Flour"})

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "1.5kg", resp.Items[0].Display)
	assert.Equal(t, "Flour", resp.Items[0].IngredientName)
}

func TestNewUnitResponses(t *testing.T) {
	all := NewUnitResponses()
	require.Len(t, all, len(model.AllUnits()))
	assert.Equal(t, UnitResponse{Value: 1, Name: "Gram", Abbreviation: "g"}, all[0])
	assert.Equal(t, UnitResponse{Value: 30, Name: "ToTaste", Abbreviation: "to taste"}, all[len(all)-1])
}
