package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recipe is a household recipe. Ingredient quantities are calibrated for ServingSize servings.
type Recipe struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	HouseholdID     primitive.ObjectID `bson:"household_id"`
	Name            string             `bson:"name"`
	Description     string             `bson:"description,omitempty"`
	Instructions    string             `bson:"instructions,omitempty"`
	PrepTimeMinutes int                `bson:"prep_time_minutes"`
	CookTimeMinutes int                `bson:"cook_time_minutes"`
	ServingSize     int                `bson:"serving_size"`
	Ingredients     []RecipeIngredient `bson:"ingredients"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
}

// RecipeIngredient is one line of a recipe. IngredientID is unique within a recipe.
type RecipeIngredient struct {
	IngredientID primitive.ObjectID `bson:"ingredient_id"`
	Quantity     decimal.Decimal    `bson:"quantity"`
	Unit         MeasurementUnit    `bson:"unit"`
	Notes        string             `bson:"notes,omitempty"`
}

// IngredientIDs returns the ids of the recipe's ingredients in order.
func (r *Recipe) IngredientIDs() []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(r.Ingredients))
	for _, ri := range r.Ingredients {
		ids = append(ids, ri.IngredientID)
	}
	return ids
}
