package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType is the slot of the day a planned meal fills.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
	Snack     MealType = "snack"
)

// IsValid reports whether m is a known meal type.
func (m MealType) IsValid() bool {
	switch m {
	case Breakfast, Lunch, Dinner, Snack:
		return true
	}
	return false
}

// MealPlan is a household's plan for the week starting at WeekStartDate.
type MealPlan struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	HouseholdID   primitive.ObjectID `bson:"household_id"`
	WeekStartDate time.Time          `bson:"week_start_date"`
	PlannedMeals  []PlannedMeal      `bson:"planned_meals"`
	CreatedAt     time.Time          `bson:"created_at"`
}

// PlannedMeal assigns a recipe to a day and meal slot. Servings is independent
// of the recipe's ServingSize.
type PlannedMeal struct {
	ID        primitive.ObjectID `bson:"_id"`
	RecipeID  primitive.ObjectID `bson:"recipe_id"`
	DayOfWeek time.Weekday       `bson:"day_of_week"`
	MealType  MealType           `bson:"meal_type"`
	Servings  int                `bson:"servings"`
	Notes     string             `bson:"notes,omitempty"`

	// Recipe is attached by eager-loading reads and never stored.
	Recipe *Recipe `bson:"-"`
}

// RecipeIDs returns the distinct recipe ids referenced by the plan.
func (p *MealPlan) RecipeIDs() []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(p.PlannedMeals))
	ids := make([]primitive.ObjectID, 0, len(p.PlannedMeals))
	for _, pm := range p.PlannedMeals {
		if _, ok := seen[pm.RecipeID]; ok {
			continue
		}
		seen[pm.RecipeID] = struct{}{}
		ids = append(ids, pm.RecipeID)
	}
	return ids
}
