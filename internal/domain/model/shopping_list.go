package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingList is a household's list of ingredients to buy, either entered by
// hand or generated from a meal plan.
type ShoppingList struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty"`
	HouseholdID primitive.ObjectID  `bson:"household_id"`
	MealPlanID  *primitive.ObjectID `bson:"meal_plan_id,omitempty"`
	Notes       string              `bson:"notes,omitempty"`
	Items       []ShoppingListItem  `bson:"items"`
	CreatedAt   time.Time           `bson:"created_at"`
}

// ShoppingListItem is one line of a shopping list.
type ShoppingListItem struct {
	ID           primitive.ObjectID `bson:"_id"`
	IngredientID primitive.ObjectID `bson:"ingredient_id"`
	Quantity     decimal.Decimal    `bson:"quantity"`
	Unit         MeasurementUnit    `bson:"unit"`
	IsChecked    bool               `bson:"is_checked"`
}

// Item returns the item with the given id, or nil.
func (l *ShoppingList) Item(id primitive.ObjectID) *ShoppingListItem {
	for i := range l.Items {
		if l.Items[i].ID == id {
			return &l.Items[i]
		}
	}
	return nil
}
