package model

import (
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pantry holds the ingredients a household has in stock. There is at most one per household.
type Pantry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	HouseholdID primitive.ObjectID `bson:"household_id"`
	Items       []PantryItem       `bson:"items"`
}

// PantryItem is a stocked ingredient.
type PantryItem struct {
	ID           primitive.ObjectID `bson:"_id"`
	IngredientID primitive.ObjectID `bson:"ingredient_id"`
	Quantity     decimal.Decimal    `bson:"quantity"`
	Unit         MeasurementUnit    `bson:"unit"`
	ExpiryDate   *time.Time         `bson:"expiry_date,omitempty"`
	AddedAt      time.Time          `bson:"added_at"`
}

// Item returns the item with the given id, or nil.
func (p *Pantry) Item(id primitive.ObjectID) *PantryItem {
	for i := range p.Items {
		if p.Items[i].ID == id {
			return &p.Items[i]
		}
	}
	return nil
}

// RemoveItem drops the item with the given id and reports whether it existed.
func (p *Pantry) RemoveItem(id primitive.ObjectID) bool {
	for i := range p.Items {
		if p.Items[i].ID == id {
			p.Items = append(p.Items[:i], p.Items[i+1:]...)
			return true
		}
	}
	return false
}
