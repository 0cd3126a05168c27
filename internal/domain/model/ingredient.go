package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ingredient is an entry of the shared ingredient catalog.
type Ingredient struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
}
