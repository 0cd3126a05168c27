package repository

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PantryRepository implements PantryRepositoryInterface using MongoDB.
type PantryRepository struct {
	collection *mongo.Collection
}

// NewPantryRepository creates a new pantry repository.
func NewPantryRepository(db *MongoDB) *PantryRepository {
	return &PantryRepository{collection: db.Pantries}
}

// FindByID returns the pantry with its items, or nil if it does not exist.
func (r *PantryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pantry, error) {
	return findOne[model.Pantry](ctx, r.collection, bson.M{"_id": id})
}

// FindByHousehold returns the household's pantry, or nil if none was created yet.
func (r *PantryRepository) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error) {
	return findOne[model.Pantry](ctx, r.collection, bson.M{"household_id": householdID})
}

// Create inserts a new pantry. Returns ErrDuplicate when the household already has one.
func (r *PantryRepository) Create(ctx context.Context, pantry *model.Pantry) error {
	if pantry.ID.IsZero() {
		pantry.ID = primitive.NewObjectID()
	}
	if pantry.Items == nil {
		pantry.Items = []model.PantryItem{}
	}

	_, err := r.collection.InsertOne(ctx, pantry)
	return translateWriteError(err)
}

// Update replaces the stored pantry, items included.
func (r *PantryRepository) Update(ctx context.Context, pantry *model.Pantry) error {
	return matchedOrNotFound(r.collection.ReplaceOne(ctx, bson.M{"_id": pantry.ID}, pantry))
}
