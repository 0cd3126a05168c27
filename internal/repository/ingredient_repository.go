package repository

import (
	"context"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// IngredientRepository implements IngredientRepositoryInterface using MongoDB.
type IngredientRepository struct {
	collection *mongo.Collection
}

// NewIngredientRepository creates a new ingredient repository.
func NewIngredientRepository(db *MongoDB) *IngredientRepository {
	return &IngredientRepository{collection: db.Ingredients}
}

// FindByID returns an ingredient, or nil if it does not exist.
func (r *IngredientRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	return findOne[model.Ingredient](ctx, r.collection, bson.M{"_id": id})
}

// FindByName returns the ingredient with exactly this name, or nil.
func (r *IngredientRepository) FindByName(ctx context.Context, name string) (*model.Ingredient, error) {
	return findOne[model.Ingredient](ctx, r.collection, bson.M{"name": name})
}

// FindByIDs returns the ingredients among ids that exist, in no particular order.
func (r *IngredientRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Ingredient, error) {
	if len(ids) == 0 {
		return []*model.Ingredient{}, nil
	}
	return findAll[model.Ingredient](ctx, r.collection, bson.M{"_id": bson.M{"$in": ids}}, byName())
}

// List returns the whole catalog ordered by name.
func (r *IngredientRepository) List(ctx context.Context) ([]*model.Ingredient, error) {
	return findAll[model.Ingredient](ctx, r.collection, bson.M{}, byName())
}

// Search returns ingredients whose name contains term, ignoring case.
func (r *IngredientRepository) Search(ctx context.Context, term string) ([]*model.Ingredient, error) {
	return findAll[model.Ingredient](ctx, r.collection, bson.M{"name": containsInsensitive(term)}, byName())
}

// Create inserts a new ingredient. Returns ErrDuplicate when the name is taken.
func (r *IngredientRepository) Create(ctx context.Context, ingredient *model.Ingredient) error {
	if ingredient.ID.IsZero() {
		ingredient.ID = primitive.NewObjectID()
	}
	ingredient.CreatedAt = time.Now().UTC()

	_, err := r.collection.InsertOne(ctx, ingredient)
	return translateWriteError(err)
}

// Upsert inserts the ingredient unless one with the same name exists and
// reports whether a document was inserted. Existing entries keep their ID and category.
func (r *IngredientRepository) Upsert(ctx context.Context, ingredient *model.Ingredient) (bool, error) {
	// name comes from the equality filter on insert
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"category":   ingredient.Category,
			"created_at": time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"name": ingredient.Name}, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, translateWriteError(err)
	}
	return result.UpsertedCount > 0, nil
}

// Update replaces the stored ingredient.
func (r *IngredientRepository) Update(ctx context.Context, ingredient *model.Ingredient) error {
	return matchedOrNotFound(r.collection.ReplaceOne(ctx, bson.M{"_id": ingredient.ID}, ingredient))
}

// Delete removes an ingredient.
func (r *IngredientRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deletedOrNotFound(r.collection.DeleteOne(ctx, bson.M{"_id": id}))
}
