package repository

import (
	"context"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecipeRepository implements RecipeRepositoryInterface using MongoDB.
// Recipe ingredients are embedded in the recipe document.
type RecipeRepository struct {
	collection *mongo.Collection
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *MongoDB) *RecipeRepository {
	return &RecipeRepository{collection: db.Recipes}
}

// FindByID returns the recipe with its ingredients, or nil if it does not exist.
func (r *RecipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	return findOne[model.Recipe](ctx, r.collection, bson.M{"_id": id})
}

// FindByIDs returns the recipes among ids that exist.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Recipe, error) {
	if len(ids) == 0 {
		return []*model.Recipe{}, nil
	}
	return findAll[model.Recipe](ctx, r.collection, bson.M{"_id": bson.M{"$in": ids}}, byName())
}

// FindByHousehold returns a household's recipes ordered by name.
func (r *RecipeRepository) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.Recipe, error) {
	return findAll[model.Recipe](ctx, r.collection, bson.M{"household_id": householdID}, byName())
}

// Search returns a household's recipes whose name contains term, ignoring case.
func (r *RecipeRepository) Search(ctx context.Context, householdID primitive.ObjectID, term string) ([]*model.Recipe, error) {
	filter := bson.M{"household_id": householdID, "name": containsInsensitive(term)}
	return findAll[model.Recipe](ctx, r.collection, filter, byName())
}

// Create inserts a new recipe and assigns its ID and timestamps.
func (r *RecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	now := time.Now().UTC()
	if recipe.ID.IsZero() {
		recipe.ID = primitive.NewObjectID()
	}
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	if recipe.Ingredients == nil {
		recipe.Ingredients = []model.RecipeIngredient{}
	}

	_, err := r.collection.InsertOne(ctx, recipe)
	return translateWriteError(err)
}

// Update replaces the stored recipe, ingredients included.
func (r *RecipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	return matchedOrNotFound(r.collection.ReplaceOne(ctx, bson.M{"_id": recipe.ID}, recipe))
}

// Delete removes a recipe.
func (r *RecipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deletedOrNotFound(r.collection.DeleteOne(ctx, bson.M{"_id": id}))
}
