package repository

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Finders return (nil, nil) when the document does not exist. Update and
// Delete return ErrDocumentNotFound when nothing matched, and inserts that
// violate a unique index return ErrDuplicate.

// HouseholdRepositoryInterface defines household persistence.
type HouseholdRepositoryInterface interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Household, error)
	FindByUserID(ctx context.Context, userID string) ([]*model.Household, error)
	Create(ctx context.Context, household *model.Household) error
	Update(ctx context.Context, household *model.Household) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// IngredientRepositoryInterface defines ingredient catalog persistence.
type IngredientRepositoryInterface interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error)
	FindByName(ctx context.Context, name string) (*model.Ingredient, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Ingredient, error)
	List(ctx context.Context) ([]*model.Ingredient, error)
	Search(ctx context.Context, term string) ([]*model.Ingredient, error)
	Create(ctx context.Context, ingredient *model.Ingredient) error
	// Upsert inserts the ingredient unless one with the same name exists and
	// reports whether it inserted.
	Upsert(ctx context.Context, ingredient *model.Ingredient) (bool, error)
	Update(ctx context.Context, ingredient *model.Ingredient) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// RecipeRepositoryInterface defines recipe persistence.
type RecipeRepositoryInterface interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.Recipe, error)
	FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.Recipe, error)
	Search(ctx context.Context, householdID primitive.ObjectID, term string) ([]*model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) error
	Update(ctx context.Context, recipe *model.Recipe) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MealPlanRepositoryInterface defines meal plan persistence.
type MealPlanRepositoryInterface interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error)
	FindByIDWithRecipes(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error)
	FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.MealPlan, error)
	Create(ctx context.Context, plan *model.MealPlan) error
	Update(ctx context.Context, plan *model.MealPlan) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// PantryRepositoryInterface defines pantry persistence.
type PantryRepositoryInterface interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pantry, error)
	FindByHousehold(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error)
	Create(ctx context.Context, pantry *model.Pantry) error
	Update(ctx context.Context, pantry *model.Pantry) error
}

// ShoppingListRepositoryInterface defines shopping list persistence.
type ShoppingListRepositoryInterface interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShoppingList, error)
	FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.ShoppingList, error)
	Create(ctx context.Context, list *model.ShoppingList) error
	Update(ctx context.Context, list *model.ShoppingList) error
	SetItemChecked(ctx context.Context, listID, itemID primitive.ObjectID, checked bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// LogsRepositoryInterface defines request/audit log persistence.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.LogEntry) error
	CreateMany(ctx context.Context, entries []*model.LogEntry) error
	Query(ctx context.Context, opts model.LogQueryOptions) ([]*model.LogEntry, error)
	Count(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}
