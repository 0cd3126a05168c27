package repository

import (
	"context"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ShoppingListRepository implements ShoppingListRepositoryInterface using MongoDB.
type ShoppingListRepository struct {
	collection *mongo.Collection
}

// NewShoppingListRepository creates a new shopping list repository.
func NewShoppingListRepository(db *MongoDB) *ShoppingListRepository {
	return &ShoppingListRepository{collection: db.ShoppingLists}
}

// FindByID returns the list with its items, or nil if it does not exist.
func (r *ShoppingListRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShoppingList, error) {
	return findOne[model.ShoppingList](ctx, r.collection, bson.M{"_id": id})
}

// FindByHousehold returns a household's lists, newest first.
func (r *ShoppingListRepository) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.ShoppingList, error) {
	return findAll[model.ShoppingList](ctx, r.collection, bson.M{"household_id": householdID}, newestFirst())
}

// Create inserts a new list and assigns IDs to the list and its items.
// CreatedAt is kept when already set.
func (r *ShoppingListRepository) Create(ctx context.Context, list *model.ShoppingList) error {
	if list.ID.IsZero() {
		list.ID = primitive.NewObjectID()
	}
	if list.CreatedAt.IsZero() {
		list.CreatedAt = time.Now().UTC()
	}
	assignShoppingListItemIDs(list)

	_, err := r.collection.InsertOne(ctx, list)
	return translateWriteError(err)
}

// Update replaces the stored list, items included.
func (r *ShoppingListRepository) Update(ctx context.Context, list *model.ShoppingList) error {
	assignShoppingListItemIDs(list)
	return matchedOrNotFound(r.collection.ReplaceOne(ctx, bson.M{"_id": list.ID}, list))
}

// SetItemChecked updates a single item's checked flag in place.
func (r *ShoppingListRepository) SetItemChecked(ctx context.Context, listID, itemID primitive.ObjectID, checked bool) error {
	return matchedOrNotFound(r.collection.UpdateOne(
		ctx,
		bson.M{"_id": listID, "items._id": itemID},
		bson.M{"$set": bson.M{"items.$.is_checked": checked}},
	))
}

// Delete removes a list.
func (r *ShoppingListRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deletedOrNotFound(r.collection.DeleteOne(ctx, bson.M{"_id": id}))
}

func assignShoppingListItemIDs(list *model.ShoppingList) {
	if list.Items == nil {
		list.Items = []model.ShoppingListItem{}
	}
	for i := range list.Items {
		if list.Items[i].ID.IsZero() {
			list.Items[i].ID = primitive.NewObjectID()
		}
	}
}
