package repository

import (
	"context"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HouseholdRepository implements HouseholdRepositoryInterface using MongoDB.
// Members are embedded in the household document.
type HouseholdRepository struct {
	collection *mongo.Collection
}

// NewHouseholdRepository creates a new household repository.
func NewHouseholdRepository(db *MongoDB) *HouseholdRepository {
	return &HouseholdRepository{collection: db.Households}
}

// FindByID returns the household with its members, or nil if it does not exist.
func (r *HouseholdRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Household, error) {
	return findOne[model.Household](ctx, r.collection, bson.M{"_id": id})
}

// FindByUserID returns every household userID is a member of.
func (r *HouseholdRepository) FindByUserID(ctx context.Context, userID string) ([]*model.Household, error) {
	return findAll[model.Household](ctx, r.collection, bson.M{"members.user_id": userID}, byName())
}

// Create inserts a new household and assigns its ID.
func (r *HouseholdRepository) Create(ctx context.Context, household *model.Household) error {
	now := time.Now().UTC()
	if household.ID.IsZero() {
		household.ID = primitive.NewObjectID()
	}
	household.CreatedAt = now
	household.UpdatedAt = now
	if household.Members == nil {
		household.Members = []model.HouseholdMember{}
	}

	_, err := r.collection.InsertOne(ctx, household)
	return translateWriteError(err)
}

// Update replaces the stored household, members included.
func (r *HouseholdRepository) Update(ctx context.Context, household *model.Household) error {
	household.UpdatedAt = time.Now().UTC()
	return matchedOrNotFound(r.collection.ReplaceOne(ctx, bson.M{"_id": household.ID}, household))
}

// Delete removes a household.
func (r *HouseholdRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deletedOrNotFound(r.collection.DeleteOne(ctx, bson.M{"_id": id}))
}
