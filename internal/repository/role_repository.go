package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

// RoleRepositoryInterface defines the interface for role repository operations.
type RoleRepositoryInterface interface {
	Create(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Role, error)
	FindByName(ctx context.Context, name string) (*model.Role, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.Role, error)
	Update(ctx context.Context, role *model.Role) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter bson.M, limit, skip int64) ([]*model.Role, error)
}

// RoleRepository implements RoleRepositoryInterface using MongoDB.
type RoleRepository struct {
	collection *mongo.Collection
}

func NewRoleRepository(db *MongoDB) *RoleRepository {
	return &RoleRepository{collection: db.Roles}
}

// Create inserts a role. Returns ErrDuplicate when the name is taken.
func (r *RoleRepository) Create(ctx context.Context, role *model.Role) error {
	now := time.Now().UTC()
	if role.ID.IsZero() {
		role.ID = primitive.NewObjectID()
	}
	role.CreatedAt = now
	role.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, role)
	return translateWriteError(err)
}

func (r *RoleRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Role, error) {
	return findOne[model.Role](ctx, r.collection, bson.M{"_id": id})
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	return findOne[model.Role](ctx, r.collection, bson.M{"name": name})
}

// FindByIDs resolves the role IDs stored on a user to the roles that are
// still active. Malformed IDs are ignored.
func (r *RoleRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Role, error) {
	return findAll[model.Role](ctx, r.collection, bson.M{
		"_id":    bson.M{"$in": objectIDs(ids)},
		"active": true,
	})
}

func (r *RoleRepository) Update(ctx context.Context, role *model.Role) error {
	role.UpdatedAt = time.Now().UTC()
	return matchedOrNotFound(r.collection.UpdateOne(ctx, bson.M{"_id": role.ID}, bson.M{"$set": role}))
}

// Delete deactivates the role. Users keep the reference but FindByIDs skips it.
func (r *RoleRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return matchedOrNotFound(r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now().UTC()}},
	))
}

func (r *RoleRepository) List(ctx context.Context, filter bson.M, limit, skip int64) ([]*model.Role, error) {
	return findAll[model.Role](ctx, r.collection, filter, page(limit, skip).SetSort(bson.D{{Key: "name", Value: 1}}))
}
