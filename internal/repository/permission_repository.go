package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

// PermissionRepositoryInterface defines the interface for permission repository operations.
type PermissionRepositoryInterface interface {
	Create(ctx context.Context, permission *model.Permission) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Permission, error)
	FindByResourceAndAction(ctx context.Context, resource, action string) (*model.Permission, error)
	FindByIDs(ctx context.Context, ids []string) ([]*model.Permission, error)
	Update(ctx context.Context, permission *model.Permission) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter bson.M, limit, skip int64) ([]*model.Permission, error)
}

// PermissionRepository stores the "<resource>:<action>" grants roles refer to.
type PermissionRepository struct {
	collection *mongo.Collection
}

func NewPermissionRepository(db *MongoDB) *PermissionRepository {
	return &PermissionRepository{collection: db.Permissions}
}

// Create inserts a permission. Returns ErrDuplicate when the resource/action
// pair already exists.
func (r *PermissionRepository) Create(ctx context.Context, permission *model.Permission) error {
	now := time.Now().UTC()
	if permission.ID.IsZero() {
		permission.ID = primitive.NewObjectID()
	}
	permission.CreatedAt = now
	permission.UpdatedAt = now

	_, err := r.collection.InsertOne(ctx, permission)
	return translateWriteError(err)
}

func (r *PermissionRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Permission, error) {
	return findOne[model.Permission](ctx, r.collection, bson.M{"_id": id})
}

// FindByResourceAndAction matches inactive permissions too, so callers can
// tell "never created" from "switched off".
func (r *PermissionRepository) FindByResourceAndAction(ctx context.Context, resource, action string) (*model.Permission, error) {
	return findOne[model.Permission](ctx, r.collection, bson.M{"resource": resource, "action": action})
}

func (r *PermissionRepository) FindByIDs(ctx context.Context, ids []string) ([]*model.Permission, error) {
	return findAll[model.Permission](ctx, r.collection, bson.M{"_id": bson.M{"$in": objectIDs(ids)}})
}

func (r *PermissionRepository) Update(ctx context.Context, permission *model.Permission) error {
	permission.UpdatedAt = time.Now().UTC()
	return matchedOrNotFound(r.collection.UpdateOne(ctx, bson.M{"_id": permission.ID}, bson.M{"$set": permission}))
}

// Delete deactivates the permission.
func (r *PermissionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return matchedOrNotFound(r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now().UTC()}},
	))
}

func (r *PermissionRepository) List(ctx context.Context, filter bson.M, limit, skip int64) ([]*model.Permission, error) {
	return findAll[model.Permission](ctx, r.collection, filter,
		page(limit, skip).SetSort(bson.D{{Key: "resource", Value: 1}, {Key: "action", Value: 1}}))
}
