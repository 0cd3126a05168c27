package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/mocks"
	"github.com/guttosm/meal-planner/internal/service"
)

func TestRoleService_FindByIDs(t *testing.T) {
	t.Run("empty id list skips the store", func(t *testing.T) {
		repo := new(mocks.MockRoleRepositoryInterface)
		roles, err := service.NewRoleService(repo).FindByIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.Empty(t, roles)
		assert.NotNil(t, roles)
		repo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
	})

	t.Run("delegates to the repository", func(t *testing.T) {
		cook := &model.Role{ID: primitive.NewObjectID(), Name: "cook", Active: true}
		ids := []string{cook.ID.Hex(), "not-an-id"}

		repo := new(mocks.MockRoleRepositoryInterface)
		repo.On("FindByIDs", mock.Anything, ids).Return([]*model.Role{cook}, nil).Once()

		roles, err := service.NewRoleService(repo).FindByIDs(context.Background(), ids)

		require.NoError(t, err)
		assert.Equal(t, []*model.Role{cook}, roles)
		repo.AssertExpectations(t)
	})

	t.Run("without repository", func(t *testing.T) {
		_, err := service.NewRoleService(nil).FindByIDs(context.Background(), []string{"r"})
		assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
	})
}

func TestRoleService_GrantedPermissions(t *testing.T) {
	cook := &model.Role{ID: primitive.NewObjectID(), Permissions: []string{"recipes:write", "recipes:read"}, Active: true}
	guest := &model.Role{ID: primitive.NewObjectID(), Permissions: []string{"recipes:read"}, Active: true}
	ids := []string{cook.ID.Hex(), guest.ID.Hex()}

	t.Run("union of role permissions", func(t *testing.T) {
		repo := new(mocks.MockRoleRepositoryInterface)
		repo.On("FindByIDs", mock.Anything, ids).Return([]*model.Role{cook, guest}, nil)

		granted, err := service.NewRoleService(repo).GrantedPermissions(context.Background(), ids)

		require.NoError(t, err)
		assert.Equal(t, model.PermissionSet{"recipes:write": {}, "recipes:read": {}}, granted)
	})

	t.Run("store error", func(t *testing.T) {
		repo := new(mocks.MockRoleRepositoryInterface)
		repo.On("FindByIDs", mock.Anything, ids).Return(nil, assert.AnError)

		granted, err := service.NewRoleService(repo).GrantedPermissions(context.Background(), ids)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, granted)
	})
}
