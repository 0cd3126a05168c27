//go:build !integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/mocks"
)

// storedPermissions makes every default permission already exist, with ids
// keyed by name so tests can tell grants apart.
func storedPermissions(repo *mocks.MockPermissionRepositoryInterface) map[string]string {
	ids := make(map[string]string)
	for _, p := range defaultPermissions() {
		id := primitive.NewObjectID()
		ids[p.Name] = id.Hex()
		repo.On("FindByResourceAndAction", mock.Anything, p.Resource, p.Action).
			Return(&model.Permission{ID: id, Resource: p.Resource, Action: p.Action}, nil).Once()
	}
	return ids
}

func TestDefaultPermissions(t *testing.T) {
	permissions := defaultPermissions()

	require.Len(t, permissions, 17)
	assert.Equal(t, "households:read", permissions[0].Name)
	assert.Equal(t, "Read meal plans", permissions[6].Description)
	assert.Equal(t, "Create/update/delete shopping lists", permissions[11].Description)
	assert.Equal(t, "roles:write", permissions[16].Name)
	for _, p := range permissions {
		assert.Equal(t, p.Resource+":"+p.Action, p.Name)
		assert.True(t, p.Active)
	}
}

func TestSeedAccessControl_FreshDatabase(t *testing.T) {
	roles := new(mocks.MockRoleRepositoryInterface)
	perms := new(mocks.MockPermissionRepositoryInterface)

	perms.On("FindByResourceAndAction", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Times(17)
	perms.On("Create", mock.Anything, mock.AnythingOfType("*model.Permission")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Permission).ID = primitive.NewObjectID() }).
		Return(nil).Times(17)

	created := map[string]*model.Role{}
	roles.On("FindByName", mock.Anything, mock.Anything).Return(nil, nil).Twice()
	roles.On("Create", mock.Anything, mock.AnythingOfType("*model.Role")).
		Run(func(args mock.Arguments) {
			role := args.Get(1).(*model.Role)
			created[role.Name] = role
		}).Return(nil).Twice()

	require.NoError(t, seedAccessControl(context.Background(), roles, perms))

	require.Contains(t, created, "user")
	require.Contains(t, created, "admin")
	assert.Len(t, created["user"].Permissions, 12)
	assert.Len(t, created["admin"].Permissions, 17)
	assert.Subset(t, created["admin"].Permissions, created["user"].Permissions)
	assert.True(t, created["user"].Active)
	roles.AssertExpectations(t)
	perms.AssertExpectations(t)
}

func TestSeedAccessControl_AlreadySeeded(t *testing.T) {
	roles := new(mocks.MockRoleRepositoryInterface)
	perms := new(mocks.MockPermissionRepositoryInterface)
	ids := storedPermissions(perms)

	all := make([]string, 0, len(ids))
	for _, id := range ids {
		all = append(all, id)
	}
	roles.On("FindByName", mock.Anything, "user").Return(&model.Role{Name: "user", Permissions: all}, nil).Once()
	roles.On("FindByName", mock.Anything, "admin").Return(&model.Role{Name: "admin", Permissions: all}, nil).Once()

	require.NoError(t, seedAccessControl(context.Background(), roles, perms))

	roles.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	roles.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	perms.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSeedAccessControl_GrantsMissingDefaults(t *testing.T) {
	roles := new(mocks.MockRoleRepositoryInterface)
	perms := new(mocks.MockPermissionRepositoryInterface)
	ids := storedPermissions(perms)

	custom := primitive.NewObjectID().Hex()
	member := &model.Role{ID: primitive.NewObjectID(), Name: "user", Permissions: []string{custom, ids["recipes:read"]}}
	roles.On("FindByName", mock.Anything, "user").Return(member, nil).Once()
	roles.On("FindByName", mock.Anything, "admin").Return(nil, nil).Once()
	roles.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	roles.On("Update", mock.Anything, member).Return(nil).Once()

	require.NoError(t, seedAccessControl(context.Background(), roles, perms))

	assert.Len(t, member.Permissions, 13, "custom grant kept, the eleven missing defaults added")
	assert.Equal(t, custom, member.Permissions[0])
	assert.Contains(t, member.Permissions, ids["shopping_lists:write"])
	assert.NotContains(t, member.Permissions, ids["users:delete"])
	roles.AssertExpectations(t)
}

func TestSeedAccessControl_CollectsFailures(t *testing.T) {
	errDown := errors.New("server selection timeout")

	roles := new(mocks.MockRoleRepositoryInterface)
	perms := new(mocks.MockPermissionRepositoryInterface)

	perms.On("FindByResourceAndAction", mock.Anything, "households", "read").Return(nil, errDown).Once()
	perms.On("FindByResourceAndAction", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
	perms.On("Create", mock.Anything, mock.Anything).Return(nil)
	roles.On("FindByName", mock.Anything, "user").Return(nil, nil).Once()
	roles.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Role) bool { return r.Name == "user" })).
		Return(errors.New("duplicate key")).Once()
	roles.On("FindByName", mock.Anything, "admin").Return(nil, nil).Once()
	roles.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Role) bool { return r.Name == "admin" })).
		Run(func(args mock.Arguments) {
			assert.Len(t, args.Get(1).(*model.Role).Permissions, 16, "the failed permission is not granted")
		}).Return(nil).Once()

	err := seedAccessControl(context.Background(), roles, perms)

	require.Error(t, err)
	assert.ErrorIs(t, err, errDown)
	assert.ErrorContains(t, err, "households:read")
	assert.ErrorContains(t, err, "create role user")
	roles.AssertExpectations(t)
}
