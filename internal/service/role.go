package service

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
)

// RoleService resolves the roles carried in access tokens.
type RoleService interface {
	FindByIDs(ctx context.Context, ids []string) ([]*model.Role, error)
	// GrantedPermissions is the union of the permissions of the active roles in ids.
	GrantedPermissions(ctx context.Context, ids []string) (model.PermissionSet, error)
}

// RoleServiceImpl implements RoleService.
type RoleServiceImpl struct {
	roleRepo repository.RoleRepositoryInterface
}

// NewRoleService creates a new role service.
func NewRoleService(roleRepo repository.RoleRepositoryInterface) RoleService {
	return &RoleServiceImpl{roleRepo: roleRepo}
}

func (s *RoleServiceImpl) FindByIDs(ctx context.Context, ids []string) ([]*model.Role, error) {
	if s.roleRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if len(ids) == 0 {
		return []*model.Role{}, nil
	}
	return s.roleRepo.FindByIDs(ctx, ids)
}

func (s *RoleServiceImpl) GrantedPermissions(ctx context.Context, ids []string) (model.PermissionSet, error) {
	roles, err := s.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return model.GrantedBy(roles), nil
}
