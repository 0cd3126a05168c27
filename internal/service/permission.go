package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/guttosm/meal-planner/internal/repository"
)

// PermissionService resolves "<resource>:<action>" permissions to the ids
// roles store.
type PermissionService interface {
	PermissionID(ctx context.Context, resource, action string) (string, error)
}

// PermissionServiceImpl remembers every id it has resolved. Seeded
// permissions are never renamed, so a resolved id stays valid for the life
// of the process. Failed lookups are not remembered.
type PermissionServiceImpl struct {
	repo repository.PermissionRepositoryInterface

	mu  sync.RWMutex
	ids map[string]string
}

// NewPermissionService creates a new permission service.
func NewPermissionService(repo repository.PermissionRepositoryInterface) PermissionService {
	return &PermissionServiceImpl{repo: repo, ids: make(map[string]string)}
}

// PermissionID returns a *NotFoundError when the permission was never seeded.
func (s *PermissionServiceImpl) PermissionID(ctx context.Context, resource, action string) (string, error) {
	if s.repo == nil {
		return "", ErrRepositoryNotConfigured
	}
	name := resource + ":" + action

	s.mu.RLock()
	id, ok := s.ids[name]
	s.mu.RUnlock()
	if ok {
		return id, nil
	}

	perm, err := s.repo.FindByResourceAndAction(ctx, resource, action)
	if err != nil {
		return "", fmt.Errorf("find permission %s: %w", name, err)
	}
	if perm == nil {
		return "", notFound("Permission", name)
	}

	id = perm.ID.Hex()
	s.mu.Lock()
	s.ids[name] = id
	s.mu.Unlock()
	return id, nil
}
