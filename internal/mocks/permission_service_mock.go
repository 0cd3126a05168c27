// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPermissionService is a testify mock for service.PermissionService.
type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) PermissionID(ctx context.Context, resource string, action string) (string, error) {
	args := m.Called(ctx, resource, action)
	return args.String(0), args.Error(1)
}
