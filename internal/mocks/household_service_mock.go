// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockHouseholdService is a testify mock for service.HouseholdService.
type MockHouseholdService struct {
	mock.Mock
}

func (m *MockHouseholdService) Get(ctx context.Context, id primitive.ObjectID) (*model.Household, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Household), args.Error(1)
}

func (m *MockHouseholdService) ListByUser(ctx context.Context, userID string) ([]*model.Household, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Household), args.Error(1)
}

func (m *MockHouseholdService) Create(ctx context.Context, name string, creatorID string) (*model.Household, error) {
	args := m.Called(ctx, name, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Household), args.Error(1)
}

func (m *MockHouseholdService) Update(ctx context.Context, id primitive.ObjectID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *MockHouseholdService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockHouseholdService) AddMember(ctx context.Context, id primitive.ObjectID, userID string, role model.HouseholdRole) error {
	args := m.Called(ctx, id, userID, role)
	return args.Error(0)
}

func (m *MockHouseholdService) RemoveMember(ctx context.Context, id primitive.ObjectID, userID string) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func (m *MockHouseholdService) UpdateMemberRole(ctx context.Context, id primitive.ObjectID, userID string, role model.HouseholdRole) error {
	args := m.Called(ctx, id, userID, role)
	return args.Error(0)
}

func (m *MockHouseholdService) IsMember(ctx context.Context, id primitive.ObjectID, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}
