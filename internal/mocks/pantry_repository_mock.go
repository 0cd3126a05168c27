// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPantryRepositoryInterface is a testify mock for repository.PantryRepositoryInterface.
type MockPantryRepositoryInterface struct {
	mock.Mock
}

func (m *MockPantryRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pantry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pantry), args.Error(1)
}

func (m *MockPantryRepositoryInterface) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pantry), args.Error(1)
}

func (m *MockPantryRepositoryInterface) Create(ctx context.Context, pantry *model.Pantry) error {
	args := m.Called(ctx, pantry)
	return args.Error(0)
}

func (m *MockPantryRepositoryInterface) Update(ctx context.Context, pantry *model.Pantry) error {
	args := m.Called(ctx, pantry)
	return args.Error(0)
}
