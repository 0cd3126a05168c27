// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockPantryService is a testify mock for service.PantryService.
type MockPantryService struct {
	mock.Mock
}

func (m *MockPantryService) GetByHousehold(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pantry), args.Error(1)
}

func (m *MockPantryService) Create(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pantry), args.Error(1)
}

func (m *MockPantryService) AddItem(ctx context.Context, householdID primitive.ObjectID, item model.PantryItem) (*model.PantryItem, error) {
	args := m.Called(ctx, householdID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PantryItem), args.Error(1)
}

func (m *MockPantryService) UpdateItem(ctx context.Context, pantryID primitive.ObjectID, itemID primitive.ObjectID, item model.PantryItem) error {
	args := m.Called(ctx, pantryID, itemID, item)
	return args.Error(0)
}

func (m *MockPantryService) RemoveItem(ctx context.Context, pantryID primitive.ObjectID, itemID primitive.ObjectID) error {
	args := m.Called(ctx, pantryID, itemID)
	return args.Error(0)
}
