// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockShoppingListService is a testify mock for service.ShoppingListService.
type MockShoppingListService struct {
	mock.Mock
}

func (m *MockShoppingListService) Get(ctx context.Context, id primitive.ObjectID) (*model.ShoppingList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) ListByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.ShoppingList, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) Create(ctx context.Context, list *model.ShoppingList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockShoppingListService) Update(ctx context.Context, id primitive.ObjectID, mealPlanID *primitive.ObjectID, notes string, items []model.ShoppingListItem) error {
	args := m.Called(ctx, id, mealPlanID, notes, items)
	return args.Error(0)
}

func (m *MockShoppingListService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShoppingListService) GenerateFromMealPlan(ctx context.Context, mealPlanID primitive.ObjectID, householdID primitive.ObjectID) (*model.ShoppingList, error) {
	args := m.Called(ctx, mealPlanID, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingList), args.Error(1)
}

func (m *MockShoppingListService) ToggleItem(ctx context.Context, listID primitive.ObjectID, itemID primitive.ObjectID) (bool, error) {
	args := m.Called(ctx, listID, itemID)
	return args.Bool(0), args.Error(1)
}
