// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockShoppingListRepositoryInterface is a testify mock for repository.ShoppingListRepositoryInterface.
type MockShoppingListRepositoryInterface struct {
	mock.Mock
}

func (m *MockShoppingListRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.ShoppingList, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ShoppingList), args.Error(1)
}

func (m *MockShoppingListRepositoryInterface) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.ShoppingList, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ShoppingList), args.Error(1)
}

func (m *MockShoppingListRepositoryInterface) Create(ctx context.Context, list *model.ShoppingList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockShoppingListRepositoryInterface) Update(ctx context.Context, list *model.ShoppingList) error {
	args := m.Called(ctx, list)
	return args.Error(0)
}

func (m *MockShoppingListRepositoryInterface) SetItemChecked(ctx context.Context, listID primitive.ObjectID, itemID primitive.ObjectID, checked bool) error {
	args := m.Called(ctx, listID, itemID, checked)
	return args.Error(0)
}

func (m *MockShoppingListRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
