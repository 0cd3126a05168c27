// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockMealPlanRepositoryInterface is a testify mock for repository.MealPlanRepositoryInterface.
type MockMealPlanRepositoryInterface struct {
	mock.Mock
}

func (m *MockMealPlanRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepositoryInterface) FindByIDWithRecipes(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepositoryInterface) FindByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.MealPlan, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MealPlan), args.Error(1)
}

func (m *MockMealPlanRepositoryInterface) Create(ctx context.Context, plan *model.MealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMealPlanRepositoryInterface) Update(ctx context.Context, plan *model.MealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMealPlanRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
