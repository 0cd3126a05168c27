// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockMealPlanService is a testify mock for service.MealPlanService.
type MockMealPlanService struct {
	mock.Mock
}

func (m *MockMealPlanService) Get(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MealPlan), args.Error(1)
}

func (m *MockMealPlanService) ListByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.MealPlan, error) {
	args := m.Called(ctx, householdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.MealPlan), args.Error(1)
}

func (m *MockMealPlanService) Create(ctx context.Context, plan *model.MealPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

func (m *MockMealPlanService) Update(ctx context.Context, id primitive.ObjectID, weekStart time.Time, meals []model.PlannedMeal) error {
	args := m.Called(ctx, id, weekStart, meals)
	return args.Error(0)
}

func (m *MockMealPlanService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
