// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockHouseholdRepositoryInterface is a testify mock for repository.HouseholdRepositoryInterface.
type MockHouseholdRepositoryInterface struct {
	mock.Mock
}

func (m *MockHouseholdRepositoryInterface) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Household, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Household), args.Error(1)
}

func (m *MockHouseholdRepositoryInterface) FindByUserID(ctx context.Context, userID string) ([]*model.Household, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Household), args.Error(1)
}

func (m *MockHouseholdRepositoryInterface) Create(ctx context.Context, household *model.Household) error {
	args := m.Called(ctx, household)
	return args.Error(0)
}

func (m *MockHouseholdRepositoryInterface) Update(ctx context.Context, household *model.Household) error {
	args := m.Called(ctx, household)
	return args.Error(0)
}

func (m *MockHouseholdRepositoryInterface) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
