// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a testify mock for service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email string, password string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, password)
	var r0 *dto.TokenPair
	if v := args.Get(0); v != nil {
		r0 = v.(*dto.TokenPair)
	}
	var r1 *model.User
	if v := args.Get(1); v != nil {
		r1 = v.(*model.User)
	}
	return r0, r1, args.Error(2)
}

func (m *MockAuthService) Register(ctx context.Context, email string, username string, password string, name string) (*dto.TokenPair, *model.User, error) {
	args := m.Called(ctx, email, username, password, name)
	var r0 *dto.TokenPair
	if v := args.Get(0); v != nil {
		r0 = v.(*dto.TokenPair)
	}
	var r1 *model.User
	if v := args.Get(1); v != nil {
		r1 = v.(*model.User)
	}
	return r0, r1, args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.TokenPair), args.Error(1)
}

func (m *MockAuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

func (m *MockAuthService) InvalidateToken(ctx context.Context, tokenString string) error {
	args := m.Called(ctx, tokenString)
	return args.Error(0)
}

func (m *MockAuthService) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockAuthService) Logout(ctx context.Context, accessToken string, refreshToken string) error {
	args := m.Called(ctx, accessToken, refreshToken)
	return args.Error(0)
}
