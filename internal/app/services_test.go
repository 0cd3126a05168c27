//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/mocks"
	"github.com/guttosm/meal-planner/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.CacheConfig
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates services with cache disabled",
			cfg: config.CacheConfig{
				Size: 0,
				TTL:  0,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.Nil(t, components.NameCache)
			},
		},
		{
			name: "creates services with name cache enabled",
			cfg: config.CacheConfig{
				Size: 1000,
				TTL:  5 * time.Minute,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				require.NotNil(t, components.NameCache)
				components.NameCache.Stop()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg, nil)

			require.NotNil(t, components)
			s := components.Services
			assert.NotNil(t, s.Households)
			assert.NotNil(t, s.Ingredients)
			assert.NotNil(t, s.Recipes)
			assert.NotNil(t, s.MealPlans)
			assert.NotNil(t, s.Pantries)
			assert.NotNil(t, s.ShoppingLists)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestInitializeServices_WithoutDatabase(t *testing.T) {
	components := InitializeServices(config.CacheConfig{}, nil)

	_, err := components.Services.Ingredients.List(context.Background())
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)

	_, err = components.Services.Households.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, service.ErrRepositoryNotConfigured)
}

func TestInitializeServices_UsesDatabaseRepositories(t *testing.T) {
	ingredients := new(mocks.MockIngredientRepositoryInterface)
	ingredients.On("List", mock.Anything).Return([]*model.Ingredient{{Name: "Salt"}}, nil).Once()

	components := InitializeServices(config.CacheConfig{}, &DatabaseComponents{IngredientRepo: ingredients})

	got, err := components.Services.Ingredients.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Salt", got[0].Name)
	ingredients.AssertExpectations(t)
}
