package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/service"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestScaleQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		target   int
		base     int
		expected string
	}{
		{"double", "200", 4, 2, "400"},
		{"halve", "100", 1, 2, "50"},
		{"same size", "2.5", 4, 4, "2.5"},
		{"thirds stay exact when multiplied first", "300", 1, 3, "100"},
		{"fractional result", "1", 5, 4, "1.25"},
		{"zero quantity", "0", 8, 2, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.ScaleQuantity(dec(tt.quantity), tt.target, tt.base)
			assert.True(t, dec(tt.expected).Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestScaleQuantity_Composable(t *testing.T) {
	bases := []int{1, 2, 4, 5, 8, 10}
	quantities := []string{"200", "0.75", "3", "12.5"}

	for _, q := range quantities {
		for _, s := range bases {
			for _, n1 := range bases {
				for _, n2 := range bases {
					via := service.ScaleQuantity(service.ScaleQuantity(dec(q), n1, s), n2, n1)
					direct := service.ScaleQuantity(dec(q), n2, s)
					assert.True(t, direct.Equal(via), "q=%s S=%d N1=%d N2=%d: %s != %s", q, s, n1, n2, via, direct)
				}
			}
		}
	}
}

func TestScaleFactor(t *testing.T) {
	factor, err := service.ScaleFactor(6, 4)
	require.NoError(t, err)
	assert.True(t, dec("1.5").Equal(factor))

	_, err = service.ScaleFactor(0, 4)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = service.ScaleFactor(-2, 4)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = service.ScaleFactor(2, 0)
	assert.ErrorIs(t, err, service.ErrInvalidArgument)
}

func TestScaleRecipe(t *testing.T) {
	pasta := primitive.NewObjectID()
	garlic := primitive.NewObjectID()
	recipe := &model.Recipe{
		ID:          primitive.NewObjectID(),
		Name:        "Spaghetti",
		ServingSize: 2,
		Ingredients: []model.RecipeIngredient{
			{IngredientID: pasta, Quantity: dec("200"), Unit: model.Gram},
			{IngredientID: garlic, Quantity: dec("1"), Unit: model.Clove, Notes: "minced"},
		},
	}

	t.Run("scales every ingredient and keeps units and notes", func(t *testing.T) {
		scaled, err := service.ScaleRecipe(recipe, 6)
		require.NoError(t, err)

		assert.Equal(t, 6, scaled.ServingSize)
		assert.Equal(t, recipe.ID, scaled.ID)
		require.Len(t, scaled.Ingredients, 2)
		assert.True(t, dec("600").Equal(scaled.Ingredients[0].Quantity))
		assert.Equal(t, model.Gram, scaled.Ingredients[0].Unit)
		assert.True(t, dec("3").Equal(scaled.Ingredients[1].Quantity))
		assert.Equal(t, "minced", scaled.Ingredients[1].Notes)
	})

	t.Run("does not mutate the source recipe", func(t *testing.T) {
		_, err := service.ScaleRecipe(recipe, 1)
		require.NoError(t, err)

		assert.Equal(t, 2, recipe.ServingSize)
		assert.True(t, dec("200").Equal(recipe.Ingredients[0].Quantity))
		assert.True(t, dec("1").Equal(recipe.Ingredients[1].Quantity))
	})

	t.Run("non-positive servings fail", func(t *testing.T) {
		for _, servings := range []int{0, -1} {
			scaled, err := service.ScaleRecipe(recipe, servings)
			assert.Nil(t, scaled)
			assert.ErrorIs(t, err, service.ErrInvalidArgument)
		}
	})

	t.Run("invalid base serving size fails", func(t *testing.T) {
		broken := &model.Recipe{ServingSize: 0}
		_, err := service.ScaleRecipe(broken, 2)
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})
}
