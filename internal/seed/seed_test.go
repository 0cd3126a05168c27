package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

func TestDefault(t *testing.T) {
	ingredients, err := Default()

	require.NoError(t, err)
	require.Len(t, ingredients, 23)
	assert.Equal(t, model.Ingredient{Name: "Chicken Breast", Category: "Meat"}, ingredients[0])
	assert.Equal(t, model.Ingredient{Name: "Sugar", Category: "Baking"}, ingredients[len(ingredients)-1])
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		expected    []model.Ingredient
		expectedErr string
	}{
		{
			name: "trims whitespace",
			data: "ingredients:\n  - name: '  Saffron '\n    category: Spices\n  - name: Water\n",
			expected: []model.Ingredient{
				{Name: "Saffron", Category: "Spices"},
				{Name: "Water"},
			},
		},
		{
			name:        "empty document",
			data:        "   \n",
			expectedErr: "catalog is empty",
		},
		{
			name:        "not yaml",
			data:        "ingredients: [",
			expectedErr: "decode catalog",
		},
		{
			name:        "missing name",
			data:        "ingredients:\n  - category: Spices\n",
			expectedErr: "name: is required",
		},
		{
			name:        "name too long",
			data:        "ingredients:\n  - name: " + strings.Repeat("x", 51) + "\n",
			expectedErr: "name: must be at most 50 characters",
		},
		{
			name:        "duplicate name",
			data:        "ingredients:\n  - name: Salt\n  - name: Salt\n",
			expectedErr: `"Salt" listed twice`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ingredients, err := Parse([]byte(tt.data))

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedErr)
				assert.Nil(t, ingredients)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ingredients)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path uses the embedded catalog", func(t *testing.T) {
		ingredients, err := Load("")
		require.NoError(t, err)
		assert.Len(t, ingredients, 23)
	})

	t.Run("reads a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte("ingredients:\n  - name: Tofu\n    category: Protein\n"), 0o600))

		ingredients, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, []model.Ingredient{{Name: "Tofu", Category: "Protein"}}, ingredients)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("reader", func(t *testing.T) {
		ingredients, err := LoadReader(strings.NewReader("ingredients:\n  - name: Leeks\n"))
		require.NoError(t, err)
		assert.Equal(t, "Leeks", ingredients[0].Name)
	})
}
