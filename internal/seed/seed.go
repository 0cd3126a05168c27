// Package seed loads the ingredient catalog imported at startup or by the
// seed command.
package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
)

//go:embed ingredients.yaml
var defaultCatalog []byte

type catalogEntry struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type catalog struct {
	Ingredients []catalogEntry `yaml:"ingredients"`
}

// Default returns the embedded catalog.
func Default() ([]model.Ingredient, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) ([]model.Ingredient, error) {
	if path == "" {
		return Default()
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	ingredients, err := Parse(content)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return ingredients, nil
}

// LoadReader reads a catalog from r.
func LoadReader(r io.Reader) ([]model.Ingredient, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("seed: read catalog: %w", err)
	}
	return Parse(content)
}

// Parse decodes a YAML catalog. Every entry is validated like an API request,
// and a name may appear only once.
func Parse(data []byte) ([]model.Ingredient, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("seed: catalog is empty")
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("seed: decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Ingredients))
	ingredients := make([]model.Ingredient, 0, len(c.Ingredients))
	for i, entry := range c.Ingredients {
		req := dto.IngredientRequest{
			Name:     strings.TrimSpace(entry.Name),
			Category: strings.TrimSpace(entry.Category),
		}
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("seed: ingredient %d: %w", i, err)
		}
		if _, dup := seen[req.Name]; dup {
			return nil, fmt.Errorf("seed: ingredient %q listed twice", req.Name)
		}
		seen[req.Name] = struct{}{}
		ingredients = append(ingredients, *req.ToModel())
	}
	return ingredients, nil
}
