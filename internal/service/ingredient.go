package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/guttosm/meal-planner/internal/service/cache"
)

const resourceIngredient = "Ingredient"

// IngredientService manages the shared ingredient catalog.
type IngredientService interface {
	// Get returns nil without error when the ingredient does not exist.
	Get(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error)
	List(ctx context.Context) ([]*model.Ingredient, error)
	Search(ctx context.Context, term string) ([]*model.Ingredient, error)
	// Create returns an error matching ErrConflict when the name is taken.
	Create(ctx context.Context, ingredient *model.Ingredient) error
	Update(ctx context.Context, id primitive.ObjectID, name, category string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// Names resolves display names for ids. Unknown ids are absent from the result.
	Names(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
	// Seed inserts the ingredients whose names are not yet in the catalog and
	// returns how many were inserted.
	Seed(ctx context.Context, ingredients []model.Ingredient) (int, error)
}

// IngredientServiceImpl implements IngredientService. Names are served from
// an optional cache that is kept in step with updates and deletes.
type IngredientServiceImpl struct {
	ingredientRepo repository.IngredientRepositoryInterface
	names          cache.Cache[string]
}

// IngredientOption configures an IngredientServiceImpl.
type IngredientOption func(*IngredientServiceImpl)

// WithNameCache enables name caching.
func WithNameCache(c cache.Cache[string]) IngredientOption {
	return func(s *IngredientServiceImpl) {
		s.names = c
	}
}

// NewIngredientService creates a new ingredient service.
func NewIngredientService(ingredientRepo repository.IngredientRepositoryInterface, opts ...IngredientOption) IngredientService {
	s := &IngredientServiceImpl{ingredientRepo: ingredientRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *IngredientServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	if s.ingredientRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.ingredientRepo.FindByID(ctx, id)
}

func (s *IngredientServiceImpl) List(ctx context.Context) ([]*model.Ingredient, error) {
	if s.ingredientRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.ingredientRepo.List(ctx)
}

func (s *IngredientServiceImpl) Search(ctx context.Context, term string) ([]*model.Ingredient, error) {
	if s.ingredientRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.ingredientRepo.Search(ctx, term)
}

func (s *IngredientServiceImpl) Create(ctx context.Context, ingredient *model.Ingredient) error {
	if s.ingredientRepo == nil {
		return ErrRepositoryNotConfigured
	}
	ingredient.CreatedAt = time.Now().UTC()
	err := s.ingredientRepo.Create(ctx, ingredient)
	if errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("ingredient %q already exists: %w", ingredient.Name, ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("create ingredient: %w", err)
	}
	s.remember(ingredient)
	return nil
}

func (s *IngredientServiceImpl) Update(ctx context.Context, id primitive.ObjectID, name, category string) error {
	ingredient, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}

	ingredient.Name = name
	ingredient.Category = category
	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fmt.Errorf("ingredient %q already exists: %w", name, ErrConflict)
		}
		return fromRepository(resourceIngredient, id.Hex(), err)
	}
	s.remember(ingredient)
	return nil
}

func (s *IngredientServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.mustGet(ctx, id); err != nil {
		return err
	}
	if err := s.ingredientRepo.Delete(ctx, id); err != nil {
		return fromRepository(resourceIngredient, id.Hex(), err)
	}
	if s.names != nil {
		s.names.Invalidate(id.Hex())
	}
	return nil
}

func (s *IngredientServiceImpl) Names(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	if s.ingredientRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	names := make(map[primitive.ObjectID]string, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	var missing []primitive.ObjectID
	for _, id := range ids {
		if _, done := seen[id]; done {
			continue
		}
		seen[id] = struct{}{}
		if s.names != nil {
			if name, ok := s.names.Get(id.Hex()); ok {
				names[id] = name
				continue
			}
		}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return names, nil
	}

	found, err := s.ingredientRepo.FindByIDs(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("resolve ingredient names: %w", err)
	}
	for _, ing := range found {
		names[ing.ID] = ing.Name
		s.remember(ing)
	}
	return names, nil
}

func (s *IngredientServiceImpl) Seed(ctx context.Context, ingredients []model.Ingredient) (int, error) {
	if s.ingredientRepo == nil {
		return 0, ErrRepositoryNotConfigured
	}

	inserted := 0
	for i := range ingredients {
		created, err := s.ingredientRepo.Upsert(ctx, &ingredients[i])
		if err != nil {
			return inserted, fmt.Errorf("seed ingredient %q: %w", ingredients[i].Name, err)
		}
		if created {
			inserted++
		}
	}
	log.Info().
		Int("inserted", inserted).
		Int("total", len(ingredients)).
		Msg("Ingredient catalog seeded")
	return inserted, nil
}

func (s *IngredientServiceImpl) mustGet(ctx context.Context, id primitive.ObjectID) (*model.Ingredient, error) {
	if s.ingredientRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	ingredient, err := s.ingredientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, notFound(resourceIngredient, id.Hex())
	}
	return ingredient, nil
}

func (s *IngredientServiceImpl) remember(ingredient *model.Ingredient) {
	if s.names != nil {
		s.names.Set(ingredient.ID.Hex(), ingredient.Name)
	}
}
