package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/repository"
)

const resourceRecipe = "Recipe"

// RecipeService manages household recipes.
type RecipeService interface {
	// Get returns nil without error when the recipe does not exist.
	Get(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error)
	ListByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.Recipe, error)
	Search(ctx context.Context, householdID primitive.ObjectID, term string) ([]*model.Recipe, error)
	Create(ctx context.Context, recipe *model.Recipe) error
	// Update overwrites the recipe's fields with those of changes and
	// reconciles its ingredients by ingredient ID.
	Update(ctx context.Context, id primitive.ObjectID, changes *model.Recipe) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// Scale returns a copy of the recipe sized for servings. Nothing is stored.
	Scale(ctx context.Context, id primitive.ObjectID, servings int) (*model.Recipe, error)
}

// RecipeServiceImpl implements RecipeService.
type RecipeServiceImpl struct {
	recipeRepo     repository.RecipeRepositoryInterface
	householdRepo  repository.HouseholdRepositoryInterface
	ingredientRepo repository.IngredientRepositoryInterface
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	recipeRepo repository.RecipeRepositoryInterface,
	householdRepo repository.HouseholdRepositoryInterface,
	ingredientRepo repository.IngredientRepositoryInterface,
) RecipeService {
	return &RecipeServiceImpl{
		recipeRepo:     recipeRepo,
		householdRepo:  householdRepo,
		ingredientRepo: ingredientRepo,
	}
}

func (s *RecipeServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	if s.recipeRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recipeRepo.FindByID(ctx, id)
}

func (s *RecipeServiceImpl) ListByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.Recipe, error) {
	if s.recipeRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recipeRepo.FindByHousehold(ctx, householdID)
}

func (s *RecipeServiceImpl) Search(ctx context.Context, householdID primitive.ObjectID, term string) ([]*model.Recipe, error) {
	if s.recipeRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.recipeRepo.Search(ctx, householdID, term)
}

func (s *RecipeServiceImpl) Create(ctx context.Context, recipe *model.Recipe) error {
	if s.recipeRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := requireHousehold(ctx, s.householdRepo, recipe.HouseholdID); err != nil {
		return err
	}
	if err := s.requireIngredients(ctx, recipe.Ingredients); err != nil {
		return err
	}
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

func (s *RecipeServiceImpl) Update(ctx context.Context, id primitive.ObjectID, changes *model.Recipe) error {
	recipe, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireIngredients(ctx, changes.Ingredients); err != nil {
		return err
	}

	recipe.Name = changes.Name
	recipe.Description = changes.Description
	recipe.Instructions = changes.Instructions
	recipe.PrepTimeMinutes = changes.PrepTimeMinutes
	recipe.CookTimeMinutes = changes.CookTimeMinutes
	recipe.ServingSize = changes.ServingSize
	recipe.Ingredients = reconcileIngredients(recipe.Ingredients, changes.Ingredients)
	recipe.UpdatedAt = time.Now().UTC()

	return fromRepository(resourceRecipe, id.Hex(), s.recipeRepo.Update(ctx, recipe))
}

func (s *RecipeServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.mustGet(ctx, id); err != nil {
		return err
	}
	return fromRepository(resourceRecipe, id.Hex(), s.recipeRepo.Delete(ctx, id))
}

func (s *RecipeServiceImpl) Scale(ctx context.Context, id primitive.ObjectID, servings int) (*model.Recipe, error) {
	if servings <= 0 {
		metrics.RecordRecipeScale("invalid")
		return nil, errNonPositiveServings
	}

	recipe, err := s.mustGet(ctx, id)
	if err != nil {
		metrics.RecordRecipeScale("error")
		return nil, err
	}

	scaled, err := ScaleRecipe(recipe, servings)
	if err != nil {
		metrics.RecordRecipeScale("invalid")
		return nil, err
	}
	metrics.RecordRecipeScale("success")
	return scaled, nil
}

func (s *RecipeServiceImpl) mustGet(ctx context.Context, id primitive.ObjectID) (*model.Recipe, error) {
	if s.recipeRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	recipe, err := s.recipeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, notFound(resourceRecipe, id.Hex())
	}
	return recipe, nil
}

// requireIngredients fails with a NotFoundError naming the first ingredient
// that is missing from the catalog.
func (s *RecipeServiceImpl) requireIngredients(ctx context.Context, lines []model.RecipeIngredient) error {
	if s.ingredientRepo == nil || len(lines) == 0 {
		return nil
	}
	ids := make([]primitive.ObjectID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.IngredientID)
	}

	found, err := s.ingredientRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load ingredients: %w", err)
	}
	known := make(map[primitive.ObjectID]struct{}, len(found))
	for _, ing := range found {
		known[ing.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return notFound(resourceIngredient, id.Hex())
		}
	}
	return nil
}

// reconcileIngredients merges desired into current by ingredient ID. Lines
// missing from desired are dropped, matching lines are updated in place and
// keep their position, and new lines are appended in the order given.
func reconcileIngredients(current, desired []model.RecipeIngredient) []model.RecipeIngredient {
	wanted := make(map[primitive.ObjectID]model.RecipeIngredient, len(desired))
	for _, d := range desired {
		wanted[d.IngredientID] = d
	}

	result := make([]model.RecipeIngredient, 0, len(desired))
	kept := make(map[primitive.ObjectID]struct{}, len(current))
	for _, c := range current {
		d, ok := wanted[c.IngredientID]
		if !ok {
			continue
		}
		c.Quantity = d.Quantity
		c.Unit = d.Unit
		c.Notes = d.Notes
		result = append(result, c)
		kept[c.IngredientID] = struct{}{}
	}
	for _, d := range desired {
		if _, ok := kept[d.IngredientID]; ok {
			continue
		}
		result = append(result, d)
		kept[d.IngredientID] = struct{}{}
	}
	return result
}

// requireHousehold fails with a NotFoundError when the household does not
// exist. A nil repository skips the check.
func requireHousehold(ctx context.Context, repo repository.HouseholdRepositoryInterface, id primitive.ObjectID) error {
	if repo == nil {
		return nil
	}
	household, err := repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load household: %w", err)
	}
	if household == nil {
		return notFound(resourceHousehold, id.Hex())
	}
	return nil
}
