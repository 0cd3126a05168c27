package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
)

const resourceMealPlan = "Meal plan"

// MealPlanService manages weekly meal plans.
type MealPlanService interface {
	// Get returns the plan with each planned meal's recipe attached, or nil
	// without error when it does not exist.
	Get(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error)
	ListByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.MealPlan, error)
	Create(ctx context.Context, plan *model.MealPlan) error
	// Update moves the plan's week and replaces its planned meals.
	Update(ctx context.Context, id primitive.ObjectID, weekStart time.Time, meals []model.PlannedMeal) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MealPlanServiceImpl implements MealPlanService.
type MealPlanServiceImpl struct {
	mealPlanRepo  repository.MealPlanRepositoryInterface
	householdRepo repository.HouseholdRepositoryInterface
	recipeRepo    repository.RecipeRepositoryInterface
}

// NewMealPlanService creates a new meal plan service.
func NewMealPlanService(
	mealPlanRepo repository.MealPlanRepositoryInterface,
	householdRepo repository.HouseholdRepositoryInterface,
	recipeRepo repository.RecipeRepositoryInterface,
) MealPlanService {
	return &MealPlanServiceImpl{
		mealPlanRepo:  mealPlanRepo,
		householdRepo: householdRepo,
		recipeRepo:    recipeRepo,
	}
}

func (s *MealPlanServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	if s.mealPlanRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.mealPlanRepo.FindByIDWithRecipes(ctx, id)
}

func (s *MealPlanServiceImpl) ListByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.MealPlan, error) {
	if s.mealPlanRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.mealPlanRepo.FindByHousehold(ctx, householdID)
}

func (s *MealPlanServiceImpl) Create(ctx context.Context, plan *model.MealPlan) error {
	if s.mealPlanRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := requireHousehold(ctx, s.householdRepo, plan.HouseholdID); err != nil {
		return err
	}
	if err := s.requireRecipes(ctx, plan); err != nil {
		return err
	}
	plan.WeekStartDate = truncateToDate(plan.WeekStartDate)
	if err := s.mealPlanRepo.Create(ctx, plan); err != nil {
		return fmt.Errorf("create meal plan: %w", err)
	}
	return nil
}

func (s *MealPlanServiceImpl) Update(ctx context.Context, id primitive.ObjectID, weekStart time.Time, meals []model.PlannedMeal) error {
	if s.mealPlanRepo == nil {
		return ErrRepositoryNotConfigured
	}
	plan, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}

	plan.WeekStartDate = truncateToDate(weekStart)
	plan.PlannedMeals = make([]model.PlannedMeal, len(meals))
	for i, meal := range meals {
		meal.ID = primitive.NilObjectID
		meal.Recipe = nil
		plan.PlannedMeals[i] = meal
	}
	if err := s.requireRecipes(ctx, plan); err != nil {
		return err
	}

	return fromRepository(resourceMealPlan, id.Hex(), s.mealPlanRepo.Update(ctx, plan))
}

func (s *MealPlanServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.mealPlanRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if _, err := s.mustGet(ctx, id); err != nil {
		return err
	}
	return fromRepository(resourceMealPlan, id.Hex(), s.mealPlanRepo.Delete(ctx, id))
}

func (s *MealPlanServiceImpl) mustGet(ctx context.Context, id primitive.ObjectID) (*model.MealPlan, error) {
	plan, err := s.mealPlanRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, notFound(resourceMealPlan, id.Hex())
	}
	return plan, nil
}

// requireRecipes fails with a NotFoundError for the first planned recipe
// that does not exist in the plan's household.
func (s *MealPlanServiceImpl) requireRecipes(ctx context.Context, plan *model.MealPlan) error {
	ids := plan.RecipeIDs()
	if s.recipeRepo == nil || len(ids) == 0 {
		return nil
	}

	found, err := s.recipeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}
	known := make(map[primitive.ObjectID]struct{}, len(found))
	for _, r := range found {
		if r.HouseholdID == plan.HouseholdID {
			known[r.ID] = struct{}{}
		}
	}
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			return notFound(resourceRecipe, id.Hex())
		}
	}
	return nil
}

// truncateToDate keeps only the calendar date of t, as UTC midnight.
func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
