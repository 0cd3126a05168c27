package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/repository"
)

const (
	resourceShoppingList     = "Shopping list"
	resourceShoppingListItem = "Shopping list item"
)

// ShoppingListService manages shopping lists and generates them from meal plans.
type ShoppingListService interface {
	// Get returns nil without error when the list does not exist.
	Get(ctx context.Context, id primitive.ObjectID) (*model.ShoppingList, error)
	ListByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.ShoppingList, error)
	Create(ctx context.Context, list *model.ShoppingList) error
	// Update overwrites the source meal plan and notes and replaces every item.
	Update(ctx context.Context, id primitive.ObjectID, mealPlanID *primitive.ObjectID, notes string, items []model.ShoppingListItem) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// GenerateFromMealPlan aggregates a meal plan into a brand-new list owned by householdID.
	GenerateFromMealPlan(ctx context.Context, mealPlanID, householdID primitive.ObjectID) (*model.ShoppingList, error)
	// ToggleItem flips an item's checked flag and returns the new value.
	ToggleItem(ctx context.Context, listID, itemID primitive.ObjectID) (bool, error)
}

// ShoppingListServiceImpl implements ShoppingListService.
type ShoppingListServiceImpl struct {
	shoppingListRepo repository.ShoppingListRepositoryInterface
	mealPlanRepo     repository.MealPlanRepositoryInterface
	householdRepo    repository.HouseholdRepositoryInterface
}

// NewShoppingListService creates a new shopping list service.
func NewShoppingListService(
	shoppingListRepo repository.ShoppingListRepositoryInterface,
	mealPlanRepo repository.MealPlanRepositoryInterface,
	householdRepo repository.HouseholdRepositoryInterface,
) ShoppingListService {
	return &ShoppingListServiceImpl{
		shoppingListRepo: shoppingListRepo,
		mealPlanRepo:     mealPlanRepo,
		householdRepo:    householdRepo,
	}
}

func (s *ShoppingListServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.ShoppingList, error) {
	if s.shoppingListRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.shoppingListRepo.FindByID(ctx, id)
}

func (s *ShoppingListServiceImpl) ListByHousehold(ctx context.Context, householdID primitive.ObjectID) ([]*model.ShoppingList, error) {
	if s.shoppingListRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.shoppingListRepo.FindByHousehold(ctx, householdID)
}

func (s *ShoppingListServiceImpl) Create(ctx context.Context, list *model.ShoppingList) error {
	if s.shoppingListRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := requireHousehold(ctx, s.householdRepo, list.HouseholdID); err != nil {
		return err
	}
	list.CreatedAt = time.Now().UTC()
	if err := s.shoppingListRepo.Create(ctx, list); err != nil {
		return fmt.Errorf("create shopping list: %w", err)
	}
	return nil
}

func (s *ShoppingListServiceImpl) Update(ctx context.Context, id primitive.ObjectID, mealPlanID *primitive.ObjectID, notes string, items []model.ShoppingListItem) error {
	list, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}

	list.MealPlanID = mealPlanID
	list.Notes = notes
	list.Items = make([]model.ShoppingListItem, len(items))
	for i, item := range items {
		item.ID = primitive.NilObjectID
		list.Items[i] = item
	}

	return fromRepository(resourceShoppingList, id.Hex(), s.shoppingListRepo.Update(ctx, list))
}

func (s *ShoppingListServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.mustGet(ctx, id); err != nil {
		return err
	}
	return fromRepository(resourceShoppingList, id.Hex(), s.shoppingListRepo.Delete(ctx, id))
}

func (s *ShoppingListServiceImpl) GenerateFromMealPlan(ctx context.Context, mealPlanID, householdID primitive.ObjectID) (*model.ShoppingList, error) {
	if s.shoppingListRepo == nil || s.mealPlanRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	start := time.Now()

	list, err := s.generate(ctx, mealPlanID, householdID)
	if err != nil {
		metrics.RecordShoppingListGeneration(time.Since(start), 0, "error")
		return nil, err
	}

	metrics.RecordShoppingListGeneration(time.Since(start), len(list.Items), "success")
	log.Ctx(ctx).Debug().
		Str("meal_plan_id", mealPlanID.Hex()).
		Str("shopping_list_id", list.ID.Hex()).
		Int("items", len(list.Items)).
		Msg("Shopping list generated")
	return list, nil
}

func (s *ShoppingListServiceImpl) generate(ctx context.Context, mealPlanID, householdID primitive.ObjectID) (*model.ShoppingList, error) {
	plan, err := s.mealPlanRepo.FindByIDWithRecipes(ctx, mealPlanID)
	if err != nil {
		return nil, fmt.Errorf("load meal plan: %w", err)
	}
	if plan == nil {
		return nil, notFound(resourceMealPlan, mealPlanID.Hex())
	}
	if err := requireHousehold(ctx, s.householdRepo, householdID); err != nil {
		return nil, err
	}

	list := BuildShoppingList(plan, householdID, time.Now().UTC())
	for _, item := range list.Items {
		if _, ok := primitive.ParseDecimal128FromBigInt(item.Quantity.Coefficient(), int(item.Quantity.Exponent())); !ok {
			return nil, &InvalidArgumentError{
				Argument: "quantity",
				Message:  fmt.Sprintf("generated quantity %s is too large to store", item.Quantity),
			}
		}
	}
	if err := s.shoppingListRepo.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("save generated shopping list: %w", err)
	}
	return list, nil
}

func (s *ShoppingListServiceImpl) ToggleItem(ctx context.Context, listID, itemID primitive.ObjectID) (bool, error) {
	list, err := s.mustGet(ctx, listID)
	if err != nil {
		return false, err
	}
	item := list.Item(itemID)
	if item == nil {
		return false, childNotFound(resourceShoppingListItem, itemID.Hex(), "shopping list "+listID.Hex())
	}

	checked := !item.IsChecked
	if err := s.shoppingListRepo.SetItemChecked(ctx, listID, itemID, checked); err != nil {
		return false, fromRepository(resourceShoppingListItem, itemID.Hex(), err)
	}
	return checked, nil
}

func (s *ShoppingListServiceImpl) mustGet(ctx context.Context, id primitive.ObjectID) (*model.ShoppingList, error) {
	if s.shoppingListRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	list, err := s.shoppingListRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if list == nil {
		return nil, notFound(resourceShoppingList, id.Hex())
	}
	return list, nil
}
