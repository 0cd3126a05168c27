package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
)

const (
	resourcePantry     = "Pantry"
	resourcePantryItem = "Pantry item"
)

// PantryService manages the household pantry. A household has at most one pantry.
type PantryService interface {
	// GetByHousehold returns nil without error when the household has no pantry yet.
	GetByHousehold(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error)
	// Create returns an error matching ErrConflict when the household already has a pantry.
	Create(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error)
	// AddItem stores item in the household's pantry, creating the pantry first if needed.
	AddItem(ctx context.Context, householdID primitive.ObjectID, item model.PantryItem) (*model.PantryItem, error)
	UpdateItem(ctx context.Context, pantryID, itemID primitive.ObjectID, item model.PantryItem) error
	RemoveItem(ctx context.Context, pantryID, itemID primitive.ObjectID) error
}

// PantryServiceImpl implements PantryService.
type PantryServiceImpl struct {
	pantryRepo    repository.PantryRepositoryInterface
	householdRepo repository.HouseholdRepositoryInterface
}

// NewPantryService creates a new pantry service.
func NewPantryService(pantryRepo repository.PantryRepositoryInterface, householdRepo repository.HouseholdRepositoryInterface) PantryService {
	return &PantryServiceImpl{
		pantryRepo:    pantryRepo,
		householdRepo: householdRepo,
	}
}

func (s *PantryServiceImpl) GetByHousehold(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error) {
	if s.pantryRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.pantryRepo.FindByHousehold(ctx, householdID)
}

func (s *PantryServiceImpl) Create(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error) {
	if s.pantryRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if err := requireHousehold(ctx, s.householdRepo, householdID); err != nil {
		return nil, err
	}

	pantry := &model.Pantry{HouseholdID: householdID, Items: []model.PantryItem{}}
	if err := s.pantryRepo.Create(ctx, pantry); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("household %s already has a pantry: %w", householdID.Hex(), ErrConflict)
		}
		return nil, fmt.Errorf("create pantry: %w", err)
	}
	return pantry, nil
}

func (s *PantryServiceImpl) AddItem(ctx context.Context, householdID primitive.ObjectID, item model.PantryItem) (*model.PantryItem, error) {
	if s.pantryRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	pantry, err := s.getOrCreate(ctx, householdID)
	if err != nil {
		return nil, err
	}

	item.ID = primitive.NewObjectID()
	item.AddedAt = time.Now().UTC()
	pantry.Items = append(pantry.Items, item)

	if err := s.pantryRepo.Update(ctx, pantry); err != nil {
		return nil, fromRepository(resourcePantry, pantry.ID.Hex(), err)
	}
	return &item, nil
}

func (s *PantryServiceImpl) UpdateItem(ctx context.Context, pantryID, itemID primitive.ObjectID, update model.PantryItem) error {
	return s.mutateItems(ctx, pantryID, func(p *model.Pantry) error {
		item := p.Item(itemID)
		if item == nil {
			return childNotFound(resourcePantryItem, itemID.Hex(), "pantry "+pantryID.Hex())
		}
		item.IngredientID = update.IngredientID
		item.Quantity = update.Quantity
		item.Unit = update.Unit
		item.ExpiryDate = update.ExpiryDate
		return nil
	})
}

func (s *PantryServiceImpl) RemoveItem(ctx context.Context, pantryID, itemID primitive.ObjectID) error {
	return s.mutateItems(ctx, pantryID, func(p *model.Pantry) error {
		if !p.RemoveItem(itemID) {
			return childNotFound(resourcePantryItem, itemID.Hex(), "pantry "+pantryID.Hex())
		}
		return nil
	})
}

// getOrCreate tolerates a concurrent create by re-reading after a duplicate.
func (s *PantryServiceImpl) getOrCreate(ctx context.Context, householdID primitive.ObjectID) (*model.Pantry, error) {
	pantry, err := s.pantryRepo.FindByHousehold(ctx, householdID)
	if err != nil || pantry != nil {
		return pantry, err
	}

	pantry, err = s.Create(ctx, householdID)
	if errors.Is(err, ErrConflict) {
		pantry, err = s.pantryRepo.FindByHousehold(ctx, householdID)
		if err == nil && pantry == nil {
			err = notFound(resourcePantry, "for household "+householdID.Hex())
		}
	}
	return pantry, err
}

func (s *PantryServiceImpl) mutateItems(ctx context.Context, pantryID primitive.ObjectID, change func(*model.Pantry) error) error {
	if s.pantryRepo == nil {
		return ErrRepositoryNotConfigured
	}
	pantry, err := s.pantryRepo.FindByID(ctx, pantryID)
	if err != nil {
		return err
	}
	if pantry == nil {
		return notFound(resourcePantry, pantryID.Hex())
	}
	if err := change(pantry); err != nil {
		return err
	}
	return fromRepository(resourcePantry, pantryID.Hex(), s.pantryRepo.Update(ctx, pantry))
}
