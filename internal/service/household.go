package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
)

const resourceHousehold = "Household"

// HouseholdService manages households and their memberships.
type HouseholdService interface {
	// Get returns nil without error when the household does not exist.
	Get(ctx context.Context, id primitive.ObjectID) (*model.Household, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Household, error)
	// Create stores a new household. A non-empty creatorID becomes its first admin.
	Create(ctx context.Context, name, creatorID string) (*model.Household, error)
	Update(ctx context.Context, id primitive.ObjectID, name string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	AddMember(ctx context.Context, id primitive.ObjectID, userID string, role model.HouseholdRole) error
	RemoveMember(ctx context.Context, id primitive.ObjectID, userID string) error
	UpdateMemberRole(ctx context.Context, id primitive.ObjectID, userID string, role model.HouseholdRole) error
	IsMember(ctx context.Context, id primitive.ObjectID, userID string) (bool, error)
}

// HouseholdServiceImpl implements HouseholdService.
type HouseholdServiceImpl struct {
	householdRepo repository.HouseholdRepositoryInterface
}

// NewHouseholdService creates a new household service.
func NewHouseholdService(householdRepo repository.HouseholdRepositoryInterface) HouseholdService {
	return &HouseholdServiceImpl{householdRepo: householdRepo}
}

func (s *HouseholdServiceImpl) Get(ctx context.Context, id primitive.ObjectID) (*model.Household, error) {
	if s.householdRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.householdRepo.FindByID(ctx, id)
}

func (s *HouseholdServiceImpl) ListByUser(ctx context.Context, userID string) ([]*model.Household, error) {
	if s.householdRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.householdRepo.FindByUserID(ctx, userID)
}

func (s *HouseholdServiceImpl) Create(ctx context.Context, name, creatorID string) (*model.Household, error) {
	if s.householdRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}

	household := &model.Household{Name: name, Members: []model.HouseholdMember{}}
	if creatorID != "" {
		household.Members = append(household.Members, model.HouseholdMember{
			UserID:   creatorID,
			Role:     model.RoleAdmin,
			JoinedAt: time.Now().UTC(),
		})
	}

	if err := s.householdRepo.Create(ctx, household); err != nil {
		return nil, fmt.Errorf("create household: %w", err)
	}
	return household, nil
}

func (s *HouseholdServiceImpl) Update(ctx context.Context, id primitive.ObjectID, name string) error {
	return s.mutate(ctx, id, func(h *model.Household) error {
		h.Name = name
		return nil
	})
}

func (s *HouseholdServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	if s.householdRepo == nil {
		return ErrRepositoryNotConfigured
	}
	if _, err := s.mustGet(ctx, id); err != nil {
		return err
	}
	return fromRepository(resourceHousehold, id.Hex(), s.householdRepo.Delete(ctx, id))
}

func (s *HouseholdServiceImpl) AddMember(ctx context.Context, id primitive.ObjectID, userID string, role model.HouseholdRole) error {
	return s.mutate(ctx, id, func(h *model.Household) error {
		if h.Member(userID) != nil {
			return fmt.Errorf("user %s is already a member of household %s: %w", userID, id.Hex(), ErrConflict)
		}
		h.Members = append(h.Members, model.HouseholdMember{
			UserID:   userID,
			Role:     role,
			JoinedAt: time.Now().UTC(),
		})
		return nil
	})
}

func (s *HouseholdServiceImpl) RemoveMember(ctx context.Context, id primitive.ObjectID, userID string) error {
	return s.mutate(ctx, id, func(h *model.Household) error {
		if !h.RemoveMember(userID) {
			return memberNotFound(userID, id)
		}
		return nil
	})
}

func (s *HouseholdServiceImpl) UpdateMemberRole(ctx context.Context, id primitive.ObjectID, userID string, role model.HouseholdRole) error {
	return s.mutate(ctx, id, func(h *model.Household) error {
		member := h.Member(userID)
		if member == nil {
			return memberNotFound(userID, id)
		}
		member.Role = role
		return nil
	})
}

func (s *HouseholdServiceImpl) IsMember(ctx context.Context, id primitive.ObjectID, userID string) (bool, error) {
	household, err := s.Get(ctx, id)
	if err != nil || household == nil {
		return false, err
	}
	return household.Member(userID) != nil, nil
}

func (s *HouseholdServiceImpl) mustGet(ctx context.Context, id primitive.ObjectID) (*model.Household, error) {
	household, err := s.householdRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if household == nil {
		return nil, notFound(resourceHousehold, id.Hex())
	}
	return household, nil
}

// mutate loads the household, applies change and writes the whole document back.
func (s *HouseholdServiceImpl) mutate(ctx context.Context, id primitive.ObjectID, change func(*model.Household) error) error {
	if s.householdRepo == nil {
		return ErrRepositoryNotConfigured
	}
	household, err := s.mustGet(ctx, id)
	if err != nil {
		return err
	}
	if err := change(household); err != nil {
		return err
	}
	household.UpdatedAt = time.Now().UTC()
	return fromRepository(resourceHousehold, id.Hex(), s.householdRepo.Update(ctx, household))
}

func memberNotFound(userID string, householdID primitive.ObjectID) error {
	return childNotFound("Member", userID, "household "+householdID.Hex())
}
