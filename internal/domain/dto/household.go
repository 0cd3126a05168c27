package dto

import (
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

// HouseholdRequest is the body for creating or renaming a household.
//
// @Description Household name
type HouseholdRequest struct {
	Name string `json:"name" example:"The Smiths"`
} // @name HouseholdRequest

// Validate checks the household name.
func (r *HouseholdRequest) Validate() error {
	var errs ValidationErrors
	errs.required("name", r.Name)
	errs.maxLen("name", r.Name, 100)
	return errs.err()
}

// AddMemberRequest is the body for adding a member to a household.
//
// @Description User to add and their household role
type AddMemberRequest struct {
	UserID string              `json:"user_id" example:"65f1c0ffee0ddba11ad0be01"`
	Role   model.HouseholdRole `json:"role" example:"member" enums:"admin,member"`
} // @name AddMemberRequest

// Validate checks the member and role.
func (r *AddMemberRequest) Validate() error {
	var errs ValidationErrors
	errs.required("user_id", r.UserID)
	if !r.Role.IsValid() {
		errs.add("role", "must be admin or member")
	}
	return errs.err()
}

// UpdateMemberRoleRequest is the body for changing a member's role.
//
// @Description New household role
type UpdateMemberRoleRequest struct {
	Role model.HouseholdRole `json:"role" example:"admin" enums:"admin,member"`
} // @name UpdateMemberRoleRequest

// Validate checks the role.
func (r *UpdateMemberRoleRequest) Validate() error {
	var errs ValidationErrors
	if !r.Role.IsValid() {
		errs.add("role", "must be admin or member")
	}
	return errs.err()
}

// HouseholdMemberResponse is a member as returned by the API.
type HouseholdMemberResponse struct {
	UserID   string              `json:"user_id"`
	Role     model.HouseholdRole `json:"role"`
	JoinedAt time.Time           `json:"joined_at"`
} // @name HouseholdMemberResponse

// HouseholdResponse is a household as returned by the API.
type HouseholdResponse struct {
	ID        string                    `json:"id" example:"65f1c0ffee0ddba11ad0be01"`
	Name      string                    `json:"name" example:"The Smiths"`
	Members   []HouseholdMemberResponse `json:"members"`
	CreatedAt time.Time                 `json:"created_at"`
	UpdatedAt time.Time                 `json:"updated_at"`
} // @name HouseholdResponse

// NewHouseholdResponse maps a household to its API form.
func NewHouseholdResponse(h *model.Household) HouseholdResponse {
	members := make([]HouseholdMemberResponse, len(h.Members))
	for i, m := range h.Members {
		members[i] = HouseholdMemberResponse{UserID: m.UserID, Role: m.Role, JoinedAt: m.JoinedAt}
	}
	return HouseholdResponse{
		ID:        h.ID.Hex(),
		Name:      h.Name,
		Members:   members,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// NewHouseholdResponses maps a slice of households.
func NewHouseholdResponses(hs []*model.Household) []HouseholdResponse {
	out := make([]HouseholdResponse, len(hs))
	for i, h := range hs {
		out[i] = NewHouseholdResponse(h)
	}
	return out
}
