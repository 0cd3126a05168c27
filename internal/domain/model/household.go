package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HouseholdRole is the role a user holds inside a household.
type HouseholdRole string

const (
	// RoleAdmin can manage the household and its members.
	RoleAdmin HouseholdRole = "admin"
	// RoleMember can manage recipes, plans, pantry and lists.
	RoleMember HouseholdRole = "member"
)

// IsValid reports whether r is a known household role.
func (r HouseholdRole) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Household is the ownership boundary for recipes, meal plans, pantries and shopping lists.
type Household struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Members   []HouseholdMember  `bson:"members"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// HouseholdMember links a user to a household.
type HouseholdMember struct {
	UserID   string        `bson:"user_id"`
	Role     HouseholdRole `bson:"role"`
	JoinedAt time.Time     `bson:"joined_at"`
}

// Member returns the membership of userID, or nil.
func (h *Household) Member(userID string) *HouseholdMember {
	for i := range h.Members {
		if h.Members[i].UserID == userID {
			return &h.Members[i]
		}
	}
	return nil
}

// RemoveMember drops userID from the household and reports whether it was present.
func (h *Household) RemoveMember(userID string) bool {
	for i := range h.Members {
		if h.Members[i].UserID == userID {
			h.Members = append(h.Members[:i], h.Members[i+1:]...)
			return true
		}
	}
	return false
}
