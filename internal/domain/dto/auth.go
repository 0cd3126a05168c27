package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

const minPasswordLength = 6

// LoginRequest is the body of POST /api/auth/login.
//
// @Description Credentials of a registered account
type LoginRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"password123"`
} // @name LoginRequest

// Validate checks that both credentials are present.
func (r *LoginRequest) Validate() error {
	var errs ValidationErrors
	errs.email("email", r.Email)
	errs.minLen("password", r.Password, minPasswordLength)
	return errs.err()
}

// RegisterRequest is the body of POST /api/auth/register.
//
// @Description New account; the email doubles as login
type RegisterRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Username string `json:"username" example:"ana"`
	Password string `json:"password" example:"password123"`
	// Name is optional and shown to other household members.
	Name string `json:"name,omitempty" example:"Ana Souza"`
} // @name RegisterRequest

// Validate reports every problem with the registration at once.
func (r *RegisterRequest) Validate() error {
	var errs ValidationErrors
	errs.email("email", r.Email)
	errs.required("username", r.Username)
	if r.Username != "" {
		errs.minLen("username", r.Username, 3)
	}
	errs.maxLen("username", r.Username, 30)
	errs.minLen("password", r.Password, minPasswordLength)
	errs.maxLen("name", r.Name, 100)
	return errs.err()
}

// LoginResponse is returned by login, register and refresh.
//
// @Description Token pair plus the account it belongs to
type LoginResponse struct {
	Token        string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"900"`
	// User is omitted on refresh.
	User *UserResponse `json:"user,omitempty"`
} // @name LoginResponse

// NewLoginResponse builds the response for pair. user may be nil.
func NewLoginResponse(pair *TokenPair, user *model.User) LoginResponse {
	resp := LoginResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
	if user != nil {
		resp.User = &UserResponse{
			ID:       user.ID.Hex(),
			Email:    user.Email,
			Username: user.Username,
			Name:     user.Name,
		}
	}
	return resp
}

// UserResponse is the public view of an account. ID is what household
// membership requests refer to.
type UserResponse struct {
	ID       string `json:"id" example:"65f1c0ffee0ddba11ad0be01"`
	Email    string `json:"email" example:"ana@example.com"`
	Username string `json:"username" example:"ana"`
	Name     string `json:"name,omitempty" example:"Ana Souza"`
} // @name UserResponse

// TokenPair is an access token and the refresh token that renews it.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Claims is the identity carried inside an access token.
type Claims struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
	Roles  []string           `json:"roles"`
}
