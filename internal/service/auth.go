package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
)

// DefaultRoleName is the role every newly registered account receives.
const DefaultRoleName = "user"

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when the email or username is already registered.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidToken is returned when a token is malformed, expired or unknown.
	ErrInvalidToken = errors.New("invalid or expired token")
	// ErrTokenBlacklisted is returned for an access token revoked by logout.
	ErrTokenBlacklisted = errors.New("token is blacklisted")
	// ErrDefaultRoleMissing means the roles collection was never seeded.
	ErrDefaultRoleMissing = errors.New("default role " + DefaultRoleName + " not found")
)

// AuthService provides authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error)
	Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	InvalidateToken(ctx context.Context, tokenString string) error
	InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

// AuthServiceImpl implements AuthService on top of the user, role and token
// repositories.
type AuthServiceImpl struct {
	users  repository.UserRepositoryInterface
	roles  repository.RoleRepositoryInterface
	tokens *tokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	tokenRepo repository.TokenRepositoryInterface,
	authConfig config.AuthConfig,
) AuthService {
	return &AuthServiceImpl{
		users:  userRepo,
		roles:  roleRepo,
		tokens: newTokenIssuer(tokenRepo, authConfig),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login checks the password and issues a fresh token pair. Earlier refresh
// tokens of the user stop working.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.users.FindByEmailForAuth(ctx, normalizeEmail(email))
	if err != nil {
		return nil, nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := s.tokens.tokens.DeleteByUserID(ctx, user.ID, model.TokenTypeRefresh); err != nil {
		return nil, nil, fmt.Errorf("drop previous refresh tokens: %w", err)
	}

	pair, err := s.tokens.issue(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// Register creates an active account holding DefaultRoleName.
func (s *AuthServiceImpl) Register(ctx context.Context, email, username, password, name string) (*dto.TokenPair, *model.User, error) {
	email = normalizeEmail(email)

	if existing, err := s.users.FindByEmail(ctx, email); err != nil {
		return nil, nil, err
	} else if existing != nil {
		return nil, nil, ErrUserExists
	}
	if existing, err := s.users.FindByUsername(ctx, username); err != nil {
		return nil, nil, err
	} else if existing != nil {
		return nil, nil, ErrUserExists
	}

	role, err := s.roles.FindByName(ctx, DefaultRoleName)
	if err != nil {
		return nil, nil, err
	}
	if role == nil {
		return nil, nil, ErrDefaultRoleMissing
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &model.User{
		Email:    email,
		Username: username,
		Password: string(hash),
		Name:     name,
		Roles:    []string{role.ID.Hex()},
		Active:   true,
	}
	// The unique email index catches a registration racing this one.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, nil, ErrUserExists
		}
		return nil, nil, err
	}

	pair, err := s.tokens.issue(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return pair, user, nil
}

// RefreshToken exchanges a stored refresh token for a new pair. The old
// refresh token is consumed.
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.tokens.verifyRefresh(refreshToken)
	if err != nil {
		return nil, err
	}

	stored, err := s.tokens.tokens.FindByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil || stored.Type != model.TokenTypeRefresh || time.Now().After(stored.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}

	if err := s.tokens.tokens.DeleteByToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("consume refresh token: %w", err)
	}
	return s.tokens.issue(ctx, user)
}

func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	claims, err := s.tokens.verifyAccess(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	return &claims.Claims, nil
}

func (s *AuthServiceImpl) InvalidateToken(ctx context.Context, tokenString string) error {
	return s.tokens.revoke(ctx, tokenString)
}

func (s *AuthServiceImpl) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	return s.tokens.tokens.DeleteByUserID(ctx, userID, model.TokenTypeRefresh)
}

// Logout revokes the access token and deletes the refresh token. Both are
// attempted; failures are joined.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	var errs []error

	if accessToken != "" {
		if err := s.tokens.revoke(ctx, accessToken); err != nil {
			log.Warn().Err(err).Msg("logout: access token not revoked")
			errs = append(errs, fmt.Errorf("invalidate access token: %w", err))
		}
	}
	if refreshToken != "" {
		if err := s.tokens.tokens.DeleteByToken(ctx, refreshToken); err != nil {
			log.Warn().Err(err).Msg("logout: refresh token not deleted")
			errs = append(errs, fmt.Errorf("delete refresh token: %w", err))
		}
	}

	return errors.Join(errs...)
}
