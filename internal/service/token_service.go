package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
)

// jwtClaims is the signed payload of both access and refresh tokens.
type jwtClaims struct {
	dto.Claims
	jwt.RegisteredClaims
}

// tokenIssuer signs access/refresh pairs and records refresh tokens and
// revocations in the token repository. Access and refresh tokens use
// different keys, so one can never be replayed as the other.
type tokenIssuer struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	tokens     repository.TokenRepositoryInterface
}

func newTokenIssuer(tokens repository.TokenRepositoryInterface, cfg config.AuthConfig) *tokenIssuer {
	return &tokenIssuer{
		accessKey:  []byte(cfg.JWTSecretKey),
		refreshKey: []byte(cfg.JWTRefreshSecret),
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		tokens:     tokens,
	}
}

// issue signs a new pair for user and stores the refresh half.
func (t *tokenIssuer) issue(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	if user.ID.IsZero() {
		return nil, errors.New("cannot issue tokens for a user without ID")
	}

	access, _, err := sign(user, t.accessTTL, t.accessKey)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refresh, refreshExpiry, err := sign(user, t.refreshTTL, t.refreshKey)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	if err := t.tokens.Create(ctx, &model.Token{
		UserID:    user.ID,
		Token:     refresh,
		Type:      model.TokenTypeRefresh,
		ExpiresAt: refreshExpiry,
	}); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(t.accessTTL.Seconds()),
	}, nil
}

// verifyAccess rejects revoked tokens before checking the signature.
func (t *tokenIssuer) verifyAccess(ctx context.Context, token string) (*jwtClaims, error) {
	revoked, err := t.tokens.IsBlacklisted(ctx, token)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrTokenBlacklisted
	}
	return parse(token, t.accessKey)
}

func (t *tokenIssuer) verifyRefresh(token string) (*jwtClaims, error) {
	return parse(token, t.refreshKey)
}

// revoke blacklists an access token until it would have expired anyway.
func (t *tokenIssuer) revoke(ctx context.Context, token string) error {
	claims, err := parse(token, t.accessKey)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(t.accessTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return t.tokens.Create(ctx, &model.Token{
		UserID:    claims.UserID,
		Token:     token,
		Type:      model.TokenTypeBlacklist,
		ExpiresAt: expiresAt,
	})
}

// sign issues an HS256 token for user valid for ttl. Every token carries a
// random jti, so two tokens issued in the same second still differ.
func sign(user *model.User, ttl time.Duration, key []byte) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := &jwtClaims{
		Claims: dto.Claims{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Roles:  user.Roles,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func parse(token string, key []byte) (*jwtClaims, error) {
	claims := &jwtClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
