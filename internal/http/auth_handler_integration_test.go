//go:build integration

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/repository"
	"github.com/guttosm/meal-planner/internal/service"
)

// setupAuthIntegrationRouter builds a JWT-protected router whose "user" role
// may read and write households but has no access to the ingredient catalog.
func setupAuthIntegrationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()

	db, err := repository.NewMongoDB(getSharedContainerURI(), sanitizeDBNameForHTTP(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close(ctx)
	})

	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	var granted []string
	for _, perm := range []*model.Permission{
		{Name: "households:read", Resource: ResourceHouseholds, Action: "read", Active: true},
		{Name: "households:write", Resource: ResourceHouseholds, Action: "write", Active: true},
		{Name: "ingredients:read", Resource: ResourceIngredients, Action: "read", Active: true},
	} {
		require.NoError(t, permissionRepo.Create(ctx, perm))
		if perm.Resource == ResourceHouseholds {
			granted = append(granted, perm.ID.Hex())
		}
	}
	require.NoError(t, roleRepo.Create(ctx, &model.Role{Name: "user", Permissions: granted, Active: true}))

	authService := service.NewAuthService(userRepo, roleRepo, tokenRepo, config.AuthConfig{
		JWTSecretKey:     "test-secret-key",
		JWTRefreshSecret: "test-refresh-secret-key",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
	})

	cb := func() *circuitbreaker.CircuitBreaker {
		return circuitbreaker.New(circuitbreaker.DefaultConfig())
	}
	households := repository.NewHouseholdRepositoryWithCircuitBreaker(repository.NewHouseholdRepository(db), cb())
	ingredients := repository.NewIngredientRepositoryWithCircuitBreaker(repository.NewIngredientRepository(db), cb())
	logs := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), cb())

	return NewRouter(NewHealthHandler(), RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		LoggingService:    service.NewLoggingService(logs),
		AuthService:       authService,
		RoleService:       service.NewRoleService(roleRepo),
		PermissionService: service.NewPermissionService(permissionRepo),
		Services: MealPlannerServices{
			Households:  service.NewHouseholdService(households),
			Ingredients: service.NewIngredientService(ingredients),
		},
	})
}

func authRequest(router http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAuth_HouseholdFlow_Integration(t *testing.T) {
	router := setupAuthIntegrationRouter(t)

	register := dto.RegisterRequest{
		Email:    "ana@example.com",
		Username: "ana",
		Password: "password123",
		Name:     "Ana",
	}

	t.Run("api requires a token", func(t *testing.T) {
		w := authRequest(router, http.MethodGet, "/api/households/mine", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	w := authRequest(router, http.MethodPost, "/api/auth/register", register, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	session := decodeData[dto.LoginResponse](t, w)
	require.NotEmpty(t, session.Token)
	require.NotEmpty(t, session.RefreshToken)

	t.Run("duplicate registration", func(t *testing.T) {
		w := authRequest(router, http.MethodPost, "/api/auth/register", register, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := authRequest(router, http.MethodPost, "/api/auth/login",
			dto.LoginRequest{Email: register.Email, Password: "not-the-password"}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("creator becomes household admin", func(t *testing.T) {
		w := authRequest(router, http.MethodPost, "/api/households",
			dto.HouseholdRequest{Name: "Ana's flat"}, bearer(session.Token))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decodeData[dto.HouseholdResponse](t, w)
		require.Len(t, created.Members, 1)
		assert.Equal(t, model.RoleAdmin, created.Members[0].Role)

		w = authRequest(router, http.MethodGet, "/api/households/mine", nil, bearer(session.Token))
		require.Equal(t, http.StatusOK, w.Code)
		mine := decodeData[[]dto.HouseholdResponse](t, w)
		require.Len(t, mine, 1)
		assert.Equal(t, created.ID, mine[0].ID)
	})

	t.Run("role without the permission is forbidden", func(t *testing.T) {
		w := authRequest(router, http.MethodGet, "/api/ingredients", nil, bearer(session.Token))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("refresh then logout revokes the access token", func(t *testing.T) {
		w := authRequest(router, http.MethodPost, "/api/auth/refresh", nil,
			map[string]string{"X-Refresh-Token": session.RefreshToken})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		refreshed := decodeData[dto.LoginResponse](t, w)
		require.NotEqual(t, session.Token, refreshed.Token)

		w = authRequest(router, http.MethodPost, "/api/auth/refresh", nil,
			map[string]string{"X-Refresh-Token": session.RefreshToken})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "refresh tokens are single use")

		headers := bearer(refreshed.Token)
		headers["X-Refresh-Token"] = refreshed.RefreshToken
		w = authRequest(router, http.MethodPost, "/api/auth/logout", nil, headers)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = authRequest(router, http.MethodGet, "/api/households/mine", nil, bearer(refreshed.Token))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
