package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/mocks"
	"github.com/guttosm/meal-planner/internal/service"
)

// auditSink collects the audit entries a handler persists.
type auditSink struct {
	entries chan *model.LogEntry
}

func newAuditSink() *auditSink {
	return &auditSink{entries: make(chan *model.LogEntry, 16)}
}

func (s *auditSink) CreateLog(_ context.Context, entry *model.LogEntry) error {
	s.entries <- entry
	return nil
}

func (s *auditSink) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	for _, e := range entries {
		_ = s.CreateLog(ctx, e)
	}
	return nil
}

func (s *auditSink) QueryLogs(context.Context, model.LogQueryOptions) ([]*model.LogEntry, error) {
	return nil, nil
}

func (s *auditSink) CountLogs(context.Context, model.LogQueryOptions) (int64, error) {
	return 0, nil
}

// next waits for the next audit entry.
func (s *auditSink) next(t *testing.T) *model.LogEntry {
	t.Helper()
	select {
	case e := <-s.entries:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no audit entry was written")
		return nil
	}
}

func (s *auditSink) none(t *testing.T) {
	t.Helper()
	select {
	case e := <-s.entries:
		t.Fatalf("unexpected audit entry %q", e.ActionType)
	case <-time.After(50 * time.Millisecond):
	}
}

func authTestRouter(auth service.AuthService, sink *auditSink) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextKeyLoggingService, service.LoggingService(sink))
		c.Next()
	})
	h := NewAuthHandler(auth)
	router.POST("/api/auth/login", h.Login)
	router.POST("/api/auth/register", h.Register)
	router.POST("/api/auth/refresh", h.RefreshToken)
	router.POST("/api/auth/logout", h.Logout)
	return router
}

func postWithHeaders(router http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func testPair() *dto.TokenPair {
	return &dto.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}
}

func TestAuthHandler_Login(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Email: "ana@example.com", Username: "ana", Name: "Ana"}
	credentials := dto.LoginRequest{Email: "ana@example.com", Password: "secret123"}

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(*mocks.MockAuthService)
		wantStatus int
		wantAudit  string
	}{
		{
			name: "success",
			body: credentials,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, "ana@example.com", "secret123").Return(testPair(), user, nil)
			},
			wantStatus: http.StatusOK,
			wantAudit:  "login",
		},
		{
			name: "wrong password",
			body: credentials,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, "ana@example.com", "secret123").Return(nil, nil, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
			wantAudit:  "login_failed",
		},
		{
			name: "store failure",
			body: credentials,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Login", mock.Anything, "ana@example.com", "secret123").Return(nil, nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantAudit:  "login_error",
		},
		{
			name:       "invalid email",
			body:       dto.LoginRequest{Email: "ana", Password: "secret123"},
			setupMock:  func(*mocks.MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       "{",
			setupMock:  func(*mocks.MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.MockAuthService)
			tt.setupMock(auth)
			sink := newAuditSink()

			w := performRequest(authTestRouter(auth, sink), http.MethodPost, "/api/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantAudit == "" {
				sink.none(t)
			} else {
				assert.Equal(t, tt.wantAudit, sink.next(t).ActionType)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Login_Response(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Email: "ana@example.com", Username: "ana", Name: "Ana"}
	auth := new(mocks.MockAuthService)
	auth.On("Login", mock.Anything, "ana@example.com", "secret123").Return(testPair(), user, nil)
	sink := newAuditSink()

	w := performRequest(authTestRouter(auth, sink), http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})

	require.Equal(t, http.StatusOK, w.Code)
	got := decodeData[dto.LoginResponse](t, w)
	assert.Equal(t, "access", got.Token)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, int64(900), got.ExpiresIn)
	require.NotNil(t, got.User)
	assert.Equal(t, user.ID.Hex(), got.User.ID)

	entry := sink.next(t)
	assert.Equal(t, user.ID.Hex(), entry.UserID)
	assert.Equal(t, "ana@example.com", entry.UserEmail)
}

func TestAuthHandler_Login_InvalidCredentialsMessage(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("Login", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil, service.ErrInvalidCredentials)

	w := performRequest(authTestRouter(auth, newAuditSink()), http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})

	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrCodeUnauthorized, resp.Error)
	assert.Equal(t, "Invalid email or password", resp.Message)
}

func TestAuthHandler_Register(t *testing.T) {
	user := &model.User{ID: primitive.NewObjectID(), Email: "bo@example.com", Username: "bo", Name: "Bo"}
	valid := dto.RegisterRequest{Email: "bo@example.com", Username: "bobby", Password: "secret123", Name: "Bo"}

	tests := []struct {
		name       string
		body       interface{}
		setupMock  func(*mocks.MockAuthService)
		wantStatus int
		wantAudit  string
		wantErrors []string
	}{
		{
			name: "created",
			body: valid,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, "bo@example.com", "bobby", "secret123", "Bo").Return(testPair(), user, nil)
			},
			wantStatus: http.StatusCreated,
			wantAudit:  "register",
		},
		{
			name: "email or username taken",
			body: valid,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, "bo@example.com", "bobby", "secret123", "Bo").Return(nil, nil, service.ErrUserExists)
			},
			wantStatus: http.StatusConflict,
			wantAudit:  "register_failed",
		},
		{
			name: "default role missing",
			body: valid,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Register", mock.Anything, "bo@example.com", "bobby", "secret123", "Bo").Return(nil, nil, service.ErrDefaultRoleMissing)
			},
			wantStatus: http.StatusInternalServerError,
			wantAudit:  "register_error",
		},
		{
			name:       "every field invalid",
			body:       dto.RegisterRequest{Email: "bo", Password: "123"},
			setupMock:  func(*mocks.MockAuthService) {},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{
				"email: must be a valid email address",
				"username: is required",
				"password: must be at least 6 characters",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.MockAuthService)
			tt.setupMock(auth)
			sink := newAuditSink()

			w := performRequest(authTestRouter(auth, sink), http.MethodPost, "/api/auth/register", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, decodeError(t, w).Errors)
			}
			if tt.wantAudit == "" {
				sink.none(t)
			} else {
				assert.Equal(t, tt.wantAudit, sink.next(t).ActionType)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		setupMock  func(*mocks.MockAuthService)
		wantStatus int
	}{
		{
			name:    "rotated",
			headers: map[string]string{"X-Refresh-Token": "old"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("RefreshToken", mock.Anything, "old").Return(testPair(), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "header missing",
			setupMock:  func(*mocks.MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "unknown token",
			headers: map[string]string{"X-Refresh-Token": "old"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("RefreshToken", mock.Anything, "old").Return(nil, service.ErrInvalidToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "account deactivated",
			headers: map[string]string{"X-Refresh-Token": "old"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("RefreshToken", mock.Anything, "old").Return(nil, service.ErrInvalidCredentials)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:    "store failure",
			headers: map[string]string{"X-Refresh-Token": "old"},
			setupMock: func(m *mocks.MockAuthService) {
				m.On("RefreshToken", mock.Anything, "old").Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.MockAuthService)
			tt.setupMock(auth)

			w := postWithHeaders(authTestRouter(auth, newAuditSink()), "/api/auth/refresh", tt.headers)

			assert.Equal(t, tt.wantStatus, w.Code)
			if w.Code == http.StatusOK {
				got := decodeData[dto.LoginResponse](t, w)
				assert.Equal(t, "access", got.Token)
				assert.Nil(t, got.User)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	both := map[string]string{"Authorization": "Bearer access", "X-Refresh-Token": "refresh"}

	tests := []struct {
		name       string
		headers    map[string]string
		setupMock  func(*mocks.MockAuthService)
		wantStatus int
		wantAudit  string
	}{
		{
			name:    "logged out",
			headers: both,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Logout", mock.Anything, "access", "refresh").Return(nil)
			},
			wantStatus: http.StatusOK,
			wantAudit:  "logout",
		},
		{
			name:       "no bearer token",
			headers:    map[string]string{"Authorization": "Token access", "X-Refresh-Token": "refresh"},
			setupMock:  func(*mocks.MockAuthService) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no refresh token",
			headers:    map[string]string{"Authorization": "Bearer access"},
			setupMock:  func(*mocks.MockAuthService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "revocation failed",
			headers: both,
			setupMock: func(m *mocks.MockAuthService) {
				m.On("Logout", mock.Anything, "access", "refresh").Return(assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
			wantAudit:  "logout_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(mocks.MockAuthService)
			tt.setupMock(auth)
			sink := newAuditSink()

			w := postWithHeaders(authTestRouter(auth, sink), "/api/auth/logout", tt.headers)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantAudit == "" {
				sink.none(t)
			} else {
				assert.Equal(t, tt.wantAudit, sink.next(t).ActionType)
			}
			auth.AssertExpectations(t)
		})
	}
}

func TestAuthHandler_WithoutLoggingService(t *testing.T) {
	auth := new(mocks.MockAuthService)
	auth.On("Logout", mock.Anything, "access", "refresh").Return(nil)

	router := gin.New()
	router.POST("/api/auth/logout", NewAuthHandler(auth).Logout)

	w := postWithHeaders(router, "/api/auth/logout", map[string]string{"Authorization": "Bearer access", "X-Refresh-Token": "refresh"})

	assert.Equal(t, http.StatusOK, w.Code)
	auth.AssertExpectations(t)
}
