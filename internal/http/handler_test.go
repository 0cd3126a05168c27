package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	return NewRouter(NewHealthHandler(), DefaultRouterConfig())
}

// setupRouterWithServices builds a public router serving only the given services.
func setupRouterWithServices(services MealPlannerServices) *gin.Engine {
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.Services = services
	return NewRouter(NewHealthHandler(), cfg)
}

func performRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unwraps the success envelope into T.
func decodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRespondServiceError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "typed not found",
			err:            &service.NotFoundError{Resource: "Recipe", ID: "abc"},
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
		},
		{
			name:           "wrapped not found sentinel",
			err:            fmt.Errorf("lookup: %w", service.ErrNotFound),
			expectedStatus: http.StatusNotFound,
			expectedCode:   dto.ErrCodeNotFound,
		},
		{
			name:           "validation errors",
			err:            dto.ValidationErrors{{Field: "name", Message: "is required"}},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name:           "invalid argument",
			err:            &service.InvalidArgumentError{Argument: "servings", Message: "servings must be greater than zero"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   dto.ErrCodeInvalidRequest,
		},
		{
			name:           "conflict",
			err:            fmt.Errorf("Ingredient Salt: %w", service.ErrConflict),
			expectedStatus: http.StatusConflict,
			expectedCode:   dto.ErrCodeConflict,
		},
		{
			name:           "circuit open",
			err:            fmt.Errorf("find recipe: %w", circuitbreaker.ErrCircuitOpen),
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   dto.ErrCodeUnavailable,
		},
		{
			name:           "no database",
			err:            service.ErrRepositoryNotConfigured,
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   dto.ErrCodeUnavailable,
		},
		{
			name:           "deadline exceeded",
			err:            fmt.Errorf("find recipe: %w", context.DeadlineExceeded),
			expectedStatus: http.StatusGatewayTimeout,
			expectedCode:   dto.ErrCodeTimeout,
		},
		{
			name:           "anything else",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   dto.ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondServiceError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, tt.expectedCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestRespondServiceError_NotFoundNamesResource(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondServiceError(c, &service.NotFoundError{Resource: "Shopping list item", ID: "42", Parent: "Shopping list 7"})

	assert.Equal(t, "Shopping list item with ID 42 not found in Shopping list 7", decodeError(t, w).Message)
}

func TestPathID(t *testing.T) {
	validID := primitive.NewObjectID()

	tests := []struct {
		name     string
		param    string
		expectOK bool
	}{
		{"valid id", validID.Hex(), true},
		{"not hex", "not-an-id", false},
		{"too short", "65f1c0ffee", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Params = gin.Params{{Key: "id", Value: tt.param}}

			id, ok := pathID(c, "id")

			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				assert.Equal(t, validID, id)
			} else {
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.True(t, c.IsAborted())
			}
		})
	}
}

func TestBindRequest(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectOK       bool
		expectedErrors []string
	}{
		{
			name:     "valid body",
			body:     `{"name": "Salt", "category": "Seasonings"}`,
			expectOK: true,
		},
		{
			name:     "malformed json",
			body:     `{"name":`,
			expectOK: false,
		},
		{
			name:           "every violation is reported",
			body:           `{"name": "", "category": "` + string(bytes.Repeat([]byte("x"), 101)) + `"}`,
			expectOK:       false,
			expectedErrors: []string{"name: is required", "category: must be at most 100 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			req, ok := bindRequest[dto.IngredientRequest](c)

			assert.Equal(t, tt.expectOK, ok)
			if tt.expectOK {
				require.NotNil(t, req)
				assert.Equal(t, "Salt", req.Name)
				return
			}
			assert.Nil(t, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.expectedErrors, decodeError(t, w).Errors)
		})
	}
}

func TestListUnits(t *testing.T) {
	router := setupRouter()

	w := performRequest(router, http.MethodGet, "/api/units", nil)

	require.Equal(t, http.StatusOK, w.Code)
	units := decodeData[[]dto.UnitResponse](t, w)
	require.Len(t, units, 20)
	assert.Equal(t, dto.UnitResponse{Value: 1, Name: "Gram", Abbreviation: "g"}, units[0])
	assert.Equal(t, dto.UnitResponse{Value: 30, Name: "ToTaste", Abbreviation: "to taste"}, units[len(units)-1])
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "liveness probe",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "readiness probe",
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func BenchmarkHandler(b *testing.B) {
	router := setupRouter()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/units", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}
