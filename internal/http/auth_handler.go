package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/service"
)

const refreshTokenHeader = "X-Refresh-Token"

// AuthHandler serves account registration and the token lifecycle.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/auth/login.
//
// @Summary      Log in
// @Description  Exchanges email and password for an access and refresh token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} dto.LoginResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	req, ok := bindRequest[dto.LoginRequest](c)
	if !ok {
		return
	}

	pair, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fields := map[string]interface{}{"email": req.Email}
		builder := NewResponseBuilder(c)
		if errors.Is(err, service.ErrInvalidCredentials) {
			auditError(c, "login_failed", "Login rejected", err, fields)
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
			return
		}
		auditError(c, "login_error", "Login failed", err, fields)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.SetIdentity(c, user.ID, user.Email)
	audit(c, "login", "User logged in", map[string]interface{}{"email": user.Email})
	NewResponseBuilder(c).SuccessOK(dto.NewLoginResponse(pair, user))
}

// Register handles POST /api/auth/register.
//
// @Summary      Register
// @Description  Creates an account with the default role and logs it in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "New account"
// @Success      201 {object} dto.LoginResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      409 {object} dto.ErrorResponse "Email or username already taken"
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	req, ok := bindRequest[dto.RegisterRequest](c)
	if !ok {
		return
	}

	pair, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Username, req.Password, req.Name)
	if err != nil {
		fields := map[string]interface{}{"email": req.Email, "username": req.Username}
		builder := NewResponseBuilder(c)
		if errors.Is(err, service.ErrUserExists) {
			auditError(c, "register_failed", "Registration rejected", err, fields)
			builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
			return
		}
		auditError(c, "register_error", "Registration failed", err, fields)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	middleware.SetIdentity(c, user.ID, user.Email)
	audit(c, "register", "User registered", map[string]interface{}{"email": user.Email, "username": user.Username})
	NewResponseBuilder(c).SuccessCreated(dto.NewLoginResponse(pair, user))
}

// RefreshToken handles POST /api/auth/refresh. The refresh token is single
// use: the response carries its replacement.
//
// @Summary      Refresh tokens
// @Description  Trades the refresh token in X-Refresh-Token for a new pair
// @Tags         Auth
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.LoginResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	refreshToken := c.GetHeader(refreshTokenHeader)
	if refreshToken == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyTokenRequired, nil)
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	switch {
	case errors.Is(err, service.ErrInvalidToken), errors.Is(err, service.ErrInvalidCredentials):
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, err)
	case err != nil:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	default:
		builder.SuccessOK(dto.NewLoginResponse(pair, nil))
	}
}

// Logout handles POST /api/auth/logout. It runs behind JWTAuth, so the
// bearer token has already been validated.
//
// @Summary      Log out
// @Description  Revokes the access token and deletes the refresh token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	accessToken, ok := middleware.BearerToken(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return
	}
	refreshToken := c.GetHeader(refreshTokenHeader)
	if refreshToken == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyTokenRequired, nil)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), accessToken, refreshToken); err != nil {
		auditError(c, "logout_error", "Logout failed", err, nil)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	audit(c, "logout", "User logged out", nil)
	builder.SuccessOK(map[string]string{"message": "logged out"})
}
