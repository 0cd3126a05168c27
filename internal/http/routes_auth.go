package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/service"
)

// AuthRoutes registers the account endpoints and builds the JWT-protected group.
type AuthRoutes struct {
	handler     *AuthHandler
	authService service.AuthService
}

func NewAuthRoutes(authService service.AuthService) *AuthRoutes {
	return &AuthRoutes{
		handler:     NewAuthHandler(authService),
		authService: authService,
	}
}

// RegisterPublicRoutes registers login, registration and token refresh.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", r.handler.Login)
	auth.POST("/register", r.handler.Register)
	auth.POST("/refresh", r.handler.RefreshToken)
}

// Protected returns a group that requires a valid access token, with logout
// registered on it. Rate limits and idempotency keys apply per user.
func (r *AuthRoutes) Protected(rg *gin.RouterGroup, cfg *RouterConfig) *gin.RouterGroup {
	protected := rg.Group("")
	protected.Use(middleware.JWTAuth(r.authService))

	if cfg.RateLimit > 0 {
		protected.Use(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow).UserRateLimit())
	}
	if cfg.Idempotency != nil {
		protected.Use(cfg.Idempotency.Middleware())
	}

	protected.POST("/auth/logout", r.handler.Logout)
	return protected
}
