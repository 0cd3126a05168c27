package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup registers routes that need no authentication.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes behind JWT auth and permission checks.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

var (
	_ PublicRouteGroup    = (*AuthRoutes)(nil)
	_ PublicRouteGroup    = (*MealPlannerRoutes)(nil)
	_ ProtectedRouteGroup = (*MealPlannerRoutes)(nil)
)
