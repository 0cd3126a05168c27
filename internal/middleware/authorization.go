package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/service"
)

// AuthorizationConfig lists what a route requires of the caller's roles.
// Roles and permissions are referenced by their hex IDs.
type AuthorizationConfig struct {
	// RequiredRoles admits callers holding any of these roles. Empty admits everyone.
	RequiredRoles []string
	// RequiredPermissions must be granted by the caller's active roles.
	RequiredPermissions []string
	// RequireAllPermissions demands every permission instead of any one.
	RequireAllPermissions bool
}

// RequireAuthorization enforces cfg against the claims stored by JWTAuth,
// which must run first. Deactivated roles grant nothing.
func RequireAuthorization(cfg AuthorizationConfig, roles service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}
		if len(cfg.RequiredRoles) > 0 && !slices.ContainsFunc(claims.Roles, func(r string) bool {
			return slices.Contains(cfg.RequiredRoles, r)
		}) {
			abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, i18n.ErrKeyForbidden)
			return
		}
		if len(cfg.RequiredPermissions) > 0 && !grants(c, claims, roles, cfg.RequiredPermissions, cfg.RequireAllPermissions) {
			return
		}
		c.Next()
	}
}

// RequirePermission admits callers whose roles grant resource:action. The
// permission id is resolved on each request through perms, so a database
// that was unreachable at startup does not leave the route unguarded: the
// request fails with 503 instead.
func RequirePermission(resource, action string, perms service.PermissionService, roles service.RoleService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Claims(c)
		if claims == nil {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}

		id, err := perms.PermissionID(c.Request.Context(), resource, action)
		if err != nil {
			log.Ctx(c.Request.Context()).Error().Err(err).
				Str("permission", resource+":"+action).
				Msg("Failed to resolve permission")
			abortWithError(c, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyServiceUnavailable)
			return
		}
		if !grants(c, claims, roles, []string{id}, true) {
			return
		}
		c.Next()
	}
}

// grants reports whether the caller's roles allow required, aborting the
// request when they do not.
func grants(c *gin.Context, claims *dto.Claims, roles service.RoleService, required []string, all bool) bool {
	if roles == nil {
		abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, i18n.ErrKeyForbidden)
		return false
	}
	granted, err := roles.GrantedPermissions(c.Request.Context(), claims.Roles)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Str("user_id", claims.UserID.Hex()).Msg("Failed to load roles")
		abortWithError(c, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyServiceUnavailable)
		return false
	}
	if !granted.Allows(required, all) {
		abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, i18n.ErrKeyForbidden)
		return false
	}
	return true
}
