package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/service"
)

// JWTAuth rejects requests without a valid, unrevoked access token and
// stores the caller's identity and claims on the context.
func JWTAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			abortUnauthorized(c, i18n.ErrKeyTokenRequired)
			return
		}
		token, ok := BearerToken(c)
		if !ok {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, i18n.ErrKeyInvalidToken)
			return
		}

		SetIdentity(c, claims.UserID, claims.Email)
		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}
