package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/logger"
)

// MembershipChecker reports whether a user belongs to a household.
type MembershipChecker interface {
	IsMember(ctx context.Context, householdID primitive.ObjectID, userID string) (bool, error)
}

// RequireHouseholdMember admits authenticated callers who are members of the
// household named by the param path parameter. JWTAuth must run first.
// Outsiders get 403 whether or not the household exists.
func RequireHouseholdMember(param string, households MembershipChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := UserID(c)
		if userID == "" {
			abortUnauthorized(c, i18n.ErrKeyUnauthorized)
			return
		}
		householdID, err := primitive.ObjectIDFromHex(c.Param(param))
		if err != nil {
			abortWithError(c, http.StatusBadRequest, dto.ErrCodeInvalidRequest, i18n.ErrKeyInvalidID)
			return
		}

		member, err := households.IsMember(c.Request.Context(), householdID, userID)
		if err != nil {
			logger.Ctx(c.Request.Context()).Error().Err(err).
				Str("household_id", householdID.Hex()).
				Msg("Failed to check household membership")
			abortWithError(c, http.StatusServiceUnavailable, dto.ErrCodeUnavailable, i18n.ErrKeyServiceUnavailable)
			return
		}
		if !member {
			abortWithError(c, http.StatusForbidden, dto.ErrCodeForbidden, i18n.ErrKeyForbidden)
			return
		}
		c.Next()
	}
}
