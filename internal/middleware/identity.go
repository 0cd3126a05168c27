package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/service"
)

// Gin context keys shared by the middleware and the handlers.
const (
	ContextKeyUserID         = "user_id"
	ContextKeyUserEmail      = "user_email"
	ContextKeyClaims         = "user_claims"
	ContextKeyLoggingService = "logging_service"
)

const bearerPrefix = "Bearer "

// BearerToken returns the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	return token, token != ""
}

// SetIdentity records the caller on the context so audit and request logs
// can attribute the request.
func SetIdentity(c *gin.Context, userID primitive.ObjectID, email string) {
	c.Set(ContextKeyUserID, userID)
	c.Set(ContextKeyUserEmail, email)
}

// UserID returns the hex ID of the authenticated caller, or "" for anonymous requests.
func UserID(c *gin.Context) string {
	switch id := c.Value(ContextKeyUserID).(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	}
	return ""
}

// UserEmail returns the email of the authenticated caller, or "".
func UserEmail(c *gin.Context) string {
	email, _ := c.Value(ContextKeyUserEmail).(string)
	return email
}

// Claims returns the token claims JWTAuth stored, or nil.
func Claims(c *gin.Context) *dto.Claims {
	claims, _ := c.Value(ContextKeyClaims).(*dto.Claims)
	return claims
}

// LoggingServiceFrom returns the logging service the router attached, or nil.
func LoggingServiceFrom(c *gin.Context) service.LoggingService {
	ls, _ := c.Value(ContextKeyLoggingService).(service.LoggingService)
	return ls
}

// abortWithError writes the standard error body with a translated message.
func abortWithError(c *gin.Context, status int, code, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(code, message).WithRequestID(GetRequestID(c)))
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	abortWithError(c, http.StatusUnauthorized, dto.ErrCodeUnauthorized, messageKey)
}
