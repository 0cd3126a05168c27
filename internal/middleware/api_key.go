package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/i18n"
)

const (
	// APIKeyHeader carries a static API key when JWT auth is not configured.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter fallback for clients that cannot set headers.
	APIKeyQuery = "api_key"
)

// APIKeyAuth admits requests presenting one of validKeys in the X-API-Key
// header or the api_key query parameter. An empty key set admits everyone.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}
		switch {
		case key == "":
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
		case !validKeys[key]:
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}
