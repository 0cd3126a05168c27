package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/logger"
)

// ErrorHandler logs the errors handlers attached with c.Error, once per
// request and through the request's logger: at error level for 5xx responses
// and warn otherwise. A handler that attached an error but wrote no response
// is answered with 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		if !c.Writer.Written() {
			abortWithError(c, http.StatusInternalServerError, dto.ErrCodeInternal, i18n.ErrKeyInternalError)
		}

		status := c.Writer.Status()
		l := logger.Ctx(c.Request.Context())
		event := l.Warn()
		if status >= http.StatusInternalServerError {
			event = l.Error()
		}
		event.
			Err(c.Errors.Last().Err).
			Strs("errors", c.Errors.Errors()).
			Int("status", status).
			Str("method", c.Request.Method).
			Str("route", c.FullPath()).
			Msg("Request failed")
	}
}
