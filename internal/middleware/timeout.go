package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
)

// Timeout puts a deadline on the request context. Handlers observe it through
// the context they hand to MongoDB; one that returns after the deadline without
// choosing a status is answered with 504. A status set with c.Status, such as
// the 204 of an update that finished at the deadline, is kept. A non-positive
// d disables the deadline.
//
// Handlers run on the request goroutine, so a panic still reaches Recovery.
func Timeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		w := &statusWriter{ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		c.Writer = w.ResponseWriter
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !w.statusSet && !c.Writer.Written() {
			abortWithError(c, http.StatusGatewayTimeout, dto.ErrCodeTimeout, i18n.ErrKeyTimeout)
		}
	}
}

// statusWriter notes whether the handler picked a status. gin only sends the
// header on the first body write, so Written alone misses c.Status.
type statusWriter struct {
	gin.ResponseWriter
	statusSet bool
}

func (w *statusWriter) WriteHeader(code int) {
	w.statusSet = true
	w.ResponseWriter.WriteHeader(code)
}
