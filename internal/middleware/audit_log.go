package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/service"
)

// AuditLog records a user action such as a login or a shopping list
// generation. It never blocks the request.
func AuditLog(logs service.LoggingService, c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if logs == nil {
		return
	}
	persistLog(logs, auditEntry(c, "info", actionType, message, fields))
}

// AuditLogError records a failed user action together with its error.
func AuditLogError(logs service.LoggingService, c *gin.Context, actionType, message string, err error, fields map[string]interface{}) {
	if logs == nil {
		return
	}
	entry := auditEntry(c, "error", actionType, message, fields)
	if err != nil {
		entry.Error = err.Error()
	}
	persistLog(logs, entry)
}

func auditEntry(c *gin.Context, level, actionType, message string, fields map[string]interface{}) *model.LogEntry {
	return &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  GetRequestID(c),
		Method:     c.Request.Method,
		Path:       c.Request.URL.Path,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		UserID:     UserID(c),
		UserEmail:  UserEmail(c),
		ActionType: actionType,
		Fields:     fields,
	}
}
