package http

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/middleware"
)

// Envelopes are pooled; gin encodes them before the handler returns.
var (
	successPool = sync.Pool{New: func() any { return new(dto.SuccessResponse) }}
	errorPool   = sync.Pool{New: func() any { return new(dto.ErrorResponse) }}
)

// ResponseBuilder writes the standard success and error envelopes.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a builder for c.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success writes data in the success envelope.
func (b *ResponseBuilder) Success(status int, data interface{}) {
	resp := successPool.Get().(*dto.SuccessResponse)
	*resp = dto.SuccessResponse{
		Data:      data,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now().UTC(),
	}
	b.c.JSON(status, resp)

	*resp = dto.SuccessResponse{}
	successPool.Put(resp)
}

func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// Error aborts with status and the translation of messageKey. err, when
// set, is attached to the context for the error-handler middleware to log.
func (b *ResponseBuilder) Error(status int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.abort(status, dto.ErrCodeFromStatus(status), message, nil, err)
}

// ErrorWithMessage aborts with a message that is already user facing.
func (b *ResponseBuilder) ErrorWithMessage(status int, message string, err error) {
	b.abort(status, dto.ErrCodeFromStatus(status), message, nil, err)
}

// ValidationFailed aborts with 400 and lists every violation in err.
func (b *ResponseBuilder) ValidationFailed(err error) {
	message := i18n.GetTranslator().Translate(i18n.ErrKeyValidationFailed, i18n.GetLocale(b.c))
	b.abort(http.StatusBadRequest, dto.ErrCodeInvalidRequest, message, violations(err), err)
}

func (b *ResponseBuilder) abort(status int, code, message string, details []string, err error) {
	if err != nil {
		_ = b.c.Error(err)
	}

	resp := errorPool.Get().(*dto.ErrorResponse)
	*resp = dto.ErrorResponse{
		Error:     code,
		Message:   message,
		Errors:    details,
		RequestID: middleware.GetRequestID(b.c),
		Timestamp: time.Now().UTC(),
	}
	b.c.AbortWithStatusJSON(status, resp)

	*resp = dto.ErrorResponse{}
	errorPool.Put(resp)
}

func violations(err error) []string {
	var many dto.ValidationErrors
	if errors.As(err, &many) {
		return many.Messages()
	}
	var one *dto.ValidationError
	if errors.As(err, &one) {
		return []string{one.Error()}
	}
	return []string{err.Error()}
}
