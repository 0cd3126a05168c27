package http

import (
	"context"
	"errors"
	"net/http"
	"path"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/circuitbreaker"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/middleware"
	"github.com/guttosm/meal-planner/internal/service"
)

// bindRequest decodes and validates the JSON body into T. It writes the 400
// response itself and returns false when the body is unusable.
func bindRequest[T any](c *gin.Context) (*T, bool) {
	req, err := decodeRequest[T](c)
	if err == nil {
		return req, true
	}

	builder := NewResponseBuilder(c)
	if isValidationError(err) {
		builder.ValidationFailed(err)
	} else {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
	}
	return nil, false
}

func isValidationError(err error) bool {
	var many dto.ValidationErrors
	var one *dto.ValidationError
	return errors.As(err, &many) || errors.As(err, &one)
}

// pathID parses the named path parameter as an ObjectID, answering 400 when it is malformed.
func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		NewResponseBuilder(c).Error(http.StatusBadRequest, i18n.ErrKeyInvalidID, err)
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondServiceError maps a service error onto its HTTP status.
func respondServiceError(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	var notFound *service.NotFoundError
	switch {
	case errors.As(err, &notFound):
		builder.ErrorWithMessage(http.StatusNotFound, notFound.Error(), err)
	case errors.Is(err, service.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case isValidationError(err):
		builder.ValidationFailed(err)
	case errors.Is(err, service.ErrInvalidArgument):
		builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, service.ErrConflict):
		builder.Error(http.StatusConflict, i18n.ErrKeyConflict, err)
	case errors.Is(err, circuitbreaker.ErrCircuitOpen),
		errors.Is(err, service.ErrRepositoryNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyServiceUnavailable, err)
	case errors.Is(err, context.DeadlineExceeded):
		builder.Error(http.StatusGatewayTimeout, i18n.ErrKeyTimeout, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// respondNotFound answers 404 for a lookup that returned nothing.
func respondNotFound(c *gin.Context, resource string, id primitive.ObjectID) {
	err := &service.NotFoundError{Resource: resource, ID: id.Hex()}
	NewResponseBuilder(c).ErrorWithMessage(http.StatusNotFound, err.Error(), err)
}

// respondCreated answers 201 with a Location header pointing at the new resource.
func respondCreated(c *gin.Context, location string, data interface{}) {
	c.Header("Location", location)
	NewResponseBuilder(c).SuccessCreated(data)
}

func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func resourcePath(base string, elems ...string) string {
	return path.Join(append([]string{base}, elems...)...)
}

// ingredientNames resolves display names for the given ids. Lookup failures
// degrade to unnamed ingredients rather than failing the request.
func ingredientNames(c *gin.Context, ingredients service.IngredientService, ids []primitive.ObjectID) dto.IngredientNames {
	if ingredients == nil || len(ids) == 0 {
		return dto.IngredientNames{}
	}
	names, err := ingredients.Names(c.Request.Context(), ids)
	if err != nil {
		log.Ctx(c.Request.Context()).Warn().Err(err).Int("ids", len(ids)).Msg("Failed to resolve ingredient names")
		return dto.IngredientNames{}
	}
	return names
}

// audit records a domain action through the logging service attached to the request.
func audit(c *gin.Context, action, message string, fields map[string]interface{}) {
	middleware.AuditLog(middleware.LoggingServiceFrom(c), c, action, message, fields)
}

func auditError(c *gin.Context, action, message string, err error, fields map[string]interface{}) {
	middleware.AuditLogError(middleware.LoggingServiceFrom(c), c, action, message, err, fields)
}
