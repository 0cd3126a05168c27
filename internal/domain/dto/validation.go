// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/meal-planner/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors collects every violation found in a request.
// Validate methods never stop at the first failure.
type ValidationErrors []*ValidationError

func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Messages returns one "field: message" string per violation.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return msgs
}

func (v *ValidationErrors) add(field, format string, args ...any) {
	*v = append(*v, &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// err returns nil when nothing was collected so callers can return it directly.
func (v ValidationErrors) err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

func (v *ValidationErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.add(field, "is required")
	}
}

func (v *ValidationErrors) maxLen(field, value string, limit int) {
	if utf8.RuneCountInString(value) > limit {
		v.add(field, "must be at most %d characters", limit)
	}
}

func (v *ValidationErrors) minLen(field, value string, limit int) {
	if utf8.RuneCountInString(value) < limit {
		v.add(field, "must be at least %d characters", limit)
	}
}

func (v *ValidationErrors) email(field, value string) {
	if value == "" {
		v.add(field, "is required")
		return
	}
	if addr, err := mail.ParseAddress(value); err != nil || addr.Address != value {
		v.add(field, "must be a valid email address")
	}
}

func (v *ValidationErrors) objectID(field, value string) {
	if _, err := primitive.ObjectIDFromHex(value); err != nil {
		v.add(field, "must be a valid id")
	}
}

// Quantities are bounded so that scaled and summed shopping list totals still
// fit the 34 significant digits of a stored Decimal128.
const maxQuantityPlaces = 6

var maxQuantity = decimal.New(1, 9)

func (v *ValidationErrors) positive(field string, value decimal.Decimal) {
	switch {
	case !value.IsPositive():
		v.add(field, "must be greater than zero")
	case value.GreaterThanOrEqual(maxQuantity):
		v.add(field, "must be less than %s", maxQuantity)
	case !value.Equal(value.Truncate(maxQuantityPlaces)):
		v.add(field, "must have at most %d decimal places", maxQuantityPlaces)
	}
}

func (v *ValidationErrors) unit(field string, unit model.MeasurementUnit) {
	if !unit.IsValid() {
		v.add(field, "must be a known measurement unit")
	}
}

func itemField(prefix string, i int, name string) string {
	return fmt.Sprintf("%s[%d].%s", prefix, i, name)
}

// objectIDOrNil converts hex that Validate has already accepted.
func objectIDOrNil(hex string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}
