package repository

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrDocumentNotFound is returned by updates and deletes that matched no document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate document")
)

// translateWriteError maps driver write errors onto repository errors.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// containsInsensitive builds a case-insensitive "contains" filter value for term.
func containsInsensitive(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// IsInfrastructureError reports whether err indicates a database problem
// rather than an expected outcome. Circuit breakers count only these.
func IsInfrastructureError(err error) bool {
	switch {
	case err == nil,
		errors.Is(err, ErrDocumentNotFound),
		errors.Is(err, ErrDuplicate),
		errors.Is(err, mongo.ErrNoDocuments),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}
