package service

import (
	"errors"
	"fmt"

	"github.com/guttosm/meal-planner/internal/repository"
)

var (
	// ErrRepositoryNotConfigured is returned when the service runs without a database.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
	// ErrNotFound is matched by every NotFoundError.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is matched by every InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict is returned when a create would duplicate an existing entity.
	ErrConflict = errors.New("conflict")
)

// NotFoundError reports a missing aggregate or child entity.
type NotFoundError struct {
	Resource string
	ID       string
	// Parent optionally names the aggregate the missing child belongs to.
	Parent string
}

func (e *NotFoundError) Error() string {
	if e.Parent != "" {
		return fmt.Sprintf("%s with ID %s not found in %s", e.Resource, e.ID, e.Parent)
	}
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is lets errors.Is(err, ErrNotFound) match.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InvalidArgumentError reports a caller-supplied value that violates a precondition.
type InvalidArgumentError struct {
	Argument string
	Message  string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrInvalidArgument) match.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func notFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func childNotFound(resource, id, parent string) error {
	return &NotFoundError{Resource: resource, ID: id, Parent: parent}
}

// fromRepository maps repository outcomes onto service errors. A write that
// matched nothing means the entity vanished between read and write.
func fromRepository(resource, id string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrDocumentNotFound):
		return notFound(resource, id)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%s %s: %w", resource, id, ErrConflict)
	default:
		return fmt.Errorf("%s %s: %w", resource, id, err)
	}
}
