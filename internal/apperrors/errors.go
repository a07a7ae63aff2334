package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that a mutation would break a referential invariant
// (e.g. deleting a price list still used by a debtor group).
var ErrConflict = errors.New("conflict")

// ErrDependency indicates that a required lookup on a collaborator failed.
var ErrDependency = errors.New("dependency error")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// AppError is returned by the persistence layer. It carries an HTTP-ish code,
// a message safe to show to callers and the underlying cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an error matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an error matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewConflictError returns an error matching ErrConflict.
func NewConflictError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message, Err: ErrConflict}
}

// NewDependencyError returns an error matching ErrDependency and the cause.
func NewDependencyError(message string, cause error) error {
	if cause == nil {
		return &AppError{Code: http.StatusFailedDependency, Message: message, Err: ErrDependency}
	}
	return &AppError{Code: http.StatusFailedDependency, Message: message, Err: errors.Join(ErrDependency, cause)}
}

// Kind returns the short name of the taxonomy entry err belongs to. A
// dependency failure wins over the kind of its cause.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrDependency):
		return "DependencyError"
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, ErrNotFound):
		return "NotFoundError"
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicate):
		return "ConflictError"
	case errors.Is(err, ErrUnauthorized):
		return "UnauthorizedError"
	default:
		return "InternalError"
	}
}

// HTTPStatus maps err onto a response status code.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrDependency):
		return http.StatusFailedDependency
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict), errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
