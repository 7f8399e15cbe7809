package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user lacks the role required for the operation.
var ErrForbidden = errors.New("operation not permitted")

// ErrUnauthorized indicates a missing or invalid identity context.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInsufficientStock indicates a stock decrement would drive a product's
// quantity below zero while the rejecting policy is active.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrIntegrity indicates a foreign-key target is missing or a delete would
// orphan dependent rows.
var ErrIntegrity = errors.New("integrity violation")

// ErrRetryable indicates a transient store failure (lock timeout, serialization
// failure, statement timeout). The caller may retry the whole unit of work.
var ErrRetryable = errors.New("transient store failure")

// AppError carries an internal status code alongside the wrapped cause.
// Repositories use it for failures that have no domain-level sentinel.
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

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError builds an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
