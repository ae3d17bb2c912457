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

// ErrStorage indicates that the persistence layer failed to read or write data.
var ErrStorage = errors.New("storage error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
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

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewStorageError wraps a persistence failure so that errors.Is(err, ErrStorage) holds.
func NewStorageError(message string, err error) *AppError {
	cause := ErrStorage
	if err != nil {
		cause = fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return NewAppError(http.StatusInternalServerError, message, cause)
}
