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

// ErrInvalidTransition indicates that an operation is not permitted in the voucher's current state.
var ErrInvalidTransition = errors.New("operation not permitted in current voucher state")

// ErrConflict indicates that the resource was modified concurrently between read and write.
var ErrConflict = errors.New("resource was modified concurrently")

// ErrStore indicates that the backing store failed or is unavailable.
var ErrStore = errors.New("store error")

// FieldError is a validation error bound to a single input field.
type FieldError struct {
	Field   string
	Message string
}

// NewFieldError creates a validation error for the given field.
func NewFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Message)
}

// Is lets errors.Is(err, ErrValidation) match field errors.
func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
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

// Is reports server-side failures as ErrStore.
func (e *AppError) Is(target error) bool {
	return target == ErrStore && e.Code >= http.StatusInternalServerError
}
