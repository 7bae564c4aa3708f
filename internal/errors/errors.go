package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInternal         = "INTERNAL_ERROR"
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeInvalidFaction   = "INVALID_FACTION"
	ErrCodeInvalidDay       = "INVALID_DAY"
	ErrCodeStoreUnavailable = "STORE_UNAVAILABLE"
)

// Sentinels for errors.Is checks. They match any AppError carrying the same code.
var (
	ErrInvalidFaction   = &AppError{Code: ErrCodeInvalidFaction, Message: "invalid faction", Status: 400}
	ErrInvalidDay       = &AppError{Code: ErrCodeInvalidDay, Message: "invalid day", Status: 400}
	ErrStoreUnavailable = &AppError{Code: ErrCodeStoreUnavailable, Message: "match store unavailable", Status: 503}
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "INVALID_FACTION", "STORE_UNAVAILABLE")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
		Status:  400,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// NewBadRequestError creates a new BAD_REQUEST error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Status:  400,
	}
}

// NewInvalidFactionError reports a faction outside the closed set, or the
// "all" sentinel where a concrete faction is required.
func NewInvalidFactionError(value string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidFaction,
		Message: fmt.Sprintf("invalid faction: %q", value),
		Status:  400,
	}
}

// NewInvalidDayError reports a malformed day, or the "overall" sentinel where a
// concrete day is required.
func NewInvalidDayError(value string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidDay,
		Message: fmt.Sprintf("invalid day: %q (want YYYY-MM-DD)", value),
		Status:  400,
	}
}

// NewStoreUnavailableError wraps a persistence failure.
func NewStoreUnavailableError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeStoreUnavailable,
		Message: "match store unavailable",
		Status:  503,
		Err:     err,
	}
}

// As returns the first *AppError in err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	ok := stderrors.As(err, &appErr)
	return appErr, ok
}
