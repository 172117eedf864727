package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// WrapDomainError wraps an existing error with domain context
func WrapDomainError(code, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause}
}

// Common domain error codes
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeAlreadyExists     = "ALREADY_EXISTS"
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeConflict          = "CONFLICT"
	ErrCodeInternal          = "INTERNAL_ERROR"
)

// Common domain errors
var (
	ErrNotFound      = NewDomainError(ErrCodeNotFound, "resource not found")
	ErrAlreadyExists = NewDomainError(ErrCodeAlreadyExists, "resource already exists")
	ErrInvalidInput  = NewDomainError(ErrCodeInvalidInput, "invalid input")
	ErrConflict      = NewDomainError(ErrCodeConflict, "resource conflict")
)

// NewNotFoundError creates a not found error for a specific resource
func NewNotFoundError(resource string, id interface{}) *DomainError {
	return NewDomainError(ErrCodeNotFound, fmt.Sprintf("%s with id %v not found", resource, id))
}

// NewAlreadyExistsError reports a uniqueness violation for a named resource
func NewAlreadyExistsError(resource, name string) *DomainError {
	return NewDomainError(ErrCodeAlreadyExists, fmt.Sprintf("%s %q already exists", resource, name))
}

// NewValidationError creates a validation error with a specific message
func NewValidationError(message string) *DomainError {
	return NewDomainError(ErrCodeInvalidInput, message)
}

// NewInsufficientStockError reports a stock shortage for a product.
// Available and requested quantities are part of the message so the
// caller can surface them without re-querying.
func NewInsufficientStockError(productName string, available, requested int64) *DomainError {
	return NewDomainError(ErrCodeInsufficientStock,
		fmt.Sprintf("insufficient stock for %s: available %d, requested %d", productName, available, requested))
}

// IsDomainError checks whether err is a DomainError with the given code
func IsDomainError(err error, code string) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// IsNotFound reports whether err is a not found error
func IsNotFound(err error) bool {
	return IsDomainError(err, ErrCodeNotFound)
}
