package shared

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code.
// This lets errors.Is(err, ErrNotFound) match errors created by NewNotFoundError.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes
const (
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadyExists   = "ALREADY_EXISTS"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeInvalidLineItem = "INVALID_LINE_ITEM"
	CodeConflict        = "CONFLICT"
)

// Common domain errors
var (
	ErrNotFound        = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists   = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput    = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrInvalidArgument = NewDomainError(CodeInvalidArgument, "Invalid argument")
	ErrInvalidLineItem = NewDomainError(CodeInvalidLineItem, "Invalid line item")
	ErrConflict        = NewDomainError(CodeConflict, "Resource conflicts with existing state")
)

// NewNotFoundError returns a NOT_FOUND error naming the entity and id
func NewNotFoundError(entity string, id any) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found: %v", entity, id))
}

// NewInvalidArgumentError returns an INVALID_ARGUMENT error
func NewInvalidArgumentError(format string, args ...any) *DomainError {
	return NewDomainError(CodeInvalidArgument, fmt.Sprintf(format, args...))
}

// NewInvalidLineItemError returns an INVALID_LINE_ITEM error
func NewInvalidLineItemError(format string, args ...any) *DomainError {
	return NewDomainError(CodeInvalidLineItem, fmt.Sprintf(format, args...))
}

// NewConflictError returns a CONFLICT error, used for store-level violations
// such as a duplicate unique key.
func NewConflictError(format string, args ...any) *DomainError {
	return NewDomainError(CodeConflict, fmt.Sprintf(format, args...))
}

// IsNotFound reports whether err is a NOT_FOUND domain error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidArgument reports whether err is a caller error, i.e. any INVALID_* code
func IsInvalidArgument(err error) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return strings.HasPrefix(de.Code, "INVALID_")
}

// IsConflict reports whether err is a store conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrAlreadyExists)
}
