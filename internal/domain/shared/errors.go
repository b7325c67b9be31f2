package shared

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error so transport layers can pick a status
// without inspecting codes.
type ErrorKind string

const (
	KindInvalidInput    ErrorKind = "InvalidInput"
	KindNotFound        ErrorKind = "NotFound"
	KindConflict        ErrorKind = "Conflict"
	KindInternalFailure ErrorKind = "InternalFailure"
)

// DomainError represents a domain-level error
type DomainError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Message string    `json:"message"`
	Data    any       `json:"data,omitempty"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a DomainError with the same code.
// It lets errors.Is match sentinels after WithData or Wrap produced a copy.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithData returns a copy of the error carrying structured data for callers
func (e *DomainError) WithData(data any) *DomainError {
	cp := *e
	cp.Data = data
	return &cp
}

// WithMessage returns a copy of the error with a different message
func (e *DomainError) WithMessage(format string, args ...any) *DomainError {
	cp := *e
	cp.Message = fmt.Sprintf(format, args...)
	return &cp
}

// Wrap returns a copy of the error that records cause for errors.Unwrap
func (e *DomainError) Wrap(cause error) *DomainError {
	cp := *e
	cp.cause = cause
	return &cp
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, code, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

// NewInvalidInputError creates an InvalidInput error
func NewInvalidInputError(code, message string) *DomainError {
	return NewDomainError(KindInvalidInput, code, message)
}

// NewNotFoundError creates a NotFound error
func NewNotFoundError(code, message string) *DomainError {
	return NewDomainError(KindNotFound, code, message)
}

// NewConflictError creates a Conflict error
func NewConflictError(code, message string) *DomainError {
	return NewDomainError(KindConflict, code, message)
}

// NewInternalError creates an InternalFailure error
func NewInternalError(code, message string) *DomainError {
	return NewDomainError(KindInternalFailure, code, message)
}

// Common domain errors
var (
	ErrNotFound     = NewNotFoundError("NOT_FOUND", "Resource not found")
	ErrInvalidInput = NewInvalidInputError("INVALID_INPUT", "Invalid input provided")
)

// KindOf returns the kind of err, treating anything that is not a
// DomainError as an internal failure.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternalFailure
}
