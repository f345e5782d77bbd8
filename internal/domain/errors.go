package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"

	// Assessment specific errors
	ErrInvalidEmail ErrorCode = "INVALID_EMAIL"
	ErrInvalidRole  ErrorCode = "INVALID_ROLE"
	ErrRateLimited  ErrorCode = "RATE_LIMITED"
	ErrStoreFailure ErrorCode = "STORE_FAILURE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewInvalidEmailError(email string) *DomainError {
	return NewError(ErrInvalidEmail, fmt.Sprintf("Invalid email address: %s", email), nil)
}

func NewInvalidRoleError(role string) *DomainError {
	return NewError(ErrInvalidRole, fmt.Sprintf("Invalid role: %s", role), nil)
}

// NewRateLimitedError signals that the client exhausted its submission budget.
// Callers branch on this code to show a "try later" message instead of retrying.
func NewRateLimitedError(message string) *DomainError {
	return NewError(ErrRateLimited, message, nil)
}

// NewStoreFailureError wraps a persistence failure that survived retries.
func NewStoreFailureError(err error) *DomainError {
	return NewError(ErrStoreFailure, "Failed to persist submission", err)
}
