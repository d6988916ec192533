package errors

import (
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeGraph represents graph database errors
	ErrorTypeGraph ErrorType = "graph"
	// ErrorTypeCatalog represents game catalog errors
	ErrorTypeCatalog ErrorType = "catalog"
	// ErrorTypeUser represents user/likes errors
	ErrorTypeUser ErrorType = "user"
	// ErrorTypeAuth represents authorization errors
	ErrorTypeAuth ErrorType = "auth"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// Graph Errors

// ErrGraphConnectionFailed is returned when the Neo4j connection fails
type ErrGraphConnectionFailed struct {
	*BaseError
	URI string
}

func NewGraphConnectionFailed(uri string, err error) *ErrGraphConnectionFailed {
	return &ErrGraphConnectionFailed{
		BaseError: NewBaseError(ErrorTypeGraph, fmt.Sprintf("failed to connect to Neo4j: %s", uri), err),
		URI:       uri,
	}
}

// ErrGraphQueryFailed is returned when a graph query fails. The store's
// native error is wrapped verbatim; callers must not retry.
type ErrGraphQueryFailed struct {
	*BaseError
	Query string
}

func NewGraphQueryFailed(query string, err error) *ErrGraphQueryFailed {
	return &ErrGraphQueryFailed{
		BaseError: NewBaseError(ErrorTypeGraph, "query failed", err),
		Query:     query,
	}
}

// Catalog Errors

// ErrGameNotFound is returned when a game id resolves to nothing
type ErrGameNotFound struct {
	*BaseError
	ID int
}

func NewGameNotFound(id int) *ErrGameNotFound {
	return &ErrGameNotFound{
		BaseError: NewBaseError(ErrorTypeCatalog, fmt.Sprintf("game not found: %d", id), nil),
		ID:        id,
	}
}

// User Errors

// ErrUserNotFound is returned when a username resolves to nothing
type ErrUserNotFound struct {
	*BaseError
	Username string
}

func NewUserNotFound(username string) *ErrUserNotFound {
	return &ErrUserNotFound{
		BaseError: NewBaseError(ErrorTypeUser, fmt.Sprintf("user not found: %s", username), nil),
		Username:  username,
	}
}

// Auth Errors

// ErrForbidden is returned when the write-path authorization gate fails:
// the acting user is missing or does not hold the admin role. It is always
// raised before any mutation is applied.
type ErrForbidden struct {
	*BaseError
	Username string
}

func NewForbidden(username string) *ErrForbidden {
	return &ErrForbidden{
		BaseError: NewBaseError(ErrorTypeAuth, fmt.Sprintf("user %q is not allowed to modify the catalog", username), nil),
		Username:  username,
	}
}

// Config Errors

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

// Category returns the error's type classification
func (e *BaseError) Category() ErrorType {
	return e.Type
}

// IsErrorType checks if an error belongs to a given category. Works for
// *BaseError itself and for every typed error embedding it.
func IsErrorType(err error, errType ErrorType) bool {
	if categorized, ok := err.(interface{ Category() ErrorType }); ok {
		return categorized.Category() == errType
	}
	if wrapped, ok := err.(interface{ Unwrap() error }); ok {
		inner := wrapped.Unwrap()
		if inner == nil {
			return false
		}
		return IsErrorType(inner, errType)
	}
	return false
}
