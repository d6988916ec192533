package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_Category(t *testing.T) {
	assert.True(t, IsErrorType(NewForbidden("bob"), ErrorTypeAuth))
	assert.True(t, IsErrorType(NewGameNotFound(7), ErrorTypeCatalog))
	assert.True(t, IsErrorType(NewUserNotFound("bob"), ErrorTypeUser))
	assert.True(t, IsErrorType(NewGraphQueryFailed("MATCH (n)", fmt.Errorf("boom")), ErrorTypeGraph))
	assert.False(t, IsErrorType(NewForbidden("bob"), ErrorTypeGraph))
	assert.False(t, IsErrorType(fmt.Errorf("plain"), ErrorTypeGraph))
}

func TestGraphQueryFailed_WrapsNativeError(t *testing.T) {
	native := fmt.Errorf("SyntaxError: unexpected token")
	err := NewGraphQueryFailed("MATCH (n", native)

	assert.ErrorContains(t, err, "query failed")
	assert.True(t, stderrors.Is(err, native))
	assert.Equal(t, "MATCH (n", err.Query)
}

func TestErrorsAs_ThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NewForbidden("mallory"))

	var forbidden *ErrForbidden
	assert.True(t, stderrors.As(wrapped, &forbidden))
	assert.Equal(t, "mallory", forbidden.Username)
}
