package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTypes(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		kind  ErrorType
		input bool
	}{
		{"invalid input", NewInvalidInput("text", "must not be blank"), ErrorTypeInput, true},
		{"unknown action", NewUnknownAction("nope"), ErrorTypeInput, true},
		{"tool not found", NewToolNotFound("x"), ErrorTypeInput, true},
		{"provider status", NewProviderStatus("chat-completion", 502, nil), ErrorTypeProvider, false},
		{"empty response", NewEmptyResponse("pollinations"), ErrorTypeProvider, false},
		{"storage", NewStorageFailed("redis", "get", stderrors.New("down")), ErrorTypeStorage, false},
		{"context", NewContextCancelled("chat completion", stderrors.New("deadline")), ErrorTypeContext, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsErrorType(tt.err, tt.kind))
			assert.Equal(t, tt.input, IsInputError(tt.err))

			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.True(t, IsErrorType(wrapped, tt.kind))
		})
	}

	assert.False(t, IsErrorType(stderrors.New("plain"), ErrorTypeInput))
}

func TestStatusCode(t *testing.T) {
	err := fmt.Errorf("call failed: %w", NewProviderStatus("pollinations", 429, nil))

	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, 429, code)

	_, ok = StatusCode(NewEmptyResponse("pollinations"))
	assert.False(t, ok)
}

func TestMessage(t *testing.T) {
	err := NewInvalidInput("tone", "must be one of: formal, casual")

	assert.Equal(t, "[input] invalid input tone: must be one of: formal, casual", err.Error())
	assert.Equal(t, "invalid input tone: must be one of: formal, casual", Message(err))
	assert.Equal(t, "invalid input tone: must be one of: formal, casual", Message(fmt.Errorf("wrap: %w", err)))
	assert.Equal(t, "plain", Message(stderrors.New("plain")))
	assert.Equal(t, "", Message(nil))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewProviderFailed("chat-completion", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
