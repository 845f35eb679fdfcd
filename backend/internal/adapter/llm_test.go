package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "aitools/backend/pkg/errors"
)

func chatServer(t *testing.T, status int, body string, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req["model"])
		messages, _ := req["messages"].([]interface{})
		assert.Len(t, messages, 1)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestLLMAdapter_Generate(t *testing.T) {
	var calls int32
	srv := chatServer(t, http.StatusOK, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"Hello there"},"finish_reason":"stop"}]}`, &calls)
	defer srv.Close()

	a := NewLLMAdapter(srv.URL, "", "test-model")
	out, err := a.Generate(context.Background(), "Say hello")

	require.NoError(t, err)
	assert.Equal(t, "Hello there", out)
	assert.Equal(t, "test-model", a.GetModel())
	assert.Equal(t, int32(1), calls)
}

func TestLLMAdapter_Generate_ServerErrorNoRetry(t *testing.T) {
	var calls int32
	srv := chatServer(t, http.StatusInternalServerError, `{"error":{"message":"boom","type":"server_error"}}`, &calls)
	defer srv.Close()

	a := NewLLMAdapter(srv.URL, "key", "test-model")
	_, err := a.Generate(context.Background(), "Say hello")

	require.Error(t, err)
	code, ok := apperrors.StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeProvider))
	assert.Equal(t, int32(1), calls, "a failed attempt must not be retried")
}

func TestLLMAdapter_Generate_EmptyContent(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"id":"1","choices":[]}`},
		{"blank content", `{"id":"1","choices":[{"index":0,"message":{"role":"assistant","content":"  \n "}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			srv := chatServer(t, http.StatusOK, tt.body, &calls)
			defer srv.Close()

			_, err := NewLLMAdapter(srv.URL, "", "test-model").Generate(context.Background(), "x")

			var empty *apperrors.ErrEmptyResponse
			assert.ErrorAs(t, err, &empty)
		})
	}
}

func TestLLMAdapter_Generate_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewLLMAdapter(url, "", "test-model").Generate(context.Background(), "x")

	var failed *apperrors.ErrProviderFailed
	assert.ErrorAs(t, err, &failed)
}
