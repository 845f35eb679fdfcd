package indexnow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Submit(t *testing.T) {
	var got submission
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"accepted":true}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "abc123", WithLogger(zap.NewNop()))
	res := c.Submit(context.Background(), "tools.example", []string{"https://tools.example/a"})

	assert.True(t, res.OK)
	assert.Equal(t, http.StatusAccepted, res.Status)
	assert.Equal(t, map[string]any{"accepted": true}, res.Body)
	assert.Empty(t, res.Error)

	assert.Equal(t, submission{
		Host:        "tools.example",
		Key:         "abc123",
		KeyLocation: "https://tools.example/abc123.txt",
		URLList:     []string{"https://tools.example/a"},
	}, got)
}

func TestClient_Submit_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("key not valid"))
	}))
	defer srv.Close()

	res := NewClient(srv.URL, "k", WithLogger(zap.NewNop())).Submit(context.Background(), "h", []string{"u"})

	assert.False(t, res.OK)
	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
	assert.Nil(t, res.Body)
}

func TestClient_Submit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	res := NewClient(endpoint, "k", WithLogger(zap.NewNop())).Submit(context.Background(), "h", []string{"u"})

	assert.False(t, res.OK)
	assert.Equal(t, 0, res.Status)
	assert.NotEmpty(t, res.Error)
}

func TestClient_KeyFile(t *testing.T) {
	c := NewClient("", "634a")
	assert.Equal(t, DefaultEndpoint, c.endpoint)
	assert.Equal(t, "/634a.txt", c.KeyFile())
	assert.Equal(t, "https://example.com/634a.txt", c.KeyLocation("example.com"))
}
