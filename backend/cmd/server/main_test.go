package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"aitools/backend/internal/app"
	"aitools/backend/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                 "0",
		ModelID:              "test-model",
		OpenAIBaseURL:        "http://127.0.0.1:1",
		PollinationsTextURL:  "http://127.0.0.1:1",
		PollinationsImageURL: "https://image.example",
		SiteURL:              "https://tools.example",
		SiteName:             "30tools AI Tools",
		RecentStore:          config.RecentStoreMemory,
		IndexNowKey:          "key",
		IndexNowEndpoint:     "http://127.0.0.1:1",
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	require.NoError(t, cfg.Validate())

	a, err := app.New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a.Router()
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/health", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "ok", response["status"])
}

func TestActionEndpoint_InvalidRequest(t *testing.T) {
	router := newTestRouter(t)

	// Missing required param
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/actions/paraphrase", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentEndpoint_InvalidRequest(t *testing.T) {
	router := newTestRouter(t)

	// Missing tool_id
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/recent", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := run(ctx, testConfig(), zap.NewNop())

	assert.NoError(t, err)
}
