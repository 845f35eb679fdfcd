package indexnow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"aitools/backend/pkg/logger"
)

// DefaultEndpoint is the shared IndexNow API that fans out to participating engines
const DefaultEndpoint = "https://api.indexnow.org/indexnow"

// SubmitResult reports an IndexNow submission. Failures are carried here,
// never as a Go error.
type SubmitResult struct {
	OK     bool   `json:"ok"`
	Status int    `json:"status"`
	Body   any    `json:"body,omitempty"`
	Error  string `json:"error,omitempty"`
}

type submission struct {
	Host        string   `json:"host"`
	Key         string   `json:"key"`
	KeyLocation string   `json:"keyLocation"`
	URLList     []string `json:"urlList"`
}

// Client submits changed URLs to IndexNow
type Client struct {
	endpoint   string
	key        string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient swaps the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger overrides the global logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a client for endpoint (DefaultEndpoint when empty) and key
func NewClient(endpoint, key string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		key:        key,
		httpClient: &http.Client{},
		logger:     logger.Get(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the verification key
func (c *Client) Key() string {
	return c.key
}

// KeyFile is the site path the key must be served from
func (c *Client) KeyFile() string {
	return "/" + c.key + ".txt"
}

// KeyLocation is the absolute key file URL for host
func (c *Client) KeyLocation(host string) string {
	return "https://" + host + c.KeyFile()
}

// Submit posts urls for host. A non-JSON response body leaves Body nil.
func (c *Client) Submit(ctx context.Context, host string, urls []string) SubmitResult {
	payload, err := json.Marshal(submission{
		Host:        host,
		Key:         c.key,
		KeyLocation: c.KeyLocation(host),
		URLList:     urls,
	})
	if err != nil {
		return SubmitResult{Error: fmt.Sprintf("failed to marshal request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return SubmitResult{Error: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("IndexNow submission failed",
			zap.String("host", host),
			zap.Int("url_count", len(urls)),
			zap.Error(err),
		)
		return SubmitResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	result := SubmitResult{
		OK:     resp.StatusCode >= 200 && resp.StatusCode <= 299,
		Status: resp.StatusCode,
	}

	body, err := io.ReadAll(resp.Body)
	if err == nil && len(body) > 0 {
		var parsed any
		if json.Unmarshal(body, &parsed) == nil {
			result.Body = parsed
		}
	}

	c.logger.Info("IndexNow submission",
		zap.String("host", host),
		zap.Int("url_count", len(urls)),
		zap.Int("status_code", resp.StatusCode),
	)
	return result
}
