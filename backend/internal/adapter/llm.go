package adapter

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"aitools/backend/internal/constants"
	apperrors "aitools/backend/pkg/errors"
	"aitools/backend/pkg/logger"
)

// LLMAdapter issues single chat completions against an OpenAI-compatible endpoint
type LLMAdapter struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// LLMOption configures an LLMAdapter
type LLMOption func(*LLMAdapter)

// WithLLMTimeout bounds each completion. Zero leaves the caller's context in charge.
func WithLLMTimeout(d time.Duration) LLMOption {
	return func(a *LLMAdapter) {
		a.timeout = d
	}
}

// WithLLMLogger overrides the global logger
func WithLLMLogger(l *zap.Logger) LLMOption {
	return func(a *LLMAdapter) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewLLMAdapter creates a new LLM adapter
func NewLLMAdapter(baseURL, apiKey, modelID string, opts ...LLMOption) *LLMAdapter {
	// Self-hosted gateways accept any key
	if apiKey == "" {
		apiKey = "dummy-key"
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = strings.TrimRight(baseURL, "/") + "/v1"

	a := &LLMAdapter{
		client: openai.NewClientWithConfig(config),
		model:  modelID,
		logger: logger.Get(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// GetModel returns the model every completion is sent to
func (a *LLMAdapter) GetModel() string {
	return a.model
}

// Generate sends prompt as a single user message and returns the completion text.
// There is no retry: one failed attempt is final.
func (a *LLMAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
	}

	start := time.Now()
	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", a.classify(ctx, err)
	}

	if len(resp.Choices) == 0 {
		return "", apperrors.NewEmptyResponse(constants.ProviderChat)
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", apperrors.NewEmptyResponse(constants.ProviderChat)
	}

	a.logger.Debug("LLM response generated",
		zap.String("model", a.model),
		zap.Int("content_length", len(content)),
		zap.Duration("duration", time.Since(start)),
	)

	return content, nil
}

// classify maps a go-openai failure onto the provider error taxonomy
func (a *LLMAdapter) classify(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return apperrors.NewContextCancelled("chat completion", err)
	}

	var apiErr *openai.APIError
	if stderrors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return apperrors.NewProviderStatus(constants.ProviderChat, apiErr.HTTPStatusCode, err)
	}

	var reqErr *openai.RequestError
	if stderrors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		return apperrors.NewProviderStatus(constants.ProviderChat, reqErr.HTTPStatusCode, err)
	}

	return apperrors.NewProviderFailed(constants.ProviderChat, err)
}
