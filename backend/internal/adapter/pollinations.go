package adapter

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"aitools/backend/internal/constants"
	apperrors "aitools/backend/pkg/errors"
	"aitools/backend/pkg/logger"
)

// Image model identifiers accepted by the image endpoint
const (
	ImageModelFlux  = "flux"
	ImageModelTurbo = "turbo"
)

// Default image parameters
const (
	DefaultImageWidth  = 1024
	DefaultImageHeight = 1024
	DefaultImageModel  = ImageModelFlux
)

// Size is a width/height pair in pixels
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ImageSizes are the named presets offered to image tools
var ImageSizes = map[string]Size{
	"logo":      {Width: 512, Height: 512},
	"favicon":   {Width: 256, Height: 256},
	"banner":    {Width: 1200, Height: 630},
	"square":    {Width: 1024, Height: 1024},
	"portrait":  {Width: 768, Height: 1024},
	"landscape": {Width: 1024, Height: 768},
	"hd":        {Width: 1920, Height: 1080},
}

// LookupSize resolves a named preset, case-insensitively
func LookupSize(name string) (Size, bool) {
	s, ok := ImageSizes[strings.ToLower(strings.TrimSpace(name))]
	return s, ok
}

// TextOptions are optional query parameters for text generation
type TextOptions struct {
	Model       string
	Seed        *int64
	Temperature *float64
}

// ImageOptions are the query parameters encoded into an image URL.
// Zero values take the defaults; NoLogo defaults to true unless ShowLogo is set.
type ImageOptions struct {
	Width    int
	Height   int
	Model    string
	Seed     *int64
	ShowLogo bool
	Enhance  bool
}

// PollinationsClient talks to the keyless Pollinations endpoints
type PollinationsClient struct {
	textURL    string
	imageURL   string
	textModel  string
	timeout    time.Duration
	httpClient *http.Client
	logger     *zap.Logger
}

// PollinationsOption configures a PollinationsClient
type PollinationsOption func(*PollinationsClient)

// WithHTTPClient swaps the underlying HTTP client
func WithHTTPClient(hc *http.Client) PollinationsOption {
	return func(c *PollinationsClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTextModel sets the default text model
func WithTextModel(model string) PollinationsOption {
	return func(c *PollinationsClient) {
		if model != "" {
			c.textModel = model
		}
	}
}

// WithTimeout bounds each text request. Zero means no timeout beyond the caller's context.
func WithTimeout(d time.Duration) PollinationsOption {
	return func(c *PollinationsClient) {
		c.timeout = d
	}
}

// WithLogger overrides the global logger
func WithLogger(l *zap.Logger) PollinationsOption {
	return func(c *PollinationsClient) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewPollinationsClient creates a client for the given text and image hosts
func NewPollinationsClient(textURL, imageURL string, opts ...PollinationsOption) *PollinationsClient {
	c := &PollinationsClient{
		textURL:    strings.TrimRight(textURL, "/"),
		imageURL:   strings.TrimRight(imageURL, "/"),
		textModel:  "openai",
		httpClient: &http.Client{},
		logger:     logger.Get(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate fetches a text completion with the default model
func (c *PollinationsClient) Generate(ctx context.Context, prompt string) (string, error) {
	return c.GenerateWithOptions(ctx, prompt, TextOptions{})
}

// GenerateWithOptions fetches a text completion. Non-2xx statuses and blank bodies are errors.
func (c *PollinationsClient) GenerateWithOptions(ctx context.Context, prompt string, opts TextOptions) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	textURL := c.TextURL(prompt, opts)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, textURL, nil)
	if err != nil {
		return "", apperrors.NewProviderFailed(constants.ProviderPollinations, fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Accept", "text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", apperrors.NewContextCancelled("pollinations text", err)
		}
		return "", apperrors.NewProviderFailed(constants.ProviderPollinations, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apperrors.NewProviderFailed(constants.ProviderPollinations, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("Pollinations text error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("response_body", truncate(string(body), 512)),
		)
		return "", apperrors.NewProviderStatus(constants.ProviderPollinations, resp.StatusCode, fmt.Errorf("%s", resp.Status))
	}

	text := string(body)
	if strings.TrimSpace(text) == "" {
		return "", apperrors.NewEmptyResponse(constants.ProviderPollinations)
	}

	return text, nil
}

// TextURL builds the text endpoint URL for prompt
func (c *PollinationsClient) TextURL(prompt string, opts TextOptions) string {
	model := opts.Model
	if model == "" {
		model = c.textModel
	}

	var q query
	q.add("model", model)
	if opts.Seed != nil {
		q.add("seed", strconv.FormatInt(*opts.Seed, 10))
	}
	if opts.Temperature != nil {
		q.add("temperature", strconv.FormatFloat(*opts.Temperature, 'f', -1, 64))
	}

	return c.textURL + "/" + escapeComponent(prompt) + q.String()
}

// ImageURL builds the image URL for prompt. Nothing is fetched.
func (c *PollinationsClient) ImageURL(prompt string, opts ImageOptions) string {
	width, height := opts.Width, opts.Height
	if width <= 0 {
		width = DefaultImageWidth
	}
	if height <= 0 {
		height = DefaultImageHeight
	}
	model := opts.Model
	if model == "" {
		model = DefaultImageModel
	}

	var q query
	q.add("width", strconv.Itoa(width))
	q.add("height", strconv.Itoa(height))
	q.add("model", model)
	if opts.Seed != nil {
		q.add("seed", strconv.FormatInt(*opts.Seed, 10))
	}
	if !opts.ShowLogo {
		q.add("nologo", "true")
	}
	if opts.Enhance {
		q.add("enhance", "true")
	}

	return c.imageURL + "/prompt/" + escapeComponent(prompt) + q.String()
}

// ImageVariations returns one URL per seed, identical except for the seed parameter
func (c *PollinationsClient) ImageVariations(prompt string, seeds []int64, opts ImageOptions) []string {
	urls := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		s := seed
		o := opts
		o.Seed = &s
		urls = append(urls, c.ImageURL(prompt, o))
	}
	return urls
}

// SeedRange returns n consecutive seeds starting at base
func SeedRange(base int64, n int) []int64 {
	if n <= 0 {
		return []int64{}
	}
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = base + int64(i)
	}
	return seeds
}

// VariationSeeds picks n seeds from base when given, otherwise from the current time
func VariationSeeds(base *int64, n int) []int64 {
	if base != nil {
		return SeedRange(*base, n)
	}
	return SeedRange(time.Now().UnixMilli(), n)
}

// DownloadImage fetches an image URL and returns its bytes and content type
func (c *PollinationsClient) DownloadImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", apperrors.NewProviderFailed(constants.ProviderPollinations, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", apperrors.NewProviderStatus(constants.ProviderPollinations, resp.StatusCode, fmt.Errorf("%s", resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", apperrors.NewProviderFailed(constants.ProviderPollinations, fmt.Errorf("failed to read image: %w", err))
	}
	if len(data) == 0 {
		return nil, "", apperrors.NewEmptyResponse(constants.ProviderPollinations)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// query keeps parameters in insertion order, unlike url.Values.Encode
type query []string

func (q *query) add(key, value string) {
	*q = append(*q, url.QueryEscape(key)+"="+url.QueryEscape(value))
}

func (q query) String() string {
	if len(q) == 0 {
		return ""
	}
	return "?" + strings.Join(q, "&")
}

// escapeComponent encodes s as a single path segment with spaces as %20
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
