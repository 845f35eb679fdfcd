package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	apperrors "aitools/backend/pkg/errors"
)

// Recent tool store backends
const (
	RecentStoreMemory = "memory"
	RecentStoreBolt   = "bolt"
	RecentStoreRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	// App
	Port string
	Env  string

	// Chat-completion provider (named actions)
	OpenAIBaseURL string
	OpenAIAPIKey  string
	ModelID       string

	// Pollinations free tier (universal text + images)
	PollinationsTextURL   string
	PollinationsImageURL  string
	PollinationsTextModel string

	// GenerationTimeout bounds a single outbound call. Zero means no timeout.
	GenerationTimeout time.Duration

	// Site / SEO
	SiteURL            string
	SiteName           string
	TwitterHandle      string
	GoogleVerification string
	BingVerification   string

	// Data overrides; empty means the embedded copies
	CatalogPath string
	FAQPath     string

	// Recently used tools
	RecentStore     string
	RecentStorePath string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RecentTTL       time.Duration

	// IndexNow
	IndexNowKey      string
	IndexNowEndpoint string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	cfg := &Config{
		Port:                  getEnv("PORT", "8080"),
		Env:                   getEnv("ENV", "development"),
		OpenAIBaseURL:         strings.TrimRight(getEnv("OPENAI_BASE_URL", "https://api.openai.com"), "/"),
		OpenAIAPIKey:          getEnv("OPENAI_API_KEY", ""),
		ModelID:               getEnv("MODEL_ID", "gpt-4o-mini"),
		PollinationsTextURL:   strings.TrimRight(getEnv("POLLINATIONS_TEXT_URL", "https://text.pollinations.ai"), "/"),
		PollinationsImageURL:  strings.TrimRight(getEnv("POLLINATIONS_IMAGE_URL", "https://image.pollinations.ai"), "/"),
		PollinationsTextModel: getEnv("POLLINATIONS_TEXT_MODEL", "openai"),
		GenerationTimeout:     time.Duration(getEnvInt("GENERATION_TIMEOUT_SECONDS", 0)) * time.Second,
		SiteURL:               strings.TrimRight(getEnv("SITE_URL", "https://ai-tools.30tools.com"), "/"),
		SiteName:              getEnv("SITE_NAME", "30tools AI Tools"),
		TwitterHandle:         getEnv("TWITTER_HANDLE", "@30tools"),
		GoogleVerification:    getEnv("GOOGLE_VERIFICATION", ""),
		BingVerification:      getEnv("BING_VERIFICATION", ""),
		CatalogPath:           getEnv("CATALOG_PATH", ""),
		FAQPath:               getEnv("FAQ_PATH", ""),
		RecentStore:           strings.ToLower(getEnv("RECENT_STORE", RecentStoreMemory)),
		RecentStorePath:       getEnv("RECENT_STORE_PATH", "data/recent.db"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:         getEnv("REDIS_PASSWORD", ""),
		RedisDB:               getEnvInt("REDIS_DB", 0),
		RecentTTL:             time.Duration(getEnvInt("RECENT_TTL_HOURS", 720)) * time.Hour,
		IndexNowKey:           getEnv("INDEXNOW_KEY", "634a2c77198a45429967eb9dc1252278"),
		IndexNowEndpoint:      getEnv("INDEXNOW_ENDPOINT", "https://api.indexnow.org/indexnow"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set
func (c *Config) Validate() error {
	if c.ModelID == "" {
		return apperrors.NewConfigMissingRequired("MODEL_ID")
	}
	if c.PollinationsTextURL == "" {
		return apperrors.NewConfigMissingRequired("POLLINATIONS_TEXT_URL")
	}
	if c.PollinationsImageURL == "" {
		return apperrors.NewConfigMissingRequired("POLLINATIONS_IMAGE_URL")
	}
	if c.SiteURL == "" {
		return apperrors.NewConfigMissingRequired("SITE_URL")
	}
	if u, err := url.Parse(c.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.NewConfigValidationFailed("SITE_URL", "must be an absolute URL")
	}
	if c.GenerationTimeout < 0 {
		return apperrors.NewConfigValidationFailed("GENERATION_TIMEOUT_SECONDS", "must not be negative")
	}

	switch c.RecentStore {
	case RecentStoreMemory:
	case RecentStoreBolt:
		if c.RecentStorePath == "" {
			return apperrors.NewConfigMissingRequired("RECENT_STORE_PATH")
		}
	case RecentStoreRedis:
		if c.RedisAddr == "" {
			return apperrors.NewConfigMissingRequired("REDIS_ADDR")
		}
	default:
		return apperrors.NewConfigValidationFailed("RECENT_STORE", fmt.Sprintf("unsupported backend %q", c.RecentStore))
	}
	// OpenAI API key is optional: named actions fail per call without it
	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SiteHost returns the host part of SiteURL
func (c *Config) SiteHost() string {
	u, err := url.Parse(c.SiteURL)
	if err != nil {
		return ""
	}
	return u.Host
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}
