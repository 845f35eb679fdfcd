package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"aitools/backend/internal/actions"
	"aitools/backend/internal/adapter"
	"aitools/backend/internal/api"
	"aitools/backend/internal/catalog"
	"aitools/backend/internal/faq"
	"aitools/backend/internal/indexnow"
	"aitools/backend/internal/metrics"
	"aitools/backend/internal/recent"
	"aitools/backend/internal/seo"
	"aitools/backend/pkg/config"
)

// App holds every long-lived component built from a Config
type App struct {
	Config       *config.Config
	Catalog      *catalog.Catalog
	FAQs         *faq.Library
	LLM          *adapter.LLMAdapter
	Pollinations *adapter.PollinationsClient
	Dispatcher   *actions.Dispatcher
	Site         seo.Site
	Recent       *recent.Tracker
	IndexNow     *indexnow.Client
	Registry     *prometheus.Registry

	logger  *zap.Logger
	closers []func() error
}

// New wires the application. The caller must Close it.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	a := &App{Config: cfg, logger: log}

	var err error
	if a.Catalog, err = loadCatalog(cfg.CatalogPath); err != nil {
		return nil, err
	}
	if err := a.Catalog.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	if a.FAQs, err = loadFAQs(cfg.FAQPath); err != nil {
		return nil, err
	}

	store, closeStore, err := OpenRecentStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if closeStore != nil {
		a.closers = append(a.closers, closeStore)
	}
	a.Recent = recent.NewTracker(store)

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder, err := metrics.New(a.Registry)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	a.LLM = adapter.NewLLMAdapter(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.ModelID,
		adapter.WithLLMTimeout(cfg.GenerationTimeout),
		adapter.WithLLMLogger(log),
	)
	a.Pollinations = adapter.NewPollinationsClient(cfg.PollinationsTextURL, cfg.PollinationsImageURL,
		adapter.WithTextModel(cfg.PollinationsTextModel),
		adapter.WithTimeout(cfg.GenerationTimeout),
		adapter.WithLogger(log),
	)
	a.Dispatcher = actions.NewDispatcher(a.LLM, a.Pollinations, a.Pollinations, a.Catalog,
		actions.WithLogger(log),
		actions.WithMetrics(recorder),
	)

	a.Site = seo.NewSite(cfg.SiteURL, cfg.SiteName, cfg.TwitterHandle)
	a.Site.GoogleVerification = cfg.GoogleVerification
	a.Site.BingVerification = cfg.BingVerification

	a.IndexNow = indexnow.NewClient(cfg.IndexNowEndpoint, cfg.IndexNowKey, indexnow.WithLogger(log))

	log.Info("Application initialized",
		zap.Int("tools", len(a.Catalog.Tools())),
		zap.Int("actions", len(a.Dispatcher.Actions())),
		zap.String("model", a.LLM.GetModel()),
		zap.String("recent_store", cfg.RecentStore),
	)
	return a, nil
}

// Router builds the HTTP handler
func (a *App) Router() *gin.Engine {
	return api.NewRouter(api.Deps{
		Dispatcher: a.Dispatcher,
		Catalog:    a.Catalog,
		FAQs:       a.FAQs,
		Site:       a.Site,
		Recent:     a.Recent,
		IndexNow:   a.IndexNow,
		Gatherer:   a.Registry,
		Logger:     a.logger,
	})
}

// Close releases storage handles in reverse order of acquisition
func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

// OpenRecentStore opens the configured recent-tools backend. The returned
// close func is nil for the in-memory store.
func OpenRecentStore(ctx context.Context, cfg *config.Config) (recent.Store, func() error, error) {
	switch cfg.RecentStore {
	case config.RecentStoreBolt:
		store, err := recent.OpenBoltStore(cfg.RecentStorePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	case config.RecentStoreRedis:
		store := recent.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, recent.WithTTL(cfg.RecentTTL))
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return recent.NewMemoryStore(), nil, nil
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return cat, nil
}

func loadFAQs(path string) (*faq.Library, error) {
	if path == "" {
		return faq.Default()
	}
	lib, err := faq.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load faqs %s: %w", path, err)
	}
	return lib, nil
}
