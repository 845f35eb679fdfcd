package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"aitools/backend/internal/actions"
	"aitools/backend/internal/catalog"
	"aitools/backend/internal/faq"
	"aitools/backend/internal/indexnow"
	"aitools/backend/internal/recent"
	"aitools/backend/internal/seo"
	"aitools/backend/pkg/logger"
)

// Deps are the collaborators the HTTP layer serves from
type Deps struct {
	Dispatcher *actions.Dispatcher
	Catalog    *catalog.Catalog
	FAQs       *faq.Library
	Site       seo.Site
	Recent     *recent.Tracker
	IndexNow   *indexnow.Client
	Gatherer   prometheus.Gatherer
	Logger     *zap.Logger
	Now        func() time.Time
}

type server struct {
	Deps
}

// NewRouter builds the gin engine with every route registered
func NewRouter(deps Deps) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = logger.Get()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	s := &server{Deps: deps}

	router := gin.New()
	router.Use(ginLogger(deps.Logger))
	router.Use(gin.Recovery())
	router.Use(cors())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.GET("/categories", s.listCategories)
		api.GET("/tools", s.listTools)
		api.GET("/tools/:id", s.getTool)
		api.GET("/tools/:id/seo", s.toolSEO)
		api.GET("/tools/:id/faqs", s.toolFAQs)
		api.POST("/tools/:id/generate", s.generate)
		api.GET("/search", s.search)

		api.GET("/actions", s.listActions)
		api.POST("/actions/:name", s.runAction)
		api.POST("/images", s.images)

		api.GET("/recent", s.listRecent)
		api.POST("/recent", s.recordRecent)
		api.DELETE("/recent", s.clearRecent)

		api.POST("/export", s.exportResult)
	}

	router.GET("/tools/:id/head", s.toolHead)
	router.GET("/sitemap.xml", s.sitemap)
	router.GET("/robots.txt", s.robots)
	router.GET("/indexnow", s.indexNowStatus)
	router.POST("/indexnow", s.indexNowSubmit)

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// The IndexNow key file lives at the site root under a configurable name
	router.NoRoute(func(c *gin.Context) {
		if s.IndexNow != nil && c.Request.Method == http.MethodGet && c.Request.URL.Path == s.IndexNow.KeyFile() {
			c.String(http.StatusOK, s.IndexNow.Key())
			return
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}

// ginLogger is a custom logger middleware for Gin
func ginLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		log.Info("HTTP Request",
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Duration("latency", latency),
			zap.String("ip", c.ClientIP()),
		)
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Client-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
