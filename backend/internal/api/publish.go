package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"aitools/backend/internal/export"
)

func (s *server) exportResult(c *gin.Context) {
	var req struct {
		Format  string `json:"format"`
		Title   string `json:"title"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := export.Render(export.Format(req.Format), req.Title, req.Content)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func (s *server) indexNowStatus(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, gin.H{
		"status":  "ready",
		"message": "POST to this endpoint with { urls: string[] } to submit to IndexNow.",
		"docs":    "https://www.indexnow.org/",
		"keyFile": s.IndexNow.KeyFile(),
	})
}

func (s *server) indexNowSubmit(c *gin.Context) {
	host := c.GetHeader("X-Forwarded-Host")
	if host == "" {
		host = c.Request.Host
	}
	if host == "" {
		if u, err := url.Parse(s.Site.URL); err == nil {
			host = u.Host
		}
	}
	if host == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Host header missing"})
		return
	}

	// A malformed body is treated as empty
	var req struct {
		URL  string   `json:"url"`
		URLs []string `json:"urls"`
	}
	_ = c.ShouldBindJSON(&req)

	urls := req.URLs
	if len(urls) == 0 && strings.TrimSpace(req.URL) != "" {
		urls = []string{req.URL}
	}
	if len(urls) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide url or urls in request body"})
		return
	}

	result := s.IndexNow.Submit(c.Request.Context(), host, urls)
	if !result.OK {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}
