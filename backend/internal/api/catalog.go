package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aitools/backend/internal/catalog"
	"aitools/backend/internal/seo"
)

func (s *server) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": s.Catalog.Categories()})
}

func (s *server) listTools(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" || category == catalog.AllCategories {
		c.JSON(http.StatusOK, gin.H{"tools": s.Catalog.Tools()})
		return
	}
	if _, ok := s.Catalog.Category(category); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tools": s.Catalog.ToolsIn(category)})
}

func (s *server) search(c *gin.Context) {
	results := s.Catalog.Search(c.Query("q"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{
		"tools": results,
		"count": len(results),
	})
}

// tool resolves the :id param, answering 404 itself when the tool is unknown
func (s *server) tool(c *gin.Context) (catalog.Tool, bool) {
	t, ok := s.Catalog.Tool(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
		return catalog.Tool{}, false
	}
	return t, true
}

func (s *server) getTool(c *gin.Context) {
	t, ok := s.tool(c)
	if !ok {
		return
	}
	category, _ := s.Catalog.Category(t.Category)
	c.JSON(http.StatusOK, gin.H{
		"tool":     t,
		"category": category,
	})
}

func (s *server) toolFAQs(c *gin.Context) {
	t, ok := s.tool(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"faqs":  s.FAQs.ForTool(t.ID),
		"howTo": s.FAQs.HowTo(t.ID, t.Title),
	})
}

func (s *server) toolSEO(c *gin.Context) {
	t, ok := s.tool(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"metadata": s.Site.ToolMetadata(t),
		"schema":   s.toolSchema(t),
	})
}

func (s *server) toolHead(c *gin.Context) {
	t, ok := s.tool(c)
	if !ok {
		return
	}
	head, err := seo.RenderHead(s.Site.ToolMetadata(t), s.toolSchema(t))
	if err != nil {
		s.Logger.Error("Failed to render head", zap.String("tool", t.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render head"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(head))
}

func (s *server) toolSchema(t catalog.Tool) seo.Graph {
	category, _ := s.Catalog.Category(t.Category)
	return s.Site.ToolSchema(t, category, s.FAQs.ForTool(t.ID), s.FAQs.HowTo(t.ID, t.Title))
}

func (s *server) sitemap(c *gin.Context) {
	data, err := s.Site.Sitemap(s.Catalog, s.Now())
	if err != nil {
		s.Logger.Error("Failed to render sitemap", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render sitemap"})
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", data)
}

func (s *server) robots(c *gin.Context) {
	c.String(http.StatusOK, s.Site.Robots())
}
