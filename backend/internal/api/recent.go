package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"aitools/backend/internal/catalog"
)

const (
	clientHeader = "X-Client-ID"
	clientCookie = "aitools_client"

	clientCookieMaxAge = 365 * 24 * 60 * 60
)

// clientID identifies the caller by header, then cookie. A new id is minted
// and handed back in both when neither is present.
func (s *server) clientID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(clientHeader)); id != "" {
		return id
	}
	if id, err := c.Cookie(clientCookie); err == nil && strings.TrimSpace(id) != "" {
		return id
	}

	id := uuid.NewString()
	c.SetCookie(clientCookie, id, clientCookieMaxAge, "/", "", false, true)
	c.Header(clientHeader, id)
	return id
}

func (s *server) listRecent(c *gin.Context) {
	id := s.clientID(c)
	ids, err := s.Recent.List(c.Request.Context(), id)
	if err != nil {
		s.storageFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, s.recentResponse(id, ids))
}

func (s *server) recordRecent(c *gin.Context) {
	var req struct {
		ToolID string `json:"tool_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := s.Catalog.Tool(req.ToolID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Tool not found"})
		return
	}

	id := s.clientID(c)
	ids, err := s.Recent.Record(c.Request.Context(), id, req.ToolID)
	if err != nil {
		s.storageFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, s.recentResponse(id, ids))
}

func (s *server) clearRecent(c *gin.Context) {
	if err := s.Recent.Clear(c.Request.Context(), s.clientID(c)); err != nil {
		s.storageFailed(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// recentResponse resolves ids against the catalog, skipping tools that have since been removed
func (s *server) recentResponse(clientID string, ids []string) gin.H {
	tools := make([]catalog.Tool, 0, len(ids))
	for _, id := range ids {
		if t, ok := s.Catalog.Tool(id); ok {
			tools = append(tools, t)
		}
	}
	return gin.H{
		"client_id": clientID,
		"tools":     tools,
	}
}

func (s *server) storageFailed(c *gin.Context, err error) {
	s.Logger.Error("Recent tools store failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to access recent tools"})
}
