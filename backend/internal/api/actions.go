package api

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aitools/backend/internal/actions"
	apperrors "aitools/backend/pkg/errors"
)

func (s *server) listActions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"actions": s.Dispatcher.Actions()})
}

func (s *server) runAction(c *gin.Context) {
	var req struct {
		Params map[string]any `json:"params"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	env, err := s.Dispatcher.Dispatch(c.Request.Context(), c.Param("name"), req.Params)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	s.respond(c, env)
}

func (s *server) generate(c *gin.Context) {
	t, ok := s.tool(c)
	if !ok {
		return
	}

	var req struct {
		Input string `json:"input"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	env, err := s.Dispatcher.Generate(ctx, t.ID, req.Input)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	if s.Recent != nil {
		if _, err := s.Recent.Record(ctx, s.clientID(c), t.ID); err != nil {
			s.Logger.Warn("Failed to record recent tool", zap.String("tool", t.ID), zap.Error(err))
		}
	}
	s.respond(c, env)
}

// images runs the image action, or the logo preset with ?preset=logo. The body is the param object itself.
func (s *server) images(c *gin.Context) {
	var params map[string]any
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := "image"
	if c.Query("preset") == "logo" {
		name = "logo-image"
	}

	env, err := s.Dispatcher.Dispatch(c.Request.Context(), name, params)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	s.respond(c, env)
}

// respond writes an envelope. A failed envelope is a provider failure.
func (s *server) respond(c *gin.Context, env actions.Envelope[any]) {
	if !env.Success {
		c.JSON(http.StatusBadGateway, env)
		return
	}
	c.JSON(http.StatusOK, env)
}

// abortWithError maps a caller-side error onto a status code
func (s *server) abortWithError(c *gin.Context, err error) {
	var (
		unknownAction *apperrors.ErrUnknownAction
		toolNotFound  *apperrors.ErrToolNotFound
	)
	switch {
	case stderrors.As(err, &unknownAction), stderrors.As(err, &toolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": apperrors.Message(err)})
	case apperrors.IsInputError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": apperrors.Message(err)})
	default:
		s.Logger.Error("Request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
