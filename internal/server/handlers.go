package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MatchRequest mirrors the body posted by the client.
type MatchRequest struct {
	Resume  string `json:"resume" binding:"required"`
	JobDesc string `json:"job_desc" binding:"required"`
}

// MatchResponse carries the reviewer's narrative in the legacy result field.
type MatchResponse struct {
	Result string `json:"result"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) match(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "resume and job_desc are required"})
		return
	}

	if s.matcher == nil {
		c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "analyzer is not configured"})
		return
	}

	text, err := s.matcher.Match(c.Request.Context(), req.Resume, req.JobDesc)
	if err != nil {
		s.logger.Warn("match failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, errorResponse{Error: "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, MatchResponse{Result: text})
}
