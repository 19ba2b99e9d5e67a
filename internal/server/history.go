package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	historydomain "github.com/vottam/vottam/internal/history/domain"
)

const historyLimit = 20

func (s *Server) LogScan(c *gin.Context) {
	var req historydomain.LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	if err := s.historySvc.Log(c.Request.Context(), req); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) GetUserHistory(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	entries, err := s.historySvc.Recent(c.Request.Context(), userID, historyLimit)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) GetUserRecommendations(c *gin.Context) {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	recs, err := s.historySvc.Recommendations(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, recs)
}
