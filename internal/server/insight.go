package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetBreakdown(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// userId is optional; unknown users fall back to the default context.
	var userID int64
	if raw := strings.TrimSpace(c.Query("userId")); raw != "" {
		userID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			AbortWithError(c, newValidationError("userId", "invalid_id", "userId must be an integer"))
			return
		}
	}

	breakdown, err := s.insightSvc.Breakdown(c.Request.Context(), productID, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

func (s *Server) GetSwap(c *gin.Context) {
	productID, err := parseIDParam(c, "id")
	if err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.swapSvc.FindSwap(c.Request.Context(), productID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if result != nil && s.obsMetrics != nil {
		s.obsMetrics.RecordSwapServed(c.Request.Context(), result.SwapType)
	}

	// A null body means the product is already the best choice.
	c.JSON(http.StatusOK, result)
}

func (s *Server) RecomputeScores(c *gin.Context) {
	if s.scheduler == nil {
		AbortWithError(c, ErrInternal)
		return
	}

	result, err := s.scheduler.RecomputeScores(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
