package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	assistantdomain "github.com/vottam/vottam/internal/assistant/domain"
)

func (s *Server) AnalyzeProduct(c *gin.Context) {
	var req assistantdomain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}
	if strings.TrimSpace(req.Product.FoodName) == "" {
		AbortWithError(c, newValidationError("product", "required", "product is required"))
		return
	}

	analysis, err := s.assistantSvc.Analyze(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

type chatRequest struct {
	Query  string `json:"query"`
	UserID int64  `json:"userId"`
}

func (s *Server) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	resp, err := s.assistantSvc.Chat(c.Request.Context(), req.Query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) PersonalizedChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}

	resp, err := s.assistantSvc.PersonalizedChat(c.Request.Context(), req.Query, req.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
