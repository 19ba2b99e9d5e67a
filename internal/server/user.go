package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, newValidationError("request", "invalid_request", "invalid request"))
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		AbortWithError(c, newValidationError("username", "required", "username and password are required"))
		return
	}

	user, err := s.usersvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) ListUsers(c *gin.Context) {
	users, err := s.usersvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
