package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	assistantdomain "github.com/vottam/vottam/internal/assistant/domain"
	catalogdomain "github.com/vottam/vottam/internal/catalog/domain"
	historydomain "github.com/vottam/vottam/internal/history/domain"
	insightdomain "github.com/vottam/vottam/internal/insight/domain"
	swapdomain "github.com/vottam/vottam/internal/swap/domain"
	userdomain "github.com/vottam/vottam/internal/user/domain"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case isValidationError(err):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{Field: "request", Code: err.Error(), Message: "invalid value"},
			},
		}
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, userdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthorized",
			Message: "unauthorized",
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, catalogdomain.ErrInvalidCategory),
		errors.Is(err, catalogdomain.ErrInvalidPrice),
		errors.Is(err, historydomain.ErrInvalidUser),
		errors.Is(err, historydomain.ErrInvalidAction),
		errors.Is(err, assistantdomain.ErrInvalidQuery):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, insightdomain.ErrNotFound),
		errors.Is(err, swapdomain.ErrNotFound),
		errors.Is(err, userdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

// classifyErrorForLog maps an error to (type, code) fields for the
// request log without leaking internals into the response path.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	if vErr := asValidationErrors(err); vErr != nil && len(vErr.Errors) > 0 {
		return "validation_error", vErr.Errors[0].Code
	}
	switch {
	case isValidationError(err):
		return "validation_error", err.Error()
	case errors.Is(err, ErrUnauthorized), errors.Is(err, userdomain.ErrInvalidCredentials):
		return "unauthorized", "unauthorized"
	case isNotFoundError(err):
		return "not_found", "not_found"
	default:
		return "internal_error", "internal_error"
	}
}
