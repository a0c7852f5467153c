package utils

import (
	"github.com/gin-gonic/gin"
)

// APIError is a standardized error response carrier. Only Message reaches
// the client; the body is always {"error": "<message>"}.
type APIError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"-"` // Application-specific error code, for logs
	Message    string `json:"message"`
}

// NewAPIError creates a new APIError instance.
func NewAPIError(statusCode int, code string, message string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// RespondWithError sends the standardized JSON error body and aborts
// further processing.
func RespondWithError(c *gin.Context, err *APIError) {
	c.AbortWithStatusJSON(err.StatusCode, gin.H{"error": err.Message})
}

// Common error codes.
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeUnauthorized        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInternalServerError = "INTERNAL_SERVER_ERROR"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
)
