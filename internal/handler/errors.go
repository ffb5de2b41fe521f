package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"article-generator/internal/apperror"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error     string   `json:"error"`
	Code      string   `json:"code"`
	Details   []string `json:"details,omitempty"`
	ResetTime string   `json:"resetTime,omitempty"`
}

var statusByCode = map[apperror.Code]int{
	apperror.CodePayloadTooLarge:   http.StatusRequestEntityTooLarge,
	apperror.CodeRateLimitExceeded: http.StatusTooManyRequests,
	apperror.CodeValidation:        http.StatusBadRequest,
	apperror.CodeContentViolation:  http.StatusBadRequest,
	apperror.CodeUnauthorized:      http.StatusUnauthorized,
	apperror.CodePublish:           http.StatusBadGateway,
	apperror.CodeService:           http.StatusInternalServerError,
	apperror.CodeGeneration:        http.StatusInternalServerError,
}

// StatusFor returns the HTTP status for an error code.
func StatusFor(code apperror.Code) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError classifies err and writes the JSON error body. Unclassified
// errors leave as GENERATION_ERROR with a sanitized message.
func writeError(c *gin.Context, err error) {
	appErr := apperror.As(err)

	resp := ErrorResponse{
		Error:   appErr.Message,
		Code:    string(appErr.Code),
		Details: appErr.Details,
	}
	if appErr.ResetTime != nil {
		resp.ResetTime = appErr.ResetTime.UTC().Format(TimeFormat)
	}
	if appErr.Code == apperror.CodeRateLimitExceeded {
		c.Header("Retry-After", RetryAfterSeconds)
	}

	c.JSON(StatusFor(appErr.Code), resp)
}
