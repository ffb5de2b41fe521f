package apperror

import "strings"

const (
	msgServiceUnavailable = "External service temporarily unavailable"
	msgGenerationFailed   = "Content generation failed"
	msgGeneric            = "An error occurred while processing your request"
)

// Sanitize maps an internal error to a fixed outward message. Upstream
// response bodies, credentials and stack traces are never part of the result.
func Sanitize(err error) string {
	if err == nil {
		return msgGeneric
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API"):
		return msgServiceUnavailable
	case strings.Contains(msg, "parse"), strings.Contains(msg, "JSON"):
		return msgGenerationFailed
	default:
		return msgGeneric
	}
}
