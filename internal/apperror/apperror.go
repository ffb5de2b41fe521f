// Package apperror defines the classified errors that cross the HTTP boundary.
package apperror

import (
	"errors"
	"fmt"
	"time"
)

// Code classifies a failure for the caller.
type Code string

const (
	CodeRateLimitExceeded Code = "RATE_LIMIT_EXCEEDED"
	CodeValidation        Code = "VALIDATION_ERROR"
	CodeContentViolation  Code = "CONTENT_VIOLATION"
	CodePayloadTooLarge   Code = "PAYLOAD_TOO_LARGE"
	CodeService           Code = "SERVICE_ERROR"
	CodeGeneration        Code = "GENERATION_ERROR"
	CodeUnauthorized      Code = "UNAUTHORIZED"
	CodePublish           Code = "PUBLISH_ERROR"
)

// Error is a failure classified at its origin. Message is safe to return to
// the caller; the wrapped cause is for logs only.
type Error struct {
	Code      Code
	Message   string
	Details   []string
	ResetTime *time.Time
	cause     error
}

// Error includes the cause with credentials and URLs redacted.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Message, RedactErr(e.cause))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns the internal error, if any.
func (e *Error) Cause() error {
	return e.cause
}

// New creates a classified error with a caller-safe message.
func New(code Code, message string, details ...string) *Error {
	return &Error{Code: code, Message: message, Details: details}
}

// Wrap classifies an internal error. The outward message is derived with
// Sanitize so the cause never reaches the caller.
func Wrap(code Code, cause error) *Error {
	return &Error{Code: code, Message: Sanitize(cause), cause: cause}
}

// PayloadTooLarge is returned when the declared body size exceeds the ceiling.
func PayloadTooLarge() *Error {
	return New(CodePayloadTooLarge, "Request payload too large")
}

// RateLimited is returned when a client exceeded a rate window.
func RateLimited(resetTime time.Time) *Error {
	e := New(CodeRateLimitExceeded, "Rate limit exceeded")
	e.ResetTime = &resetTime
	return e
}

// Validation is returned for schema and bounds failures.
func Validation(details []string) *Error {
	return New(CodeValidation, "Invalid input data", details...)
}

// ContentViolation is returned when submitted text fails moderation.
func ContentViolation(details []string) *Error {
	return New(CodeContentViolation, "Content does not meet community guidelines", details...)
}

// ServiceMisconfigured is returned when a required upstream credential is absent.
func ServiceMisconfigured(cause error) *Error {
	return &Error{Code: CodeService, Message: "Service configuration error", cause: cause}
}

// Unauthorized is returned when the caller could not be authenticated.
func Unauthorized(cause error) *Error {
	return &Error{Code: CodeUnauthorized, Message: "Authentication required", cause: cause}
}

// As extracts a classified error. Unclassified errors are wrapped as
// GENERATION_ERROR with a sanitized message.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(CodeGeneration, err)
}
