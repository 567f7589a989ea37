// Package response defines consistent HTTP response structures.
// All API responses should use these types for consistency.
package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"inkpress/src/core/domain"
	"inkpress/src/core/usecase"
)

// Success represents a successful response with data.
type Success struct {
	Data any `json:"data"`
}

// Error represents an error response.
type Error struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR")
	Code string `json:"code"`

	// Message is a human-readable error description
	Message string `json:"message"`

	// Field is the field that caused the error (for validation errors)
	Field string `json:"field,omitempty"`

	// Fields holds every failing field and its message
	Fields map[string]string `json:"fields,omitempty"`

	// RequestID is the request ID for debugging
	RequestID string `json:"request_id,omitempty"`
}

// FlatError is the body of the AI endpoints: {"error": message, "code": code}.
type FlatError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Success{Data: data})
}

// BadRequest sends a 400 response for payloads that could not be decoded.
func BadRequest(c *gin.Context, message string, requestID string) {
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      domain.KindValidation.Code(),
			Message:   message,
			RequestID: requestID,
		},
	})
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message, requestID string) {
	c.JSON(http.StatusNotFound, Error{
		Error: ErrorDetail{
			Code:      domain.KindNotFound.Code(),
			Message:   message,
			RequestID: requestID,
		},
	})
}

// InternalError sends a 500 response.
func InternalError(c *gin.Context, requestID string) {
	c.JSON(http.StatusInternalServerError, Error{
		Error: ErrorDetail{
			Code:      domain.KindInternal.Code(),
			Message:   "An unexpected error occurred. Please try again later.",
			RequestID: requestID,
		},
	})
}

// ValidationFailed sends the 400 envelope listing every failing field.
func ValidationFailed(c *gin.Context, errs map[string]string, requestID string) {
	v := domain.FormatValidationErrors(errs)
	c.JSON(http.StatusBadRequest, Error{
		Error: ErrorDetail{
			Code:      v.Code,
			Message:   v.Message,
			Fields:    v.Errors,
			RequestID: requestID,
		},
	})
}

// FromError classifies err with domain.HandleError and writes the envelope
// with the matching status.
func FromError(c *gin.Context, log *slog.Logger, err error, requestID string) {
	info := domain.HandleError(log, err)
	c.JSON(info.Status, Error{
		Error: ErrorDetail{
			Code:      info.Code,
			Message:   info.Message,
			Field:     info.Field,
			RequestID: requestID,
		},
	})
}

// Flat writes err as {"error", "code"} with the matching status.
func Flat(c *gin.Context, log *slog.Logger, err error) {
	info := domain.HandleError(log, err)
	c.JSON(info.Status, FlatError{Error: info.Message, Code: info.Code})
}

// Action writes an action result as the body, with its status.
func Action[T any](c *gin.Context, res usecase.ActionResult[T]) {
	status := res.Status
	if status == 0 {
		status = http.StatusOK
		if !res.Success {
			status = http.StatusInternalServerError
		}
	}
	c.JSON(status, res)
}
