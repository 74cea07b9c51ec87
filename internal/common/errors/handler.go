// internal/common/errors/handler.go
package errors

import (
	"net/http"
	"time"
)

// ErrorHandler converts application errors into HTTP responses with
// standardized error handling. Persistence errors are logged server-side
// and surfaced to the caller only as a generic message.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Response is the JSON body written for any failed request.
type Response struct {
	Error   string       `json:"error"`
	Code    ErrorCode    `json:"code,omitempty"`
	Details string       `json:"details,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// Render normalizes err and returns the HTTP status and response body to write.
func (h *ErrorHandler) Render(err error) (int, Response) {
	stdErr := h.normalizeError(err)

	switch categoryOf(stdErr) {
	case CategoryValidation:
		return http.StatusBadRequest, Response{
			Error:  "Validation failed",
			Code:   stdErr.Code,
			Fields: stdErr.Fields,
		}
	case CategoryNotFound:
		return http.StatusNotFound, Response{
			Error:   stdErr.Message,
			Code:    stdErr.Code,
			Details: stdErr.Details,
		}
	case CategoryAuth:
		return http.StatusUnauthorized, Response{
			Error: stdErr.Message,
			Code:  stdErr.Code,
		}
	default:
		// Never leak storage internals to the caller.
		h.logger.Error("internal error", map[string]interface{}{
			"code":    stdErr.Code,
			"message": stdErr.Message,
			"details": stdErr.Details,
		})
		return http.StatusInternalServerError, Response{
			Error: "Internal server error",
		}
	}
}

// normalizeError ensures we always have a StandardError.
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Timestamp: time.Now().UTC(),
	}
}
