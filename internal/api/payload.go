// internal/api/payload.go
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"careers-builder/internal/common/errors"
	"careers-builder/internal/common/validation"
)

// bindPayload decodes the request body into a generic map so the schema
// validator sees exactly what the caller sent, including which fields
// were present.
func bindPayload(c *gin.Context) (map[string]interface{}, bool) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, errors.Response{
			Error: "Invalid JSON body",
		})
		return nil, false
	}
	if body == nil {
		body = map[string]interface{}{}
	}
	return body, true
}

// validatePayload runs the schema and reports failures as a validation
// error. Returns false when the payload must not proceed.
func (s *Server) validatePayload(c *gin.Context, body map[string]interface{}, schema validation.Schema) bool {
	result := validation.ValidateInput(body, schema)
	if result.Valid {
		return true
	}
	s.fail(c, errors.NewValidationError(toFieldErrors(result.Errors)))
	return false
}

func toFieldErrors(verrs []validation.ValidationError) []errors.FieldError {
	fields := make([]errors.FieldError, 0, len(verrs))
	for _, verr := range verrs {
		fields = append(fields, errors.FieldError{
			Field:   verr.Field,
			Message: verr.Message,
			Code:    verr.Code,
		})
	}
	return fields
}

// fieldValidationError builds a single-field validation error, used where
// a value passes the schema shape but fails decoding (e.g. malformed
// embedded JSON).
func fieldValidationError(field, message string) *errors.StandardError {
	return errors.NewValidationError([]errors.FieldError{
		{Field: field, Message: message, Code: "INVALID_VALUE"},
	})
}

// --- generic payload accessors ---

func stringField(body map[string]interface{}, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

// optStringField returns nil for absent or empty values so optional
// columns stay NULL instead of storing empty strings.
func optStringField(body map[string]interface{}, key string) *string {
	v, ok := body[key].(string)
	if !ok || v == "" {
		return nil
	}
	return &v
}

// presentStringField distinguishes "field sent" from "field absent" for
// partial updates. Empty strings count as sent.
func presentStringField(body map[string]interface{}, key string) *string {
	raw, exists := body[key]
	if !exists {
		return nil
	}
	v, ok := raw.(string)
	if !ok {
		return nil
	}
	return &v
}

func optIntField(body map[string]interface{}, key string) *int {
	switch v := body[key].(type) {
	case float64:
		i := int(v)
		return &i
	case int:
		return &v
	default:
		return nil
	}
}

func boolField(body map[string]interface{}, key string, fallback bool) bool {
	if v, ok := body[key].(bool); ok {
		return v
	}
	return fallback
}

func optBoolField(body map[string]interface{}, key string) *bool {
	if v, ok := body[key].(bool); ok {
		return &v
	}
	return nil
}
