package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Schema describes the expected shape of an inbound entity payload.
type Schema struct {
	Properties           map[string]Property
	Required             []string
	AdditionalProperties bool
	// CrossField rules run after per-field checks, only when every
	// per-field check passed. Used for rules spanning fields, like
	// salaryMin <= salaryMax.
	CrossField []CrossFieldRule
}

// Property constrains a single field.
type Property struct {
	Type      string // "string", "integer", "number", "boolean", "array"
	Enum      []string
	Pattern   *string
	MinLength *int
	MaxLength *int
	Minimum   *float64
	Maximum   *float64
	// AllowEmpty exempts an explicit empty string from Pattern, for
	// optional fields where "" means "unset" (clearing a URL).
	AllowEmpty bool
}

// CrossFieldRule validates a relationship between fields. It returns nil
// when the rule holds.
type CrossFieldRule func(input map[string]interface{}) *ValidationError

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Partial returns a copy of the schema with no required fields, used to
// validate PATCH payloads where only the supplied subset is checked.
func (s Schema) Partial() Schema {
	return Schema{
		Properties:           s.Properties,
		Required:             nil,
		AdditionalProperties: s.AdditionalProperties,
		CrossField:           s.CrossField,
	}
}

// ValidateInput validates input against the schema with detailed errors.
func ValidateInput(input map[string]interface{}, schema Schema) *ValidationResult {
	errors := []ValidationError{}

	// Check required fields. An explicit empty string counts as missing
	// for required string fields (form semantics).
	for _, requiredField := range schema.Required {
		value, exists := input[requiredField]
		if !exists || value == nil {
			errors = append(errors, ValidationError{
				Field:   requiredField,
				Message: "required field missing",
				Code:    "REQUIRED_FIELD_MISSING",
			})
			continue
		}
		if str, ok := value.(string); ok && str == "" {
			errors = append(errors, ValidationError{
				Field:   requiredField,
				Message: "required field must not be empty",
				Code:    "REQUIRED_FIELD_EMPTY",
			})
		}
	}

	// Validate field types and constraints
	for fieldName, value := range input {
		prop, exists := schema.Properties[fieldName]
		if !exists {
			if !schema.AdditionalProperties {
				errors = append(errors, ValidationError{
					Field:   fieldName,
					Message: "field not allowed in schema",
					Code:    "EXTRA_FIELD",
				})
			}
			continue
		}
		if value == nil {
			continue
		}
		if fieldErrors := validateField(fieldName, value, prop); len(fieldErrors) > 0 {
			errors = append(errors, fieldErrors...)
		}
	}

	if len(errors) == 0 {
		for _, rule := range schema.CrossField {
			if verr := rule(input); verr != nil {
				errors = append(errors, *verr)
			}
		}
	}

	return &ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}

func validateField(fieldName string, value interface{}, prop Property) []ValidationError {
	errors := []ValidationError{}

	// Type validation
	if typeErr := validateType(value, prop.Type); typeErr != nil {
		errors = append(errors, ValidationError{
			Field:   fieldName,
			Message: typeErr.Error(),
			Code:    "INVALID_TYPE",
		})
		return errors // Return early if type is wrong
	}

	// String validations
	if strVal, ok := value.(string); ok {
		if prop.MinLength != nil && len(strVal) < *prop.MinLength {
			errors = append(errors, ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("value must be at least %d characters", *prop.MinLength),
				Code:    "MIN_LENGTH_VIOLATION",
			})
		}
		if prop.MaxLength != nil && len(strVal) > *prop.MaxLength {
			errors = append(errors, ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("value must be at most %d characters", *prop.MaxLength),
				Code:    "MAX_LENGTH_VIOLATION",
			})
		}

		if prop.Pattern != nil && (strVal != "" || !prop.AllowEmpty) {
			matched, err := regexp.MatchString(*prop.Pattern, strVal)
			if err != nil || !matched {
				errors = append(errors, ValidationError{
					Field:   fieldName,
					Message: fmt.Sprintf("value must match pattern %s", *prop.Pattern),
					Code:    "PATTERN_MISMATCH",
				})
			}
		}

		if len(prop.Enum) > 0 {
			found := false
			for _, allowed := range prop.Enum {
				if strVal == allowed {
					found = true
					break
				}
			}
			if !found {
				errors = append(errors, ValidationError{
					Field:   fieldName,
					Message: fmt.Sprintf("value must be one of: %s", strings.Join(prop.Enum, ", ")),
					Code:    "ENUM_VIOLATION",
				})
			}
		}
	}

	// Numeric validations
	if numVal, ok := toFloat(value); ok {
		if prop.Minimum != nil && numVal < *prop.Minimum {
			errors = append(errors, ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("value must be at least %v", *prop.Minimum),
				Code:    "MINIMUM_VIOLATION",
			})
		}
		if prop.Maximum != nil && numVal > *prop.Maximum {
			errors = append(errors, ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("value must be at most %v", *prop.Maximum),
				Code:    "MAXIMUM_VIOLATION",
			})
		}
	}

	return errors
}

func validateType(value interface{}, expectedType string) error {
	switch expectedType {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
	case "integer":
		num, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("expected integer, got %T", value)
		}
		if num != float64(int64(num)) {
			return fmt.Errorf("expected integer, got fractional number")
		}
	case "number":
		if _, ok := toFloat(value); !ok {
			return fmt.Errorf("expected number, got %T", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean, got %T", value)
		}
	case "array":
		switch value.(type) {
		case []interface{}, []string:
		default:
			return fmt.Errorf("expected array, got %T", value)
		}
	case "":
		// untyped: anything goes
	default:
		return fmt.Errorf("unknown schema type %q", expectedType)
	}
	return nil
}

// toFloat normalizes the numeric types encoding/json produces plus the
// native ints used by in-process callers.
func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
