package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Entity Schema Tests
// ==========================

func validCompanyInput() map[string]interface{} {
	return map[string]interface{}{
		"name":           "ACME Corporation",
		"slug":           "acme",
		"primaryColor":   "#3b82f6",
		"secondaryColor": "#1e40af",
	}
}

func validJobInput() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Senior Software Engineer",
		"location":    "San Francisco, CA",
		"workType":    "hybrid",
		"description": "Design and build the core platform.",
	}
}

func TestCompanySchema(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(input map[string]interface{})
		wantValid bool
		wantField string
	}{
		{
			name:      "minimal valid payload",
			mutate:    func(map[string]interface{}) {},
			wantValid: true,
		},
		{
			name:      "missing name",
			mutate:    func(input map[string]interface{}) { delete(input, "name") },
			wantValid: false,
			wantField: "name",
		},
		{
			name:      "empty required string counts as missing",
			mutate:    func(input map[string]interface{}) { input["slug"] = "" },
			wantValid: false,
			wantField: "slug",
		},
		{
			name:      "uppercase slug rejected",
			mutate:    func(input map[string]interface{}) { input["slug"] = "Acme" },
			wantValid: false,
			wantField: "slug",
		},
		{
			name:      "slug with spaces rejected",
			mutate:    func(input map[string]interface{}) { input["slug"] = "acme corp" },
			wantValid: false,
			wantField: "slug",
		},
		{
			name:      "three digit hex color rejected",
			mutate:    func(input map[string]interface{}) { input["primaryColor"] = "#fff" },
			wantValid: false,
			wantField: "primaryColor",
		},
		{
			name:      "hex color without hash rejected",
			mutate:    func(input map[string]interface{}) { input["secondaryColor"] = "1e40af" },
			wantValid: false,
			wantField: "secondaryColor",
		},
		{
			name:      "logo url must be http or https",
			mutate:    func(input map[string]interface{}) { input["logoUrl"] = "ftp://example.com/logo.png" },
			wantValid: false,
			wantField: "logoUrl",
		},
		{
			name:      "empty optional url passes",
			mutate:    func(input map[string]interface{}) { input["logoUrl"] = "" },
			wantValid: true,
		},
		{
			name: "sections accepts a native array",
			mutate: func(input map[string]interface{}) {
				input["sections"] = []interface{}{
					map[string]interface{}{"type": "about", "title": "About"},
				}
			},
			wantValid: true,
		},
		{
			name:      "sections accepts JSON text",
			mutate:    func(input map[string]interface{}) { input["sections"] = `[{"type":"about","title":"About"}]` },
			wantValid: true,
		},
		{
			name:      "unknown field rejected",
			mutate:    func(input map[string]interface{}) { input["favoriteColor"] = "blue" },
			wantValid: false,
			wantField: "favoriteColor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCompanyInput()
			tt.mutate(input)

			result := ValidateInput(input, CompanySchema)

			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Errors)
				found := false
				for _, verr := range result.Errors {
					if verr.Field == tt.wantField {
						found = true
					}
				}
				assert.True(t, found, "expected an error on field %q, got %v", tt.wantField, result.Errors)
			}
		})
	}
}

func TestJobSchema(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(input map[string]interface{})
		wantValid bool
		wantField string
	}{
		{
			name:      "minimal valid payload",
			mutate:    func(map[string]interface{}) {},
			wantValid: true,
		},
		{
			name:      "invalid work type",
			mutate:    func(input map[string]interface{}) { input["workType"] = "freelance" },
			wantValid: false,
			wantField: "workType",
		},
		{
			name:      "invalid level",
			mutate:    func(input map[string]interface{}) { input["level"] = "principal" },
			wantValid: false,
			wantField: "level",
		},
		{
			name: "valid salary range",
			mutate: func(input map[string]interface{}) {
				input["salaryMin"] = float64(80000)
				input["salaryMax"] = float64(120000)
			},
			wantValid: true,
		},
		{
			name: "equal salary bounds pass",
			mutate: func(input map[string]interface{}) {
				input["salaryMin"] = float64(90000)
				input["salaryMax"] = float64(90000)
			},
			wantValid: true,
		},
		{
			name: "inverted salary range rejected",
			mutate: func(input map[string]interface{}) {
				input["salaryMin"] = float64(120000)
				input["salaryMax"] = float64(80000)
			},
			wantValid: false,
			wantField: "salaryMin",
		},
		{
			name:      "salaryMin alone passes",
			mutate:    func(input map[string]interface{}) { input["salaryMin"] = float64(80000) },
			wantValid: true,
		},
		{
			name:      "zero salaryMin with absent max passes",
			mutate:    func(input map[string]interface{}) { input["salaryMin"] = float64(0) },
			wantValid: true,
		},
		{
			name: "zero salaryMin against set max passes",
			mutate: func(input map[string]interface{}) {
				input["salaryMin"] = float64(0)
				input["salaryMax"] = float64(50000)
			},
			wantValid: true,
		},
		{
			name:      "negative salary rejected",
			mutate:    func(input map[string]interface{}) { input["salaryMin"] = float64(-1) },
			wantValid: false,
			wantField: "salaryMin",
		},
		{
			name:      "fractional salary rejected",
			mutate:    func(input map[string]interface{}) { input["salaryMax"] = 85000.5 },
			wantValid: false,
			wantField: "salaryMax",
		},
		{
			name:      "isActive must be boolean",
			mutate:    func(input map[string]interface{}) { input["isActive"] = "yes" },
			wantValid: false,
			wantField: "isActive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validJobInput()
			tt.mutate(input)

			result := ValidateInput(input, JobSchema)

			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				found := false
				for _, verr := range result.Errors {
					if verr.Field == tt.wantField {
						found = true
					}
				}
				assert.True(t, found, "expected an error on field %q, got %v", tt.wantField, result.Errors)
			}
		})
	}
}

func TestCompanySchema_PartialRejectsEmptyColor(t *testing.T) {
	partial := CompanySchema.Partial()

	// Colors have no empty-means-unset meaning, so "" must still match
	// the hex pattern even when the field is no longer required.
	result := ValidateInput(map[string]interface{}{"primaryColor": ""}, partial)
	assert.False(t, result.Valid)
	found := false
	for _, verr := range result.Errors {
		if verr.Field == "primaryColor" {
			found = true
		}
	}
	assert.True(t, found, "expected an error on primaryColor, got %v", result.Errors)

	// URLs do: an empty string clears the field.
	result = ValidateInput(map[string]interface{}{"logoUrl": ""}, partial)
	assert.True(t, result.Valid)
}

func TestJobSchema_PartialKeepsCrossField(t *testing.T) {
	partial := JobSchema.Partial()

	// A PATCH supplying only one bound cannot violate the range rule.
	result := ValidateInput(map[string]interface{}{"salaryMax": float64(50000)}, partial)
	assert.True(t, result.Valid)

	// Supplying both inverted still fails, even without required fields.
	result = ValidateInput(map[string]interface{}{
		"salaryMin": float64(90000),
		"salaryMax": float64(60000),
	}, partial)
	assert.False(t, result.Valid)
	assert.Equal(t, "SALARY_RANGE_INVALID", result.Errors[0].Code)
}

func TestApplicationSchema(t *testing.T) {
	valid := map[string]interface{}{
		"jobId":         "job-1",
		"candidateName": "Jane Doe",
		"email":         "jane@example.com",
	}

	result := ValidateInput(valid, ApplicationSchema)
	assert.True(t, result.Valid)

	badEmails := []string{"not-an-email", "jane@", "@example.com", "jane doe@example.com", "jane@example"}
	for _, email := range badEmails {
		input := map[string]interface{}{
			"jobId":         "job-1",
			"candidateName": "Jane Doe",
			"email":         email,
		}
		result := ValidateInput(input, ApplicationSchema)
		assert.False(t, result.Valid, "email %q should be rejected", email)
	}

	withOptional := map[string]interface{}{
		"jobId":         "job-1",
		"candidateName": "Jane Doe",
		"email":         "jane@example.com",
		"resumeUrl":     "https://example.com/resume.pdf",
		"coverLetter":   "Hello!",
	}
	result = ValidateInput(withOptional, ApplicationSchema)
	assert.True(t, result.Valid)
}

func TestSectionSchema(t *testing.T) {
	result := ValidateInput(map[string]interface{}{
		"type":  "about",
		"title": "About Us",
	}, SectionSchema)
	assert.True(t, result.Valid)

	result = ValidateInput(map[string]interface{}{
		"type":  "testimonials",
		"title": "What People Say",
	}, SectionSchema)
	assert.False(t, result.Valid)

	result = ValidateInput(map[string]interface{}{
		"type": "about",
	}, SectionSchema)
	assert.False(t, result.Valid)
}

// ==========================
// Generic Schema Behavior
// ==========================

func TestValidateInput_TypeChecks(t *testing.T) {
	schema := Schema{
		Properties: map[string]Property{
			"count":   {Type: "integer"},
			"ratio":   {Type: "number"},
			"label":   {Type: "string"},
			"enabled": {Type: "boolean"},
			"items":   {Type: "array"},
		},
	}

	result := ValidateInput(map[string]interface{}{
		"count":   float64(3), // what encoding/json produces
		"ratio":   0.5,
		"label":   "ok",
		"enabled": true,
		"items":   []interface{}{"a"},
	}, schema)
	assert.True(t, result.Valid)

	result = ValidateInput(map[string]interface{}{"count": 2.5}, schema)
	assert.False(t, result.Valid)

	result = ValidateInput(map[string]interface{}{"label": 42}, schema)
	assert.False(t, result.Valid)

	// Explicit null on an optional field is ignored.
	result = ValidateInput(map[string]interface{}{"label": nil}, schema)
	assert.True(t, result.Valid)
}
