package validation

// Regex constraints shared by the entity schemas.
var (
	slugPattern     = `^[a-z0-9-]+$`
	hexColorPattern = `^#[0-9A-Fa-f]{6}$`
	urlPattern      = `^https?://\S+$`
	emailPattern    = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

	one  = 1
	zero = float64(0)
)

// WorkTypes and Levels are the allowed job classification values.
var (
	WorkTypes    = []string{"on-site", "remote", "hybrid"}
	Levels       = []string{"entry", "mid", "senior", "lead"}
	SectionTypes = []string{"about", "benefits", "values", "life", "culture", "custom"}
)

// CompanySchema validates a full company payload. URL fields accept an
// empty string; the pattern only applies to non-empty values.
var CompanySchema = Schema{
	Properties: map[string]Property{
		"name":           {Type: "string", MinLength: &one},
		"slug":           {Type: "string", MinLength: &one, Pattern: &slugPattern},
		"description":    {Type: "string"},
		"logoUrl":        {Type: "string", Pattern: &urlPattern, AllowEmpty: true},
		"bannerUrl":      {Type: "string", Pattern: &urlPattern, AllowEmpty: true},
		"primaryColor":   {Type: "string", Pattern: &hexColorPattern},
		"secondaryColor": {Type: "string", Pattern: &hexColorPattern},
		// Accepts a JSON-encoded string or a native array; the section
		// codec settles the ambiguity.
		"sections": {},
	},
	Required: []string{"name", "slug", "primaryColor", "secondaryColor"},
}

// JobSchema validates a full job payload.
var JobSchema = Schema{
	Properties: map[string]Property{
		"title":        {Type: "string", MinLength: &one},
		"location":     {Type: "string", MinLength: &one},
		"department":   {Type: "string"},
		"workType":     {Type: "string", Enum: WorkTypes},
		"level":        {Type: "string", Enum: Levels},
		"salaryMin":    {Type: "integer", Minimum: &zero},
		"salaryMax":    {Type: "integer", Minimum: &zero},
		"currency":     {Type: "string"},
		"description":  {Type: "string", MinLength: &one},
		"requirements": {},
		"tags":         {},
		"isActive":     {Type: "boolean"},
	},
	Required:   []string{"title", "location", "workType", "description"},
	CrossField: []CrossFieldRule{salaryBounds},
}

// ApplicationSchema validates a candidate submission.
var ApplicationSchema = Schema{
	Properties: map[string]Property{
		"jobId":         {Type: "string", MinLength: &one},
		"candidateName": {Type: "string", MinLength: &one},
		"email":         {Type: "string", Pattern: &emailPattern},
		"resumeUrl":     {Type: "string", Pattern: &urlPattern, AllowEmpty: true},
		"coverLetter":   {Type: "string"},
	},
	Required: []string{"jobId", "candidateName", "email"},
}

// SectionSchema validates a single content section record.
var SectionSchema = Schema{
	Properties: map[string]Property{
		"id":       {Type: "string"},
		"type":     {Type: "string", Enum: SectionTypes},
		"title":    {Type: "string", MinLength: &one},
		"content":  {Type: "string"},
		"order":    {Type: "integer"},
		"isActive": {Type: "boolean"},
	},
	Required: []string{"type", "title"},
}

// salaryBounds enforces salaryMin <= salaryMax when both are supplied.
// Runs on partial payloads too, where it only fires if both made it in.
func salaryBounds(input map[string]interface{}) *ValidationError {
	minVal, minOK := toFloat(input["salaryMin"])
	maxVal, maxOK := toFloat(input["salaryMax"])
	if minOK && maxOK && minVal > maxVal {
		return &ValidationError{
			Field:   "salaryMin",
			Message: "minimum salary must be less than or equal to maximum salary",
			Code:    "SALARY_RANGE_INVALID",
		}
	}
	return nil
}
