// Package schemas validates the JSON artifacts this service emits (resume
// records, score reports) against embedded JSON Schemas.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFS embed.FS

const (
	resumeRecordSchema = "resume_record.schema.json"
	scoreReportSchema  = "score_report.schema.json"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateResumeRecord validates a value (typically *types.ResumeRecord or
// its JSON form) against the resume record schema.
func ValidateResumeRecord(v any) error {
	return validateEmbedded(resumeRecordSchema, v)
}

// ValidateScoreReport validates a value against the score report schema.
func ValidateScoreReport(v any) error {
	return validateEmbedded(scoreReportSchema, v)
}

func validateEmbedded(schemaFile string, v any) error {
	schemaContent, err := schemaFS.ReadFile(schemaFile)
	if err != nil {
		return &SchemaLoadError{Path: schemaFile, Message: "embedded schema missing", Cause: err}
	}

	var jsonContent []byte
	switch val := v.(type) {
	case []byte:
		jsonContent = val
	case string:
		jsonContent = []byte(val)
	default:
		jsonContent, err = json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal value for validation: %w", err)
		}
	}

	return ValidateJSONString(string(schemaContent), string(jsonContent))
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    "(string schema)",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
