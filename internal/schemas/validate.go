// Package schemas provides JSON Schema validation for the engine's output
// contract. Callers that serialize results for other systems can verify the
// emitted JSON against the published schema.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed validation_result.schema.json
var validationResultSchema string

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("result schema validation failed:\n")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// ValidateResultJSON checks serialized ValidationResult JSON against the
// embedded output contract schema. It returns a *ValidationError describing
// every violated field, or nil when the document conforms.
func ValidateResultJSON(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(validationResultSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation could not run: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
