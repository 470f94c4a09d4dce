// Package validation checks parsed definition documents against embedded
// JSON schemas before they reach the knowledge base, so malformed files fail
// at load time with a precise message instead of surfacing later as wrong
// classifications.
package validation

import (
	"embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed *.json
var schemaFS embed.FS

// ValidationError collects every schema violation found in one document
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Errors[0])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

// ValidateDocument validates parsed YAML/JSON data against an embedded JSON
// schema. schemaName is the schema filename, e.g. "languages-schema.json".
func ValidateDocument(schemaName string, data interface{}) error {
	schemaData, err := schemaFS.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schemaName, err)
	}

	schema, err := jsonschema.CompileString(schemaName, string(schemaData))
	if err != nil {
		return fmt.Errorf("failed to compile schema %s: %w", schemaName, err)
	}

	if err := schema.Validate(data); err != nil {
		var violations []string
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			for _, cause := range validationErr.Causes {
				violations = append(violations, cause.Message)
			}
			if len(violations) == 0 {
				violations = append(violations, validationErr.Message)
			}
		} else {
			violations = append(violations, err.Error())
		}
		return ValidationError{Errors: violations}
	}

	return nil
}
