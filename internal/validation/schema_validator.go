package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Schema is a compiled JSON schema that also accepts YAML documents
type Schema struct {
	name   string
	schema *jsonschema.Schema
}

// Compile parses and compiles a JSON schema document registered under name
func Compile(name string, schemaJSON []byte) (*Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	return &Schema{name: name, schema: compiled}, nil
}

// MustCompile is Compile for schemas embedded in the binary
func MustCompile(name string, schemaJSON []byte) *Schema {
	s, err := Compile(name, schemaJSON)
	if err != nil {
		panic(err)
	}
	return s
}

// ValidateJSON validates a JSON document
func (s *Schema) ValidateJSON(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}
	return s.validate(doc)
}

// ValidateYAML validates a YAML document. It is normalised through JSON so
// numbers and timestamps take the shapes the schema describes.
func (s *Schema) ValidateYAML(data []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse YAML data: %w", err)
	}
	if raw == nil {
		raw = map[string]interface{}{}
	}
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("YAML document is not JSON compatible: %w", err)
	}
	return s.ValidateJSON(asJSON)
}

func (s *Schema) validate(doc interface{}) error {
	if err := s.schema.Validate(doc); err != nil {
		return formatValidationError(s.name, err)
	}
	return nil
}

// formatValidationError lists every failing location in one error
func formatValidationError(name string, err error) error {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return fmt.Errorf("validation error: %w", err)
	}
	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("%s: schema validation failed:\n%s", name, strings.Join(lines, "\n"))
}

// collectErrors walks the cause tree; only leaves name a concrete problem
func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "/" + strings.Join(err.InstanceLocation, "/")

	keyword := ""
	if err.ErrorKind != nil {
		keyword = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keyword == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keyword)
}
