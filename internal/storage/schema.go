package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "tasks.schema.json"

//go:embed tasks.schema.json
var schemaJSON string

//nolint:gochecknoglobals // compiled once on first use
var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaURL)
})

// SchemaIssue is one JSON Schema violation in a task file.
type SchemaIssue struct {
	Path    string
	Message string
}

func (i SchemaIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// ValidateSchema checks a task file against the strict JSON Schema of the
// format Encode writes. It returns an error when the data is not JSON or the
// schema cannot be compiled, and otherwise every violation found.
func ValidateSchema(data []byte) ([]SchemaIssue, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile task schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse task file as JSON: %w", err)
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil, nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}

	var issues []SchemaIssue
	collectSchemaIssues(ve, &issues)
	return issues, nil
}

func collectSchemaIssues(err *jsonschema.ValidationError, issues *[]SchemaIssue) {
	if len(err.Causes) == 0 {
		*issues = append(*issues, SchemaIssue{
			Path:    jsonPointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaIssues(cause, issues)
	}
}

// jsonPointerToPath turns "/0/status" into "[0].status".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}

	var sb strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		if part != "" && strings.Trim(part, "0123456789") == "" {
			sb.WriteString("[" + part + "]")
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(part)
	}
	return sb.String()
}
