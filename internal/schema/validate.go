// Package schema wraps JSON-schema compilation and validation for tool
// input schemas.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// EmptyObject is the schema used for tools that declare no input schema.
var EmptyObject = json.RawMessage(`{"type":"object","properties":{}}`)

// Compile compiles a raw JSON schema. Compile errors are construction-time
// failures: a tool with an uncompilable schema cannot be loaded.
func Compile(schemaJSON json.RawMessage) (*jsonschema.Schema, error) {
	if len(schemaJSON) == 0 {
		schemaJSON = EmptyObject
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("schema resource: %w", err)
	}
	s, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return s, nil
}

// Validate checks a raw JSON document against a compiled schema. A nil
// schema accepts everything; empty input is treated as an empty object.
func Validate(s *jsonschema.Schema, raw json.RawMessage) error {
	if s == nil {
		return nil
	}
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	return s.Validate(doc)
}
