package mcpadapt

import (
	"context"
	"encoding/json"
	"fmt"

	js "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/bitop-dev/mcpadapt/internal/schema"
)

// ResponseFormat selects what a tool's generic handler returns.
type ResponseFormat string

const (
	// ResponseContentAndArtifact returns both the primary content and the
	// resolved resource artifacts.
	ResponseContentAndArtifact ResponseFormat = "content_and_artifact"

	// ResponseContent returns only the primary content; artifacts are
	// dropped.
	ResponseContent ResponseFormat = "content"
)

// InvokeFunc performs one tool invocation with raw JSON arguments.
type InvokeFunc func(ctx context.Context, args json.RawMessage) (ToolOutput, error)

// StructuredToolConfig configures NewStructuredTool. InputSchema may be
// empty; it defaults to an empty-object schema. ResponseFormat zero value
// means ResponseContentAndArtifact.
type StructuredToolConfig struct {
	Name           string
	Description    string
	InputSchema    json.RawMessage
	ResponseFormat ResponseFormat
	Invoke         InvokeFunc
}

// StructuredTool is a locally invocable tool bound to one remote tool on one
// server. The binding is fixed at construction.
type StructuredTool struct {
	name           string
	description    string
	rawSchema      json.RawMessage
	compiled       *js.Schema
	responseFormat ResponseFormat
	invoke         InvokeFunc
}

// NewStructuredTool validates the config, compiles the input schema, and
// returns the tool. A schema that does not compile is a construction error.
func NewStructuredTool(cfg StructuredToolConfig) (*StructuredTool, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("mcpadapt: tool name is required")
	}
	if cfg.Invoke == nil {
		return nil, fmt.Errorf("mcpadapt: tool %q invoke function is required", cfg.Name)
	}
	raw := cfg.InputSchema
	if len(raw) == 0 {
		raw = schema.EmptyObject
	}
	compiled, err := schema.Compile(raw)
	if err != nil {
		return nil, err
	}
	format := cfg.ResponseFormat
	if format == "" {
		format = ResponseContentAndArtifact
	}
	return &StructuredTool{
		name:           cfg.Name,
		description:    cfg.Description,
		rawSchema:      append(json.RawMessage(nil), raw...),
		compiled:       compiled,
		responseFormat: format,
		invoke:         cfg.Invoke,
	}, nil
}

func (t *StructuredTool) Name() string        { return t.name }
func (t *StructuredTool) Description() string { return t.description }

// InputSchema returns the raw JSON schema the tool validates against.
func (t *StructuredTool) InputSchema() json.RawMessage { return t.rawSchema }

func (t *StructuredTool) ResponseFormat() ResponseFormat { return t.responseFormat }

// Invoke validates args against the tool's schema and performs the bound
// invocation. Nil args are treated as an empty object.
func (t *StructuredTool) Invoke(ctx context.Context, args json.RawMessage) (ToolOutput, error) {
	if err := schema.Validate(t.compiled, args); err != nil {
		return ToolOutput{}, &InvalidInputError{Tool: t.name, Cause: err}
	}
	return t.invoke(ctx, args)
}

// ContentAndArtifact pairs the two result parts for handlers that return a
// single value.
type ContentAndArtifact struct {
	Content   Content `json:"content"`
	Artifacts any     `json:"artifacts"`
}

// Handler adapts the tool to the generic raw-JSON handler shape agent
// frameworks expect. Under ResponseContent the handler returns the primary
// content value alone; under ResponseContentAndArtifact it returns a
// ContentAndArtifact pair.
func (t *StructuredTool) Handler() func(ctx context.Context, input json.RawMessage) (any, error) {
	return func(ctx context.Context, input json.RawMessage) (any, error) {
		out, err := t.Invoke(ctx, input)
		if err != nil {
			return nil, err
		}
		if t.responseFormat == ResponseContent {
			return out.Content.Value(), nil
		}
		return ContentAndArtifact{Content: out.Content, Artifacts: out.Artifacts}, nil
	}
}
