package mcpadapt

import (
	"context"
	"encoding/json"

	"github.com/bitop-dev/mcpadapt/mcp"
)

// Connection is the server handle the adapter consumes. *mcp.Client
// satisfies it; tests substitute stubs.
type Connection interface {
	ListTools(ctx context.Context) ([]mcp.ToolInfo, error)
	CallTool(ctx context.Context, name string, args json.RawMessage) (*mcp.CallToolResult, error)
	ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error)
}

// Invoker binds one (server, tool, connection) triple at construction and
// performs remote calls for that tool. It is stateless and reentrant:
// concurrent invocations share no mutable state.
type Invoker struct {
	server string
	tool   string
	conn   Connection
	log    Logger
}

func NewInvoker(server, tool string, conn Connection, log Logger) *Invoker {
	if log == nil {
		log = NopLogger()
	}
	return &Invoker{server: server, tool: tool, conn: conn, log: log}
}

// Invoke performs one remote call and converts its result. Transport
// failures and other untyped errors are wrapped as InvocationError; errors
// already carrying the adapter taxonomy (in particular a ToolError) pass
// through unchanged so they are never double-wrapped.
func (iv *Invoker) Invoke(ctx context.Context, args json.RawMessage) (ToolOutput, error) {
	iv.log.Info("calling tool", "server", iv.server, "tool", iv.tool, "arguments", string(args))

	result, err := iv.conn.CallTool(ctx, iv.tool, args)
	if err != nil {
		iv.log.Error("tool call failed", "server", iv.server, "tool", iv.tool, "error", err)
		if IsToolError(err) {
			return ToolOutput{}, err
		}
		return ToolOutput{}, &InvocationError{Server: iv.server, Tool: iv.tool, Cause: err}
	}

	out, err := ConvertResult(ctx, iv.server, iv.tool, result, iv.conn)
	if err != nil {
		iv.log.Error("tool result conversion failed", "server", iv.server, "tool", iv.tool, "error", err)
		if IsToolError(err) || IsInvalidResult(err) || IsInvocationError(err) {
			return ToolOutput{}, err
		}
		// Resource reads and other plumbing failures.
		return ToolOutput{}, &InvocationError{Server: iv.server, Tool: iv.tool, Cause: err}
	}
	return out, nil
}
