package mcp

import (
	"context"
	"encoding/json"
)

// Transport sends JSON-RPC requests to an MCP server.
//
// Implementations must be safe for concurrent use unless documented otherwise.
type Transport interface {
	Call(ctx context.Context, req json.RawMessage) (json.RawMessage, error)
	Close() error
}

// notifier is implemented by transports that can carry fire-and-forget
// JSON-RPC notifications (no response expected). Transports without it simply
// don't receive notifications.
type notifier interface {
	Notify(ctx context.Context, msg json.RawMessage) error
}
