package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
)

const protocolVersion = "2025-06-18"

// Client talks JSON-RPC to one MCP server over a Transport.
//
// Methods are safe for concurrent use; the client itself holds no per-call
// state beyond the request id counter.
type Client struct {
	transport Transport
	info      ClientInfo
	nextID    atomic.Int64
}

type ClientOptions struct {
	Transport Transport

	// Info identifies this client during the initialize handshake.
	// Zero value gets a default name.
	Info ClientInfo
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.Transport == nil {
		return nil, fmt.Errorf("mcp: transport is required")
	}
	info := opts.Info
	if info.Name == "" {
		info.Name = "mcpadapt"
	}
	c := &Client{transport: opts.Transport, info: info}
	c.nextID.Store(1)
	return c, nil
}

func (c *Client) Close() error {
	if c == nil || c.transport == nil {
		return nil
	}
	return c.transport.Close()
}

// Initialize performs the MCP handshake. The initialized notification is sent
// on a best-effort basis: transports that cannot carry notifications skip it.
func (c *Client) Initialize(ctx context.Context) (*InitializeResult, error) {
	var result InitializeResult
	params := initializeParams{
		ProtocolVersion: protocolVersion,
		Capabilities:    map[string]any{},
		ClientInfo:      c.info,
	}
	if err := c.rpc(ctx, "initialize", params, &result); err != nil {
		return nil, &ClientError{Op: "initialize", Cause: err}
	}
	if err := c.notify(ctx, "notifications/initialized"); err != nil {
		return nil, &ClientError{Op: "initialize", Method: "notifications/initialized", Cause: err}
	}
	return &result, nil
}

// ListTools fetches the server's current tool catalog. No caching: every call
// is a fresh tools/list round trip.
func (c *Client) ListTools(ctx context.Context) ([]ToolInfo, error) {
	var result toolListResult
	if err := c.rpc(ctx, "tools/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// CallTool invokes one tool by name. args must be a JSON object (or nil for
// tools without arguments). Transport and RPC failures are returned as
// errors; a tool-reported failure comes back as a result with IsError set.
func (c *Client) CallTool(ctx context.Context, name string, args json.RawMessage) (*CallToolResult, error) {
	var result CallToolResult
	params := callToolParams{Name: name, Arguments: args}
	if err := c.rpc(ctx, "tools/call", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ReadResource reads the full contents behind a resource URI.
func (c *Client) ReadResource(ctx context.Context, uri string) (*ReadResourceResult, error) {
	var result ReadResourceResult
	if err := c.rpc(ctx, "resources/read", ReadResourceParams{URI: uri}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListResources lists the resources the server advertises.
func (c *Client) ListResources(ctx context.Context) ([]ResourceInfo, error) {
	var result ResourcesListResult
	if err := c.rpc(ctx, "resources/list", nil, &result); err != nil {
		return nil, err
	}
	return result.Resources, nil
}

func (c *Client) rpc(ctx context.Context, method string, params any, out any) error {
	if c == nil || c.transport == nil {
		return fmt.Errorf("mcp: client is nil")
	}
	id := c.nextID.Add(1)
	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      &id,
		Method:  method,
		Params:  params,
	}
	b, err := json.Marshal(req)
	if err != nil {
		return &ClientError{Op: "request", Method: method, Cause: err}
	}
	rawResp, err := c.transport.Call(ctx, b)
	if err != nil {
		return err
	}
	var resp rpcResponse
	if err := json.Unmarshal(rawResp, &resp); err != nil {
		return &ClientError{Op: "request", Method: method, Cause: err}
	}
	if resp.Error != nil {
		return &RPCError{Code: resp.Error.Code, Message: resp.Error.Message, Data: resp.Error.Data}
	}
	if out == nil {
		return nil
	}
	if len(resp.Result) == 0 {
		return &ClientError{Op: "request", Method: method, Cause: fmt.Errorf("empty result")}
	}
	if err := json.Unmarshal(resp.Result, out); err != nil {
		return &ClientError{Op: "request", Method: method, Cause: err}
	}
	return nil
}

func (c *Client) notify(ctx context.Context, method string) error {
	n, ok := c.transport.(notifier)
	if !ok {
		return nil
	}
	msg, err := json.Marshal(rpcRequest{JSONRPC: "2.0", Method: method})
	if err != nil {
		return err
	}
	return n.Notify(ctx, msg)
}
