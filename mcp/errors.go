package mcp

import (
	"errors"
	"fmt"
)

// RPCError is a JSON-RPC error object returned by the server.
type RPCError struct {
	Code    int64
	Message string
	Data    []byte
}

func (e *RPCError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("mcp rpc error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("mcp rpc error %d", e.Code)
}

// HTTPStatusError is returned by HTTP-based transports when the server returns
// a non-2xx response.
type HTTPStatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("mcp http %s %s: status %d: %s", e.Method, e.URL, e.StatusCode, string(e.Body))
}

// ClientError wraps client-side failures (transport, parsing, lifecycle).
type ClientError struct {
	Op     string // e.g. "initialize", "request", "notify"
	Method string // JSON-RPC method if applicable
	Cause  error
}

func (e *ClientError) Error() string {
	if e == nil {
		return ""
	}
	if e.Method != "" {
		return fmt.Sprintf("mcp %s (%s): %v", e.Op, e.Method, e.Cause)
	}
	return fmt.Sprintf("mcp %s: %v", e.Op, e.Cause)
}

func (e *ClientError) Unwrap() error { return e.Cause }

func IsRPCError(err error) bool {
	var e *RPCError
	return errors.As(err, &e)
}

func IsHTTPStatusError(err error) bool {
	var e *HTTPStatusError
	return errors.As(err, &e)
}

func IsInitError(err error) bool {
	var e *ClientError
	if errors.As(err, &e) {
		return e.Op == "initialize"
	}
	return false
}

func IsAuthError(err error) bool {
	var e *HTTPStatusError
	return errors.As(err, &e) && (e.StatusCode == 401 || e.StatusCode == 403)
}
