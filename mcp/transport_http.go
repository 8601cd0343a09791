package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitop-dev/mcpadapt/internal/sse"
)

// HTTPTransport talks to a remote MCP server over streamable HTTP: each
// JSON-RPC request is a POST, and the response body is either a JSON message
// or a short SSE stream carrying the response as a data event.
type HTTPTransport struct {
	URL     string
	Headers map[string]string

	// Client defaults to a 60s timeout client when nil.
	Client *http.Client

	mu sync.Mutex

	// sessionID is echoed via the Mcp-Session-Id header once the server
	// assigns one during initialization.
	sessionID string
}

func (t *HTTPTransport) Call(ctx context.Context, req json.RawMessage) (json.RawMessage, error) {
	resp, err := t.post(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if sid := resp.Header.Get("Mcp-Session-Id"); sid != "" {
		t.mu.Lock()
		t.sessionID = sid
		t.mu.Unlock()
	}

	ct := resp.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "text/event-stream") {
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			b, _ := io.ReadAll(resp.Body)
			return nil, &HTTPStatusError{Method: http.MethodPost, URL: t.URL, StatusCode: resp.StatusCode, Body: b}
		}
		return t.readSSEResponse(resp.Body, req)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPStatusError{Method: http.MethodPost, URL: t.URL, StatusCode: resp.StatusCode, Body: body}
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("mcp: empty response body")
	}
	return append(json.RawMessage(nil), body...), nil
}

// Notify posts a fire-and-forget notification. 202 Accepted with an empty
// body is the expected response.
func (t *HTTPTransport) Notify(ctx context.Context, msg json.RawMessage) error {
	resp, err := t.post(ctx, msg)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return &HTTPStatusError{Method: http.MethodPost, URL: t.URL, StatusCode: resp.StatusCode, Body: b}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (t *HTTPTransport) post(ctx context.Context, body json.RawMessage) (*http.Response, error) {
	if t == nil || t.URL == "" {
		return nil, fmt.Errorf("mcp: http transport url is required")
	}
	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	r, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	r.Header.Set("Content-Type", "application/json")
	// Streamable HTTP requires clients advertise both response types.
	r.Header.Set("Accept", "application/json, text/event-stream")

	t.mu.Lock()
	if t.sessionID != "" {
		r.Header.Set("Mcp-Session-Id", t.sessionID)
	}
	t.mu.Unlock()

	for k, v := range t.Headers {
		if v != "" {
			r.Header.Set(k, v)
		}
	}

	return client.Do(r)
}

func (t *HTTPTransport) readSSEResponse(r io.Reader, req json.RawMessage) (json.RawMessage, error) {
	var probe struct {
		ID *int64 `json:"id"`
	}
	_ = json.Unmarshal(req, &probe)

	dec := sse.NewDecoder(r)
	for dec.Next() {
		data := dec.Data()
		if len(data) == 0 {
			continue
		}
		var msg struct {
			ID *int64 `json:"id,omitempty"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if probe.ID != nil && msg.ID != nil && *msg.ID == *probe.ID {
			return append(json.RawMessage(nil), data...), nil
		}
		// Other messages (server requests, notifications) are not handled here.
	}
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("mcp: sse stream ended without response")
}

// Close terminates the server session when one was established. Servers that
// do not support explicit termination answer 405; that is not an error.
func (t *HTTPTransport) Close() error {
	t.mu.Lock()
	sid := t.sessionID
	t.mu.Unlock()
	if sid == "" || t.URL == "" {
		return nil
	}

	client := t.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	r, err := http.NewRequestWithContext(ctx, http.MethodDelete, t.URL, nil)
	if err != nil {
		return nil
	}
	r.Header.Set("Mcp-Session-Id", sid)
	for k, v := range t.Headers {
		if v != "" {
			r.Header.Set(k, v)
		}
	}
	resp, err := client.Do(r)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// SessionID reports the session assigned by the server, if any.
func (t *HTTPTransport) SessionID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sessionID
}
