package mcpadapt

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/bitop-dev/mcpadapt/mcp"
)

// stubConnection is a scripted Connection. Read counts are atomic because
// resource resolutions run concurrently.
type stubConnection struct {
	tools     []mcp.ToolInfo
	listErr   error
	listCalls int

	callResult *mcp.CallToolResult
	callErr    error
	callCalls  int
	lastTool   string
	lastArgs   json.RawMessage

	readResults map[string]*mcp.ReadResourceResult
	readErr     error
	readCalls   atomic.Int32
}

func (s *stubConnection) ListTools(ctx context.Context) ([]mcp.ToolInfo, error) {
	_ = ctx
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.tools, nil
}

func (s *stubConnection) CallTool(ctx context.Context, name string, args json.RawMessage) (*mcp.CallToolResult, error) {
	_ = ctx
	s.callCalls++
	s.lastTool = name
	s.lastArgs = args
	if s.callErr != nil {
		return nil, s.callErr
	}
	return s.callResult, nil
}

func (s *stubConnection) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	_ = ctx
	s.readCalls.Add(1)
	if s.readErr != nil {
		return nil, s.readErr
	}
	if r, ok := s.readResults[uri]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("no resource %q", uri)
}

func textBlock(text string) mcp.ContentBlock {
	return mcp.ContentBlock{Type: mcp.ContentTypeText, Text: text}
}

func imageBlock(mimeType, data string) mcp.ContentBlock {
	return mcp.ContentBlock{Type: mcp.ContentTypeImage, MimeType: mimeType, Data: data}
}

func resourceRefBlock(uri string) mcp.ContentBlock {
	return mcp.ContentBlock{Type: mcp.ContentTypeResource, Resource: &mcp.ResourceContents{URI: uri}}
}

func inlineResourceBlock(uri, text string) mcp.ContentBlock {
	return mcp.ContentBlock{Type: mcp.ContentTypeResource, Resource: &mcp.ResourceContents{URI: uri, Text: text}}
}
