package mcpadapt

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/bitop-dev/mcpadapt/mcp"
)

// classifyBlock maps one text or image block to its normalized fragment.
// It must not be handed resource blocks; those go through resolveResource.
// Any other kind is a contract violation.
func classifyBlock(server, tool string, block mcp.ContentBlock) (Fragment, error) {
	switch block.Type {
	case mcp.ContentTypeText:
		return TextFragment{Text: block.Text}, nil
	case mcp.ContentTypeImage:
		// The base64 payload is passed through unvalidated.
		url := fmt.Sprintf("data:%s;base64,%s", block.MimeType, block.Data)
		return ImageFragment{URL: url}, nil
	default:
		return nil, &InvocationError{
			Server: server,
			Tool:   tool,
			Cause:  fmt.Errorf("unsupported content kind %q", block.Type),
		}
	}
}

// ConvertResult turns a raw tool-call result into a ToolOutput.
//
// Validation is fail-fast: a missing result or missing content list is an
// InvalidResultError; a result with isError set becomes a ToolError whose
// message is the newline-joined text of the content blocks (blocks without
// text contribute nothing) and takes priority over per-block shape checks.
//
// Text and image blocks are classified in order. Resource blocks are
// resolved through conn concurrently; their expansions are flattened back in
// original block order, so completion order never affects the artifact
// sequence. A failed resource read aborts the conversion with the read
// error unchanged.
func ConvertResult(ctx context.Context, server, tool string, result *mcp.CallToolResult, conn ResourceReader) (ToolOutput, error) {
	if result == nil {
		return ToolOutput{}, &InvalidResultError{Server: server, Tool: tool, Reason: "result was undefined"}
	}
	if result.Content == nil {
		return ToolOutput{}, &InvalidResultError{Server: server, Tool: tool, Reason: "result content is not a list"}
	}
	if result.IsError {
		var parts []string
		for _, block := range result.Content {
			if block.Type == mcp.ContentTypeText {
				parts = append(parts, block.Text)
			}
		}
		return ToolOutput{}, &ToolError{Server: server, Tool: tool, Message: strings.Join(parts, "\n")}
	}

	fragments := make([]Fragment, 0, len(result.Content))
	var resources []mcp.ContentBlock
	for _, block := range result.Content {
		if block.Type == mcp.ContentTypeResource {
			resources = append(resources, block)
			continue
		}
		f, err := classifyBlock(server, tool, block)
		if err != nil {
			return ToolOutput{}, err
		}
		fragments = append(fragments, f)
	}

	artifacts, err := resolveAll(ctx, conn, resources)
	if err != nil {
		return ToolOutput{}, err
	}

	// A lone text block collapses to its bare string; everything else keeps
	// the fragment sequence, including the zero-fragment case.
	if len(fragments) == 1 {
		if tf, ok := fragments[0].(TextFragment); ok {
			return ToolOutput{Content: TextContent(tf.Text), Artifacts: artifacts}, nil
		}
	}
	return ToolOutput{Content: FragmentContent(fragments), Artifacts: artifacts}, nil
}

// resolveAll starts every resource resolution at once and awaits them
// jointly. The flattened output preserves original block order.
func resolveAll(ctx context.Context, conn ResourceReader, resources []mcp.ContentBlock) ([]mcp.ContentBlock, error) {
	if len(resources) == 0 {
		return nil, nil
	}
	resolved := make([][]mcp.ContentBlock, len(resources))
	g, gctx := errgroup.WithContext(ctx)
	for i, block := range resources {
		i, block := i, block
		g.Go(func() error {
			blocks, err := resolveResource(gctx, conn, block)
			if err != nil {
				return err
			}
			resolved[i] = blocks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var artifacts []mcp.ContentBlock
	for _, blocks := range resolved {
		artifacts = append(artifacts, blocks...)
	}
	return artifacts, nil
}
