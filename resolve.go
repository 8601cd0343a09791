package mcpadapt

import (
	"context"

	"github.com/bitop-dev/mcpadapt/mcp"
)

// ResourceReader is the slice of the connection the resolver needs.
type ResourceReader interface {
	ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error)
}

// resolveResource turns one resource block into its final artifact blocks.
//
// A block that already carries text or blob content is inline and passes
// through untouched, as does a block with no URI to read from. A
// reference-only block is read back from the server; each returned part
// becomes its own resource block, in response order (a single URI may expand
// to several parts). Read failures propagate unchanged.
func resolveResource(ctx context.Context, conn ResourceReader, block mcp.ContentBlock) ([]mcp.ContentBlock, error) {
	rc := block.Resource
	if rc == nil {
		return []mcp.ContentBlock{block}, nil
	}
	if rc.Text != "" || rc.Blob != "" || rc.URI == "" {
		// Copy so the output shares nothing with the raw result.
		contents := *rc
		out := block
		out.Resource = &contents
		return []mcp.ContentBlock{out}, nil
	}

	result, err := conn.ReadResource(ctx, rc.URI)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	out := make([]mcp.ContentBlock, 0, len(result.Contents))
	for i := range result.Contents {
		contents := result.Contents[i]
		out = append(out, mcp.ContentBlock{Type: mcp.ContentTypeResource, Resource: &contents})
	}
	return out, nil
}
