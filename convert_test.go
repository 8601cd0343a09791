package mcpadapt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bitop-dev/mcpadapt/mcp"
)

func TestConvertResult_SingleTextCollapsesToString(t *testing.T) {
	conn := &stubConnection{}
	result := &mcp.CallToolResult{Content: []mcp.ContentBlock{textBlock("5")}}

	out, err := ConvertResult(context.Background(), "srv", "calc", result, conn)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Content.IsText() {
		t.Fatalf("expected bare string content, got fragments %v", out.Content.Fragments())
	}
	if out.Content.Text() != "5" {
		t.Fatalf("text=%q", out.Content.Text())
	}
	if len(out.Artifacts) != 0 {
		t.Fatalf("artifacts=%d", len(out.Artifacts))
	}
}

func TestConvertResult_MultipleBlocksStayWrapped(t *testing.T) {
	conn := &stubConnection{}
	result := &mcp.CallToolResult{Content: []mcp.ContentBlock{
		textBlock("caption"),
		imageBlock("image/png", "QQ=="),
	}}

	out, err := ConvertResult(context.Background(), "srv", "render", result, conn)
	if err != nil {
		t.Fatal(err)
	}
	if out.Content.IsText() {
		t.Fatalf("expected fragment sequence, got bare string %q", out.Content.Text())
	}
	frags := out.Content.Fragments()
	if len(frags) != 2 {
		t.Fatalf("fragments=%d", len(frags))
	}
	if tf, ok := frags[0].(TextFragment); !ok || tf.Text != "caption" {
		t.Fatalf("fragment 0 = %#v", frags[0])
	}
	img, ok := frags[1].(ImageFragment)
	if !ok {
		t.Fatalf("fragment 1 = %#v", frags[1])
	}
	if img.URL != "data:image/png;base64,QQ==" {
		t.Fatalf("url=%q", img.URL)
	}
}

func TestConvertResult_ZeroBlocks(t *testing.T) {
	conn := &stubConnection{}
	result := &mcp.CallToolResult{Content: []mcp.ContentBlock{}}

	out, err := ConvertResult(context.Background(), "srv", "noop", result, conn)
	if err != nil {
		t.Fatal(err)
	}
	if out.Content.IsText() {
		t.Fatal("zero blocks must not collapse to a bare string")
	}
	if len(out.Content.Fragments()) != 0 {
		t.Fatalf("fragments=%d", len(out.Content.Fragments()))
	}
}

func TestConvertResult_SingleImageStaysWrapped(t *testing.T) {
	conn := &stubConnection{}
	result := &mcp.CallToolResult{Content: []mcp.ContentBlock{imageBlock("image/png", "QQ==")}}

	out, err := ConvertResult(context.Background(), "srv", "render", result, conn)
	if err != nil {
		t.Fatal(err)
	}
	if out.Content.IsText() {
		t.Fatal("a lone image must not collapse to a bare string")
	}
	if len(out.Content.Fragments()) != 1 {
		t.Fatalf("fragments=%d", len(out.Content.Fragments()))
	}
}

func TestConvertResult_IsErrorJoinsTextBlocks(t *testing.T) {
	conn := &stubConnection{}
	result := &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.ContentBlock{
			textBlock("disk full"),
			imageBlock("image/png", "QQ=="), // non-text blocks contribute nothing
			textBlock("retry later"),
		},
	}

	_, err := ConvertResult(context.Background(), "srv", "write", result, conn)
	if !IsToolError(err) {
		t.Fatalf("err=%v", err)
	}
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatal("not a ToolError")
	}
	if te.Message != "disk full\nretry later" {
		t.Fatalf("message=%q", te.Message)
	}
}

func TestConvertResult_IsErrorWithZeroBlocks(t *testing.T) {
	conn := &stubConnection{}
	result := &mcp.CallToolResult{IsError: true, Content: []mcp.ContentBlock{}}

	_, err := ConvertResult(context.Background(), "srv", "write", result, conn)
	var te *ToolError
	if !errors.As(err, &te) {
		t.Fatalf("err=%v", err)
	}
	if te.Message != "" {
		t.Fatalf("message=%q", te.Message)
	}
}

func TestConvertResult_IsErrorBeatsBlockValidation(t *testing.T) {
	conn := &stubConnection{}
	result := &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.ContentBlock{{Type: "audio"}, textBlock("boom")},
	}

	_, err := ConvertResult(context.Background(), "srv", "speak", result, conn)
	if !IsToolError(err) {
		t.Fatalf("expected tool error despite unknown block kind, got %v", err)
	}
}

func TestConvertResult_NilResult(t *testing.T) {
	conn := &stubConnection{}
	_, err := ConvertResult(context.Background(), "srv", "calc", nil, conn)
	if !IsInvalidResult(err) {
		t.Fatalf("err=%v", err)
	}
	if !strings.Contains(err.Error(), "result was undefined") {
		t.Fatalf("err=%v", err)
	}
}

func TestConvertResult_MissingContent(t *testing.T) {
	conn := &stubConnection{}
	_, err := ConvertResult(context.Background(), "srv", "calc", &mcp.CallToolResult{}, conn)
	if !IsInvalidResult(err) {
		t.Fatalf("err=%v", err)
	}
}

func TestConvertResult_UnknownKindFailsInvocation(t *testing.T) {
	conn := &stubConnection{}
	result := &mcp.CallToolResult{Content: []mcp.ContentBlock{{Type: "audio"}}}

	_, err := ConvertResult(context.Background(), "srv", "speak", result, conn)
	if !IsInvocationError(err) {
		t.Fatalf("err=%v", err)
	}
	for _, want := range []string{"speak", "srv", "audio"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("error %q does not name %q", err.Error(), want)
		}
	}
}

func TestConvertResult_ArtifactsKeepBlockOrder(t *testing.T) {
	conn := &stubConnection{
		readResults: map[string]*mcp.ReadResourceResult{
			"file:///dir": {Contents: []mcp.ResourceContents{
				{URI: "file:///dir/a", Text: "a"},
				{URI: "file:///dir/b", Text: "b"},
			}},
		},
	}
	result := &mcp.CallToolResult{Content: []mcp.ContentBlock{
		resourceRefBlock("file:///dir"),
		textBlock("done"),
		inlineResourceBlock("file:///inline", "x"),
	}}

	out, err := ConvertResult(context.Background(), "srv", "ls", result, conn)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Content.IsText() || out.Content.Text() != "done" {
		t.Fatalf("content=%#v", out.Content)
	}
	var uris []string
	for _, a := range out.Artifacts {
		uris = append(uris, a.Resource.URI)
	}
	want := []string{"file:///dir/a", "file:///dir/b", "file:///inline"}
	if len(uris) != len(want) {
		t.Fatalf("uris=%v", uris)
	}
	for i := range want {
		if uris[i] != want[i] {
			t.Fatalf("uris=%v, want %v", uris, want)
		}
	}
	if got := conn.readCalls.Load(); got != 1 {
		t.Fatalf("read calls=%d", got)
	}
}
