package mcpadapt

import (
	"encoding/json"

	"github.com/bitop-dev/mcpadapt/mcp"
)

// Fragment is one normalized unit of primary tool output.
type Fragment interface {
	isFragment()
}

// TextFragment carries a text block's text verbatim.
type TextFragment struct {
	Text string
}

func (TextFragment) isFragment() {}

func (f TextFragment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{Type: "text", Text: f.Text})
}

// ImageFragment carries an image block as a base64 data URI.
type ImageFragment struct {
	URL string
}

func (ImageFragment) isFragment() {}

func (f ImageFragment) MarshalJSON() ([]byte, error) {
	type imageURL struct {
		URL string `json:"url"`
	}
	return json.Marshal(struct {
		Type     string   `json:"type"`
		ImageURL imageURL `json:"image_url"`
	}{Type: "image_url", ImageURL: imageURL{URL: f.URL}})
}

// Content is the primary part of a converted tool result: either a bare
// string (the result held exactly one text block and nothing else) or an
// ordered fragment sequence (every other case, including zero fragments).
type Content struct {
	text      string
	isText    bool
	fragments []Fragment
}

func TextContent(s string) Content {
	return Content{text: s, isText: true}
}

func FragmentContent(fragments []Fragment) Content {
	return Content{fragments: fragments}
}

// IsText reports whether the content is a bare string.
func (c Content) IsText() bool { return c.isText }

// Text returns the bare string form. It is only meaningful when IsText is
// true.
func (c Content) Text() string { return c.text }

// Fragments returns the fragment-sequence form. It is only meaningful when
// IsText is false.
func (c Content) Fragments() []Fragment { return c.fragments }

// Value returns the content in the shape a framework message expects: a
// string or a []Fragment.
func (c Content) Value() any {
	if c.isText {
		return c.text
	}
	return c.fragments
}

func (c Content) MarshalJSON() ([]byte, error) {
	if c.isText {
		return json.Marshal(c.text)
	}
	if c.fragments == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.fragments)
}

// ToolOutput is the converted result of one tool invocation: the primary
// content plus the resolved resource blocks as a side channel. Both parts
// are freshly allocated per call.
type ToolOutput struct {
	Content   Content
	Artifacts []mcp.ContentBlock
}
