// Package mcpadapt bridges MCP server tools into local structured tools.
//
// The primary purpose is the result-conversion layer: an MCP tool call
// returns a heterogeneous list of content blocks (text, image, embedded
// resource); this package converts that into a stable two-part contract —
// primary content for the model plus resolved resource artifacts — and a
// uniform error taxonomy, so agent code can consume any MCP tool the same
// way. LoadTools turns a server's advertised catalog into bound, invocable
// StructuredTool values.
package mcpadapt
