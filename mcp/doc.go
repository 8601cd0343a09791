// Package mcp implements a Model Context Protocol (MCP) client.
//
// It is the connection layer consumed by package mcpadapt: it speaks JSON-RPC
// to an MCP server over a pluggable Transport (stdio subprocess or streamable
// HTTP) and exposes the operations the adapter needs: listing tools, calling
// a tool, and reading a resource by URI.
package mcp
