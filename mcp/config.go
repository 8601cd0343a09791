package mcp

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ServerConfig declares how to reach one MCP server. Transport selects the
// variant: "stdio" uses Command/Args/Env, "http" uses URL/Headers.
type ServerConfig struct {
	Transport string `yaml:"transport"`

	// stdio
	Command string            `yaml:"command,omitempty"`
	Args    []string          `yaml:"args,omitempty"`
	Env     map[string]string `yaml:"env,omitempty"`

	// http
	URL     string            `yaml:"url,omitempty"`
	Headers map[string]string `yaml:"headers,omitempty"`
}

// NewTransport builds the transport described by the config.
func (c ServerConfig) NewTransport() (Transport, error) {
	switch c.Transport {
	case "stdio":
		if c.Command == "" {
			return nil, fmt.Errorf("mcp: stdio server config requires a command")
		}
		env := make([]string, 0, len(c.Env))
		for _, k := range sortedKeys(c.Env) {
			env = append(env, k+"="+c.Env[k])
		}
		return &StdioTransport{Command: c.Command, Args: c.Args, Env: env}, nil
	case "http":
		if c.URL == "" {
			return nil, fmt.Errorf("mcp: http server config requires a url")
		}
		return &HTTPTransport{URL: c.URL, Headers: c.Headers}, nil
	default:
		return nil, fmt.Errorf("mcp: unknown transport %q", c.Transport)
	}
}

// ServersFile is a YAML catalog of named server configurations:
//
//	servers:
//	  weather:
//	    transport: stdio
//	    command: ./weather-server
//	  search:
//	    transport: http
//	    url: http://localhost:8080/mcp
type ServersFile struct {
	Servers map[string]ServerConfig `yaml:"servers"`
}

// LoadServersFile reads and validates a server catalog from path.
func LoadServersFile(path string) (*ServersFile, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseServersFile(b)
}

// ParseServersFile parses a server catalog from raw YAML.
func ParseServersFile(b []byte) (*ServersFile, error) {
	var f ServersFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("mcp: parse servers file: %w", err)
	}
	if len(f.Servers) == 0 {
		return nil, fmt.Errorf("mcp: servers file declares no servers")
	}
	for name, cfg := range f.Servers {
		if _, err := cfg.NewTransport(); err != nil {
			return nil, fmt.Errorf("mcp: server %q: %w", name, err)
		}
	}
	return &f, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
