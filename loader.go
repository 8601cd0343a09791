package mcpadapt

import "context"

// FailPolicy controls how LoadTools reacts to a per-tool construction
// failure.
type FailPolicy string

const (
	// PolicyStrict aborts the whole load on the first failure; the load is
	// all-or-nothing.
	PolicyStrict FailPolicy = "strict"

	// PolicyLenient drops the failing tool, records the failure through the
	// logger, and continues with the rest.
	PolicyLenient FailPolicy = "lenient"
)

// LoadOptions tune LoadTools. The zero value means strict policy, no
// filtering, no logging.
type LoadOptions struct {
	Policy FailPolicy
	Logger Logger

	// Prefix is prepended to the local name of every loaded tool. The server
	// tool name is preserved for the remote call.
	Prefix string

	// Allowlist/denylist apply to server tool names (before Prefix). If
	// AllowedTools is non-empty, only those tools are loaded.
	AllowedTools []string
	DeniedTools  []string
}

// LoadTools fetches the server's tool catalog once and constructs a
// StructuredTool for each advertised tool: schema compiled (empty-object
// default), invoker bound to (server, tool name, conn). Descriptors with an
// empty name are dropped silently. Construction failures follow the fail
// policy.
func LoadTools(ctx context.Context, server string, conn Connection, opts *LoadOptions) ([]*StructuredTool, error) {
	if opts == nil {
		opts = &LoadOptions{}
	}
	log := opts.Logger
	if log == nil {
		log = NopLogger()
	}
	policy := opts.Policy
	if policy == "" {
		policy = PolicyStrict
	}

	infos, err := conn.ListTools(ctx)
	if err != nil {
		return nil, &InvocationError{Server: server, Cause: err}
	}

	allowed := map[string]bool{}
	for _, n := range opts.AllowedTools {
		allowed[n] = true
	}
	denied := map[string]bool{}
	for _, n := range opts.DeniedTools {
		denied[n] = true
	}

	tools := make([]*StructuredTool, 0, len(infos))
	for _, info := range infos {
		// Malformed catalog entries are tolerated, not reported.
		if info.Name == "" {
			continue
		}
		if len(allowed) > 0 && !allowed[info.Name] {
			continue
		}
		if denied[info.Name] {
			continue
		}

		invoker := NewInvoker(server, info.Name, conn, log)
		tool, err := NewStructuredTool(StructuredToolConfig{
			Name:           opts.Prefix + info.Name,
			Description:    info.Description,
			InputSchema:    info.InputSchema,
			ResponseFormat: ResponseContentAndArtifact,
			Invoke:         invoker.Invoke,
		})
		if err != nil {
			loadErr := &LoadError{Server: server, Tool: info.Name, Cause: err}
			if policy == PolicyLenient {
				log.Error("skipping tool that failed to load", "server", server, "tool", info.Name, "error", err)
				continue
			}
			return nil, loadErr
		}
		tools = append(tools, tool)
	}
	return tools, nil
}
