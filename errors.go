package mcpadapt

import "fmt"

// InvalidResultError reports a tool result that violates the expected shape
// (missing result, missing content list).
type InvalidResultError struct {
	Server string
	Tool   string
	Reason string
}

func (e *InvalidResultError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tool %q on server %q returned an invalid result: %s", e.Tool, e.Server, e.Reason)
}

// ToolError reports that the remote tool itself signalled failure. Message
// is the newline-joined text of the result's content blocks and is safe to
// show to an end user or feed back to a model.
type ToolError struct {
	Server  string
	Tool    string
	Message string
}

func (e *ToolError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("tool %q on server %q reported an error: %s", e.Tool, e.Server, e.Message)
}

// InvocationError reports a plumbing failure: the transport call failed, a
// resource read failed, or a content block had an unrecognized kind.
type InvocationError struct {
	Server string
	Tool   string
	Cause  error
}

func (e *InvocationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("calling tool %q on server %q: %v", e.Tool, e.Server, e.Cause)
}

func (e *InvocationError) Unwrap() error { return e.Cause }

// LoadError reports a per-tool construction failure during catalog loading.
type LoadError struct {
	Server string
	Tool   string
	Cause  error
}

func (e *LoadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("loading tool %q from server %q: %v", e.Tool, e.Server, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// InvalidInputError reports tool arguments rejected by the tool's input
// schema before any remote call is made.
type InvalidInputError struct {
	Tool  string
	Cause error
}

func (e *InvalidInputError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid input for tool %q: %v", e.Tool, e.Cause)
}

func (e *InvalidInputError) Unwrap() error { return e.Cause }
