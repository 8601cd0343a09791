package mcpadapt

import "errors"

// IsToolError reports whether the tool itself said no, as opposed to the
// plumbing breaking.
func IsToolError(err error) bool {
	var e *ToolError
	return errors.As(err, &e)
}

func IsInvalidResult(err error) bool {
	var e *InvalidResultError
	return errors.As(err, &e)
}

func IsInvocationError(err error) bool {
	var e *InvocationError
	return errors.As(err, &e)
}

func IsLoadError(err error) bool {
	var e *LoadError
	return errors.As(err, &e)
}

func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}
