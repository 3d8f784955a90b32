package sn

import (
	"github.com/jmgilman/go/strongname/errors"
)

// IsToolNotFound reports whether err means sn.exe could not be located.
func IsToolNotFound(err error) bool {
	return errors.HasCode(err, errors.CodeToolNotFound)
}

// IsInvalidArgument reports whether err means a required parameter was missing.
func IsInvalidArgument(err error) bool {
	return errors.HasCode(err, errors.CodeInvalidArgument)
}

// IsToolExecution reports whether err is a precondition failure detected
// before sn.exe was started.
func IsToolExecution(err error) bool {
	return errors.HasCode(err, errors.CodeToolExecution)
}

func errToolNotFound() error {
	return errors.WithContext(
		errors.New(errors.CodeToolNotFound, "Failed to find sn.exe."),
		"tool", ToolName,
	)
}

func errToolExecution(message string, ctx map[string]interface{}) error {
	if ctx == nil {
		ctx = map[string]interface{}{}
	}
	ctx["tool"] = ToolName
	return errors.WithContextMap(errors.New(errors.CodeToolExecution, ToolName+": "+message), ctx)
}
