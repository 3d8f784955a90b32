package exec

import (
	"fmt"
	"strings"
)

// ExecError is returned when a process fails to start or exits non-zero.
type ExecError struct {
	// Command is the full command that was executed, program first
	Command []string

	// ExitCode is the exit code returned by the command, -1 if it never ran
	ExitCode int

	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Err is the underlying error from the execution
	Err error
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	cmd := strings.Join(e.Command, " ")
	if e.Err != nil {
		return fmt.Sprintf("command %q failed with exit code %d: %v", cmd, e.ExitCode, e.Err)
	}
	return fmt.Sprintf("command %q failed with exit code %d", cmd, e.ExitCode)
}

// Unwrap returns the underlying error.
func (e *ExecError) Unwrap() error {
	return e.Err
}
