package exec

import (
	"context"
	"io"
	"time"
)

// CommandWrapper binds an Executor to one program so callers pass only its
// arguments. The invoker wraps the resolved sn.exe path this way.
// CommandWrapper implements Executor.
type CommandWrapper struct {
	executor Executor
	program  string
}

// NewWrapper creates a CommandWrapper that prepends program to every Run.
func NewWrapper(executor Executor, program string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		program:  program,
	}
}

// Program returns the wrapped program path.
func (w *CommandWrapper) Program() string {
	return w.program
}

// WithEnv sets environment variables for the command.
func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	w.executor = w.executor.WithEnv(env)
	return w
}

// WithDir sets the working directory for the command.
func (w *CommandWrapper) WithDir(dir string) Executor {
	w.executor = w.executor.WithDir(dir)
	return w
}

// WithContext sets the context for the command.
func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	w.executor = w.executor.WithContext(ctx)
	return w
}

// WithTimeout sets a timeout for the command.
func (w *CommandWrapper) WithTimeout(timeout time.Duration) Executor {
	w.executor = w.executor.WithTimeout(timeout)
	return w
}

// WithInheritEnv enables environment inheritance.
func (w *CommandWrapper) WithInheritEnv() Executor {
	w.executor = w.executor.WithInheritEnv()
	return w
}

// WithStdout sets the stdout writer.
func (w *CommandWrapper) WithStdout(out io.Writer) Executor {
	w.executor = w.executor.WithStdout(out)
	return w
}

// WithStderr sets the stderr writer.
func (w *CommandWrapper) WithStderr(out io.Writer) Executor {
	w.executor = w.executor.WithStderr(out)
	return w
}

// WithPassthrough enables output passthrough.
func (w *CommandWrapper) WithPassthrough() Executor {
	w.executor = w.executor.WithPassthrough()
	return w
}

// WithVerbatimArgs passes arguments through untouched.
func (w *CommandWrapper) WithVerbatimArgs() Executor {
	w.executor = w.executor.WithVerbatimArgs()
	return w
}

// Run executes the wrapped program with the given arguments.
func (w *CommandWrapper) Run(args ...string) (*Result, error) {
	fullArgs := make([]string, 0, len(args)+1)
	fullArgs = append(fullArgs, w.program)
	fullArgs = append(fullArgs, args...)
	return w.executor.Run(fullArgs...)
}

// Clone creates a copy of the wrapper with the same configuration.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		program:  w.program,
	}
}
