package exec

import (
	"context"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"time"
)

// Command is the os/exec backed Executor.
type Command struct {
	config *config
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
}

// New creates a Command with the given global options.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		ctx:    context.Background(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// WithEnv sets environment variables for the next run.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the next run.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the command.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithTimeout bounds the next run.
func (c *Command) WithTimeout(timeout time.Duration) Executor {
	c.config.localTimeout = timeout
	return c
}

// WithInheritEnv enables environment inheritance for the next run.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// WithStdout sets the stdout writer.
func (c *Command) WithStdout(w io.Writer) Executor {
	c.stdout = w
	return c
}

// WithStderr sets the stderr writer.
func (c *Command) WithStderr(w io.Writer) Executor {
	c.stderr = w
	return c
}

// WithPassthrough enables output passthrough for the next run.
func (c *Command) WithPassthrough() Executor {
	val := true
	c.config.localPassthrough = &val
	return c
}

// WithVerbatimArgs passes arguments through untouched for the next run.
func (c *Command) WithVerbatimArgs() Executor {
	c.config.localVerbatim = true
	return c
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*Result, error) {
	defer c.config.resetLocal()

	if len(args) == 0 {
		return nil, &ExecError{
			Command:  args,
			ExitCode: -1,
			Err:      osexec.ErrNotFound,
		}
	}

	ctx := c.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	if c.config.localTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.localTimeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	if c.config.localVerbatim {
		applyVerbatimArgs(cmd, args)
	}

	if dir := c.config.effectiveDir(); dir != "" {
		cmd.Dir = dir
	}

	if c.config.effectiveInheritEnv() {
		cmd.Env = os.Environ()
	}
	for k, v := range c.config.effectiveEnv() {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdoutCapture, stderrCapture *outputCapture
	if c.config.effectivePassthrough() {
		stdoutCapture = newOutputCapture(c.stdout)
		stderrCapture = newOutputCapture(c.stderr)
	} else {
		stdoutCapture = newOutputCapture(nil)
		stderrCapture = newOutputCapture(nil)
	}

	combined := newCombinedWriter()
	cmd.Stdout = newMultiWriter(stdoutCapture.Writer(), combined)
	cmd.Stderr = newMultiWriter(stderrCapture.Writer(), combined)

	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		err = fmt.Errorf("%w: %w", ctx.Err(), err)
	}

	result := &Result{
		Stdout:   stdoutCapture.String(),
		Stderr:   stderrCapture.String(),
		Combined: combined.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if err != nil {
		return result, &ExecError{
			Command:  args,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
			Err:      err,
		}
	}

	return result, nil
}

// Clone creates a copy of the executor with the same global configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config: c.config.clone(),
		ctx:    c.ctx,
		stdout: c.stdout,
		stderr: c.stderr,
	}
}
