package exec

import (
	"context"
	"io"
	"time"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor runs external processes through a fluent configuration API.
// Local settings apply to the next Run only.
type Executor interface {
	// WithEnv sets environment variables for the next run.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the next run.
	WithDir(dir string) Executor

	// WithContext sets the context for the next run.
	// The process is killed if the context is canceled.
	WithContext(ctx context.Context) Executor

	// WithTimeout bounds the next run. Zero means no timeout.
	WithTimeout(timeout time.Duration) Executor

	// WithInheritEnv inherits environment variables from the parent process.
	WithInheritEnv() Executor

	// WithStdout sets the passthrough writer for stdout.
	WithStdout(w io.Writer) Executor

	// WithStderr sets the passthrough writer for stderr.
	WithStderr(w io.Writer) Executor

	// WithPassthrough streams output to the stdout/stderr writers while also capturing it.
	WithPassthrough() Executor

	// WithVerbatimArgs passes arguments after the program name to the process
	// exactly as given, including any quote characters, instead of letting the
	// runtime escape each one. On Windows the arguments become the raw command
	// line; elsewhere a token wrapped in double quotes is unwrapped.
	WithVerbatimArgs() Executor

	// Run executes args[0] with the remaining arguments.
	Run(args ...string) (*Result, error)

	// Clone returns a copy with the same global configuration.
	Clone() Executor
}

// Result is the outcome of a process run.
type Result struct {
	// Stdout is the captured standard output
	Stdout string

	// Stderr is the captured standard error
	Stderr string

	// Combined is stdout and stderr interleaved in write order
	Combined string

	// ExitCode is the process exit code, or -1 if it never started
	ExitCode int
}

// Option configures a Command with global settings at creation time.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithContext returns an Option that sets the base context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}

// WithStdout returns an Option that sets the passthrough stdout writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the passthrough stderr writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithPassthrough returns an Option that globally enables output passthrough.
func WithPassthrough() Option {
	return func(c *Command) {
		c.config.globalPassthrough = true
	}
}
