package sn

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/jmgilman/go/strongname/exec"
	"github.com/jmgilman/go/strongname/registry"
)

const (
	// ToolName is the name used in diagnostics.
	ToolName = "sn"

	// ExecutableName is the file name of the strong-name tool.
	ExecutableName = "sn.exe"
)

// FileSystem answers whether a file exists. Directories are not files.
// A missing file is (false, nil); an error means the check itself failed.
type FileSystem interface {
	FileExists(path string) (bool, error)
}

// Environment describes the machine the tool is located on.
type Environment interface {
	// ProgramFilesX86 returns the 32-bit program files directory.
	ProgramFilesX86() string

	// Is64BitOperatingSystem reports whether the OS is 64-bit.
	Is64BitOperatingSystem() bool

	// WorkingDirectory is the base for relative target paths.
	WorkingDirectory() string
}

// Option configures a Locator or an Invoker.
type Option func(*options)

type options struct {
	candidates Candidates
	logger     *log.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		candidates: DefaultCandidates(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithCandidates replaces the SDK versions and layouts probed on disk.
func WithCandidates(c Candidates) Option {
	return func(o *options) {
		o.candidates = c
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New builds a Locator and an Invoker that shares it.
func New(fs FileSystem, env Environment, reg registry.Registry, executor exec.Executor, opts ...Option) (*Invoker, error) {
	locator, err := NewLocator(fs, env, reg, opts...)
	if err != nil {
		return nil, err
	}
	return NewInvoker(fs, env, executor, locator, opts...)
}
