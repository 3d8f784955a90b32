package sn

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/jmgilman/go/strongname/errors"
	"github.com/jmgilman/go/strongname/exec"
)

// PathResolver resolves the sn.exe path. *Locator implements it.
type PathResolver interface {
	GetPath() (string, error)
}

// Invoker validates sn.exe requests, builds their command lines and runs
// them. Invokers hold no per-call state and may be reused.
type Invoker struct {
	fs       FileSystem
	env      Environment
	executor exec.Executor
	locator  PathResolver
	logger   *log.Logger
}

// NewInvoker creates an Invoker that resolves sn.exe through locator.
func NewInvoker(fs FileSystem, env Environment, executor exec.Executor, locator PathResolver, opts ...Option) (*Invoker, error) {
	if fs == nil {
		return nil, errors.InvalidArgument("fileSystem")
	}
	if env == nil {
		return nil, errors.InvalidArgument("environment")
	}
	if executor == nil {
		return nil, errors.InvalidArgument("executor")
	}
	if locator == nil {
		return nil, errors.InvalidArgument("locator")
	}

	o := newOptions(opts)
	return &Invoker{
		fs:       fs,
		env:      env,
		executor: executor,
		locator:  locator,
		logger:   o.logger,
	}, nil
}

// Run performs op on targetFile. A relative targetFile is resolved against
// the working directory, and the file must exist.
//
// Errors from locating the tool and from running it are returned unchanged.
func (i *Invoker) Run(ctx context.Context, op Operation, targetFile string, settings *Settings) error {
	if targetFile == "" {
		return errors.InvalidArgument("assemblyPath")
	}
	if settings == nil {
		return errors.InvalidArgument("settings")
	}

	workDir := i.workingDirectory(settings)
	target := makeAbsolute(targetFile, workDir)
	if !i.exists(target) {
		return errToolExecution("The assembly '"+target+"' does not exist.", map[string]interface{}{
			"path":      target,
			"operation": op.String(),
		})
	}

	args, err := BuildArguments(op, target, settings)
	if err != nil {
		return err
	}
	return i.execute(ctx, customize(args, settings), workDir, settings)
}

// CreateKey generates a new key pair into keyFile. The file need not
// exist. A nil settings uses the defaults.
func (i *Invoker) CreateKey(ctx context.Context, keyFile string, settings *Settings) error {
	if keyFile == "" {
		return errors.InvalidArgument("keyFilePath")
	}
	if settings == nil {
		settings = &Settings{}
	}

	workDir := i.workingDirectory(settings)
	args := NewArguments().
		Append("-k").
		AppendQuoted(makeAbsolute(keyFile, workDir))
	return i.execute(ctx, customize(args, settings), workDir, settings)
}

// BuildArguments returns the sn.exe arguments for op on the absolute path
// target.
func BuildArguments(op Operation, target string, settings *Settings) (*Arguments, error) {
	if settings == nil {
		return nil, errors.InvalidArgument("settings")
	}

	args := NewArguments()
	switch op {
	case OperationVerify:
		if settings.ForceVerification {
			args.Append("-vf")
		} else {
			args.Append("-v")
		}
		args.AppendQuoted(target)
	case OperationResign:
		if settings.Container == "" {
			return nil, errToolExecution("Container is required but not specified.", map[string]interface{}{
				"operation": op.String(),
			})
		}
		args.Append("-Rca").
			AppendQuoted(target).
			Append(settings.Container)
	default:
		return nil, errors.WithContext(
			errors.Newf(errors.CodeInvalidArgument, "unsupported operation %s", op),
			"parameter", "operation",
		)
	}
	return args, nil
}

func customize(args *Arguments, settings *Settings) *Arguments {
	if settings.ArgumentCustomization == nil {
		return args
	}
	if custom := settings.ArgumentCustomization(args); custom != nil {
		return custom
	}
	return args
}

func (i *Invoker) execute(ctx context.Context, args *Arguments, workDir string, settings *Settings) error {
	tool, err := i.toolPath(settings, workDir)
	if err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	runner := exec.NewWrapper(i.executor.Clone(), tool).
		WithContext(ctx).
		WithVerbatimArgs()
	if workDir != "" {
		runner = runner.WithDir(workDir)
	}
	if settings.Timeout > 0 {
		runner = runner.WithTimeout(settings.Timeout)
	}
	if len(settings.Env) > 0 {
		runner = runner.WithInheritEnv().WithEnv(settings.Env)
	}

	i.logger.Info("running", "tool", tool, "args", args.String())
	_, err = runner.Run(args.Render()...)
	return err
}

// ToolPath returns the sn.exe path a run with settings would use: the
// configured ToolPath resolved against the working directory, or the
// located tool when none is set. A nil settings uses the defaults.
func (i *Invoker) ToolPath(settings *Settings) (string, error) {
	if settings == nil {
		settings = &Settings{}
	}
	return i.toolPath(settings, i.workingDirectory(settings))
}

func (i *Invoker) toolPath(settings *Settings, workDir string) (string, error) {
	if settings.ToolPath == "" {
		return i.locator.GetPath()
	}

	tool := makeAbsolute(settings.ToolPath, workDir)
	if !i.exists(tool) {
		return "", errors.WithContextMap(
			errors.New(errors.CodeToolNotFound, ToolName+": Could not locate executable."),
			map[string]interface{}{"tool": ToolName, "path": tool},
		)
	}
	return tool, nil
}

func (i *Invoker) workingDirectory(settings *Settings) string {
	if settings.WorkingDirectory != "" {
		return makeAbsolute(settings.WorkingDirectory, i.env.WorkingDirectory())
	}
	return i.env.WorkingDirectory()
}

func (i *Invoker) exists(path string) bool {
	ok, err := i.fs.FileExists(path)
	if err != nil {
		i.logger.Debug("existence check failed", "path", path, "err", err)
		return false
	}
	return ok
}
