package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/jmgilman/go/strongname/config"
	"github.com/jmgilman/go/strongname/exec"
	"github.com/jmgilman/go/strongname/fs/billy"
	"github.com/jmgilman/go/strongname/platform"
	"github.com/jmgilman/go/strongname/registry"
	"github.com/jmgilman/go/strongname/sn"
)

type (
	// FileSystem is what the CLI needs from a file system: existence checks
	// for the tool and its targets and reads for the config file.
	FileSystem interface {
		FileExists(path string) (bool, error)
		ReadFile(path string) ([]byte, error)
	}

	// Dependencies are the injection points for NewApp. Nil fields are
	// replaced with the host implementations.
	Dependencies struct {
		FS        FileSystem
		Env       sn.Environment
		Registry  registry.Registry
		Executor  exec.Executor
		Stdout    io.Writer
		Stderr    io.Writer
		LookupEnv func(string) (string, bool)
		// ConfigDir overrides the user config directory.
		ConfigDir string
	}

	// App is the composition root of the CLI.
	App struct {
		fs        FileSystem
		env       sn.Environment
		registry  registry.Registry
		executor  exec.Executor
		stdout    io.Writer
		stderr    io.Writer
		lookupEnv func(string) (string, bool)
		configDir string

		flags globalFlags

		cfg     *config.Config
		cfgPath string
		logger  *log.Logger
	}

	globalFlags struct {
		configPath string
		verbose    bool
		json       bool
	}
)

// NewApp builds an App, filling unset dependencies with host defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		fs:        deps.FS,
		env:       deps.Env,
		registry:  deps.Registry,
		executor:  deps.Executor,
		stdout:    deps.Stdout,
		stderr:    deps.Stderr,
		lookupEnv: deps.LookupEnv,
		configDir: deps.ConfigDir,
	}

	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.fs == nil {
		app.fs = billy.NewLocal()
	}
	if app.env == nil {
		app.env = platform.NewHost()
	}
	if app.registry == nil {
		app.registry = registry.NewSystem(registry.WithView(registry.View32))
	}
	if app.executor == nil {
		app.executor = exec.New(
			exec.WithInheritEnv(),
			exec.WithPassthrough(),
			exec.WithStdout(app.stdout),
			exec.WithStderr(app.stderr),
		)
	}
	if app.lookupEnv == nil {
		app.lookupEnv = os.LookupEnv
	}
	app.logger = newLogger(app.stderr, log.WarnLevel)

	return app
}

// load reads the configuration and configures logging. It runs before
// every command.
func (a *App) load() error {
	cfg, path, err := config.Load(config.LoadOptions{
		ConfigFilePath: a.flags.configPath,
		ConfigDirPath:  a.configDir,
		FS:             a.fs,
		LookupEnv:      a.lookupEnv,
	})
	if err != nil {
		return err
	}
	a.cfg, a.cfgPath = cfg, path

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	if a.flags.verbose {
		level = log.DebugLevel
	}
	a.logger = newLogger(a.stderr, level)
	a.logger.Debug("configuration loaded", "path", path)
	return nil
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  level,
	})
}

func (a *App) snOptions() []sn.Option {
	return []sn.Option{
		sn.WithCandidates(a.cfg.SearchCandidates()),
		sn.WithLogger(a.logger),
	}
}

func (a *App) invoker() (*sn.Invoker, error) {
	return sn.New(a.fs, a.env, a.registry, a.executor, a.snOptions()...)
}
