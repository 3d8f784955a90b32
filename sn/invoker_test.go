package sn

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/strongname/errors"
	"github.com/jmgilman/go/strongname/exec"
	"github.com/jmgilman/go/strongname/platform"
	"github.com/jmgilman/go/strongname/registry"
)

const toolPath = `C:\sdk\sn.exe`

var target = filepath.Join("/work", "Core.dll")

func newTestInvoker(t *testing.T, fs FileSystem, run func(args ...string) (*exec.Result, error)) (*Invoker, *staticPath, func() [][]string) {
	t.Helper()
	locator := &staticPath{path: toolPath}
	mock := newExecutorMock(run)

	inv, err := NewInvoker(fs, env64, mock, locator)
	require.NoError(t, err)

	calls := func() [][]string {
		var out [][]string
		for _, c := range mock.RunCalls() {
			out = append(out, c.Args)
		}
		return out
	}
	return inv, locator, calls
}

func TestNewInvoker_MissingCollaborators(t *testing.T) {
	fs := newProbeFS(t)
	mock := newExecutorMock(nil)
	loc := &staticPath{}

	tests := []struct {
		name  string
		build func() (*Invoker, error)
		param string
	}{
		{"file system", func() (*Invoker, error) { return NewInvoker(nil, env64, mock, loc) }, "fileSystem"},
		{"environment", func() (*Invoker, error) { return NewInvoker(fs, nil, mock, loc) }, "environment"},
		{"executor", func() (*Invoker, error) { return NewInvoker(fs, env64, nil, loc) }, "executor"},
		{"locator", func() (*Invoker, error) { return NewInvoker(fs, env64, mock, nil) }, "locator"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.build()
			require.Error(t, err)
			assert.Nil(t, inv)

			var perr errors.PlatformError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, errors.CodeInvalidArgument, perr.Code())
			assert.Equal(t, tt.param, perr.Context()["parameter"])
		})
	}
}

func TestInvoker_Run(t *testing.T) {
	quoted := `"` + target + `"`

	tests := []struct {
		name     string
		op       Operation
		settings *Settings
		want     []string
	}{
		{
			name:     "verify",
			op:       OperationVerify,
			settings: &Settings{},
			want:     []string{toolPath, "-v", quoted},
		},
		{
			name:     "verify forced",
			op:       OperationVerify,
			settings: &Settings{ForceVerification: true},
			want:     []string{toolPath, "-vf", quoted},
		},
		{
			name:     "resign",
			op:       OperationResign,
			settings: &Settings{Container: "MyKeys"},
			want:     []string{toolPath, "-Rca", quoted, "MyKeys"},
		},
		{
			name:     "resign ignores force verification",
			op:       OperationResign,
			settings: &Settings{Container: "MyKeys", ForceVerification: true},
			want:     []string{toolPath, "-Rca", quoted, "MyKeys"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, _, calls := newTestInvoker(t, newProbeFS(t, target), nil)

			require.NoError(t, inv.Run(context.Background(), tt.op, "Core.dll", tt.settings))
			assert.Equal(t, [][]string{tt.want}, calls())
		})
	}
}

func TestInvoker_RunValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		settings *Settings
		files    []string
		check    func(t *testing.T, err error)
	}{
		{
			name:   "empty target before settings",
			target: "",
			check: func(t *testing.T, err error) {
				assert.True(t, IsInvalidArgument(err))
				assert.Contains(t, err.Error(), "assemblyPath")
			},
		},
		{
			name:   "missing settings",
			target: "Core.dll",
			files:  []string{target},
			check: func(t *testing.T, err error) {
				assert.True(t, IsInvalidArgument(err))
				assert.Contains(t, err.Error(), "settings")
			},
		},
		{
			name:     "missing target before container",
			target:   "Core.dll",
			settings: &Settings{},
			check: func(t *testing.T, err error) {
				assert.True(t, IsToolExecution(err))
				assert.Contains(t, err.Error(), "sn: The assembly '"+target+"' does not exist.")
			},
		},
		{
			name:     "missing container",
			target:   "Core.dll",
			settings: &Settings{},
			files:    []string{target},
			check: func(t *testing.T, err error) {
				assert.True(t, IsToolExecution(err))
				assert.Contains(t, err.Error(), "Container is required but not specified.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, locator, calls := newTestInvoker(t, newProbeFS(t, tt.files...), nil)

			err := inv.Run(context.Background(), OperationResign, tt.target, tt.settings)
			require.Error(t, err)
			tt.check(t, err)
			assert.Empty(t, calls(), "no process is started")
			assert.Zero(t, locator.calls, "tool is not located")
		})
	}
}

func TestInvoker_ResignWithoutContainer(t *testing.T) {
	for _, exists := range []bool{true, false} {
		var files []string
		if exists {
			files = append(files, target)
		}
		inv, _, calls := newTestInvoker(t, newProbeFS(t, files...), nil)

		err := inv.Run(context.Background(), OperationResign, target, &Settings{Container: ""})
		require.Error(t, err)
		assert.True(t, IsToolExecution(err))
		assert.Empty(t, calls())
	}
}

func TestInvoker_AbsoluteTarget(t *testing.T) {
	abs := filepath.Join("/artifacts", "Lib.dll")
	inv, _, calls := newTestInvoker(t, newProbeFS(t, abs), nil)

	require.NoError(t, inv.Run(context.Background(), OperationVerify, abs, &Settings{}))
	assert.Equal(t, [][]string{{toolPath, "-v", `"` + abs + `"`}}, calls())
}

func TestInvoker_WorkingDirectorySetting(t *testing.T) {
	dir := filepath.Join("/build", "out")
	lib := filepath.Join(dir, "Lib.dll")

	mock := newExecutorMock(nil)
	inv, err := NewInvoker(newProbeFS(t, lib), env64, mock, &staticPath{path: toolPath})
	require.NoError(t, err)

	require.NoError(t, inv.Run(context.Background(), OperationVerify, "Lib.dll", &Settings{WorkingDirectory: dir}))

	require.Len(t, mock.WithDirCalls(), 1)
	assert.Equal(t, dir, mock.WithDirCalls()[0].Dir)
	assert.Equal(t, `"`+lib+`"`, mock.RunCalls()[0].Args[2])
}

func TestInvoker_ExecutorConfiguration(t *testing.T) {
	mock := newExecutorMock(nil)
	inv, err := NewInvoker(newProbeFS(t, target), env64, mock, &staticPath{path: toolPath})
	require.NoError(t, err)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")
	settings := &Settings{
		Timeout: time.Minute,
		Env:     map[string]string{"SN_TRACE": "1"},
	}
	require.NoError(t, inv.Run(ctx, OperationVerify, "Core.dll", settings))

	assert.Len(t, mock.CloneCalls(), 1, "each run uses a clone")
	require.Len(t, mock.WithContextCalls(), 1)
	assert.Equal(t, ctx, mock.WithContextCalls()[0].Ctx)
	assert.Len(t, mock.WithVerbatimArgsCalls(), 1)
	require.Len(t, mock.WithTimeoutCalls(), 1)
	assert.Equal(t, time.Minute, mock.WithTimeoutCalls()[0].Timeout)
	require.Len(t, mock.WithEnvCalls(), 1)
	assert.Equal(t, settings.Env, mock.WithEnvCalls()[0].Env)
	assert.Len(t, mock.WithInheritEnvCalls(), 1, "extra variables keep the parent environment")
}

func TestInvoker_NoEnvLeavesEnvironmentAlone(t *testing.T) {
	mock := newExecutorMock(nil)
	inv, err := NewInvoker(newProbeFS(t, target), env64, mock, &staticPath{path: toolPath})
	require.NoError(t, err)

	require.NoError(t, inv.Run(context.Background(), OperationVerify, "Core.dll", &Settings{}))
	assert.Empty(t, mock.WithEnvCalls())
	assert.Empty(t, mock.WithInheritEnvCalls())
}

func TestInvoker_DirectoryTarget(t *testing.T) {
	fs := newProbeFS(t)
	fs.addDir(t, filepath.Join("/work", "bin"))
	inv, locator, calls := newTestInvoker(t, fs, nil)

	err := inv.Run(context.Background(), OperationVerify, "bin", &Settings{})
	require.Error(t, err)
	assert.True(t, IsToolExecution(err))
	assert.Contains(t, err.Error(), "The assembly '"+filepath.Join("/work", "bin")+"' does not exist.")
	assert.Empty(t, calls())
	assert.Zero(t, locator.calls)
}

func TestInvoker_ArgumentCustomization(t *testing.T) {
	inv, _, calls := newTestInvoker(t, newProbeFS(t, target), nil)

	settings := &Settings{
		Container: "MyKeys",
		ArgumentCustomization: func(args *Arguments) *Arguments {
			return args.Append("-q")
		},
	}
	require.NoError(t, inv.Run(context.Background(), OperationResign, "Core.dll", settings))
	assert.Equal(t, []string{toolPath, "-Rca", `"` + target + `"`, "MyKeys", "-q"}, calls()[0])

	settings.ArgumentCustomization = func(*Arguments) *Arguments { return nil }
	require.NoError(t, inv.Run(context.Background(), OperationResign, "Core.dll", settings))
	assert.Equal(t, []string{toolPath, "-Rca", `"` + target + `"`, "MyKeys"}, calls()[1])
}

func TestInvoker_ToolPathSetting(t *testing.T) {
	custom := filepath.Join("/tools", "sn.exe")

	t.Run("existing", func(t *testing.T) {
		inv, locator, calls := newTestInvoker(t, newProbeFS(t, target, custom), nil)

		require.NoError(t, inv.Run(context.Background(), OperationVerify, "Core.dll", &Settings{ToolPath: custom}))
		assert.Equal(t, custom, calls()[0][0])
		assert.Zero(t, locator.calls)
	})

	t.Run("missing", func(t *testing.T) {
		inv, _, calls := newTestInvoker(t, newProbeFS(t, target), nil)

		err := inv.Run(context.Background(), OperationVerify, "Core.dll", &Settings{ToolPath: custom})
		require.Error(t, err)
		assert.True(t, IsToolNotFound(err))
		assert.Empty(t, calls())
	})

	t.Run("directory", func(t *testing.T) {
		fs := newProbeFS(t, target)
		fs.addDir(t, custom)
		inv, _, calls := newTestInvoker(t, fs, nil)

		err := inv.Run(context.Background(), OperationVerify, "Core.dll", &Settings{ToolPath: custom})
		require.Error(t, err)
		assert.True(t, IsToolNotFound(err))
		assert.Empty(t, calls())
	})

	t.Run("relative", func(t *testing.T) {
		inv, locator, _ := newTestInvoker(t, newProbeFS(t, filepath.Join("/work", "tools", "sn.exe")), nil)

		path, err := inv.ToolPath(&Settings{ToolPath: filepath.Join("tools", "sn.exe")})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/work", "tools", "sn.exe"), path)
		assert.Zero(t, locator.calls)
	})
}

func TestInvoker_ToolPathLocates(t *testing.T) {
	inv, locator, _ := newTestInvoker(t, newProbeFS(t), nil)

	path, err := inv.ToolPath(nil)
	require.NoError(t, err)
	assert.Equal(t, toolPath, path)
	assert.Equal(t, 1, locator.calls)
}

func TestInvoker_LocatorErrorUnwrapped(t *testing.T) {
	locErr := errors.New(errors.CodeToolNotFound, "Failed to find sn.exe.")
	mock := newExecutorMock(nil)
	inv, err := NewInvoker(newProbeFS(t, target), env64, mock, &staticPath{err: locErr})
	require.NoError(t, err)

	err = inv.Run(context.Background(), OperationVerify, "Core.dll", &Settings{})
	assert.Same(t, locErr, err)
	assert.Empty(t, mock.RunCalls())
}

func TestInvoker_ExecutorErrorUnchanged(t *testing.T) {
	execErr := &exec.ExecError{Command: []string{toolPath}, ExitCode: 1, Err: stderrors.New("exit status 1")}
	inv, _, _ := newTestInvoker(t, newProbeFS(t, target), func(...string) (*exec.Result, error) {
		return &exec.Result{ExitCode: 1}, execErr
	})

	err := inv.Run(context.Background(), OperationVerify, "Core.dll", &Settings{})
	assert.Same(t, execErr, err)
}

func TestInvoker_LocatesOnce(t *testing.T) {
	reg := sdkRegistry()
	setToolsFolder(reg, "v10.0A", toolsKey64, `C:\sdk`)
	fs := newProbeFS(t, target, toolPath)
	mock := newExecutorMock(nil)

	inv, err := New(fs, env64, reg, mock)
	require.NoError(t, err)

	require.NoError(t, inv.Run(context.Background(), OperationVerify, "Core.dll", &Settings{}))
	opens := reg.Opens()
	require.NoError(t, inv.Run(context.Background(), OperationVerify, "Core.dll", &Settings{}))

	assert.Equal(t, opens, reg.Opens())
	require.Len(t, mock.RunCalls(), 2)
	assert.Equal(t, toolPath, mock.RunCalls()[1].Args[0])
}

func TestInvoker_CreateKey(t *testing.T) {
	key := filepath.Join("/work", "keys", "release.snk")
	inv, _, calls := newTestInvoker(t, newProbeFS(t), nil)

	require.NoError(t, inv.CreateKey(context.Background(), filepath.Join("keys", "release.snk"), nil))
	assert.Equal(t, [][]string{{toolPath, "-k", `"` + key + `"`}}, calls())

	err := inv.CreateKey(context.Background(), "", nil)
	assert.True(t, IsInvalidArgument(err))
}

func TestBuildArguments(t *testing.T) {
	args, err := BuildArguments(OperationVerify, `C:\build\Core.dll`, &Settings{ForceVerification: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"-vf", `"C:\build\Core.dll"`}, args.Render())

	args, err = BuildArguments(OperationResign, `C:\build\Core.dll`, &Settings{Container: "MyKeys"})
	require.NoError(t, err)
	assert.Equal(t, []string{"-Rca", `"C:\build\Core.dll"`, "MyKeys"}, args.Render())
	assert.Equal(t, `-Rca "C:\build\Core.dll" MyKeys`, args.String())

	_, err = BuildArguments(Operation(99), `C:\build\Core.dll`, &Settings{})
	assert.True(t, IsInvalidArgument(err))

	_, err = BuildArguments(OperationVerify, `C:\build\Core.dll`, nil)
	assert.True(t, IsInvalidArgument(err))
}

func TestNew(t *testing.T) {
	_, err := New(newProbeFS(t), platform.Static{}, nil, newExecutorMock(nil))
	assert.True(t, IsInvalidArgument(err))

	inv, err := New(newProbeFS(t), platform.Static{}, registry.NewMemory(), newExecutorMock(nil))
	require.NoError(t, err)
	assert.NotNil(t, inv)
}
