package sn

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/strongname/exec"
	"github.com/jmgilman/go/strongname/exec/mocks"
	"github.com/jmgilman/go/strongname/fs/billy"
	"github.com/jmgilman/go/strongname/platform"
	"github.com/jmgilman/go/strongname/registry"
)

const (
	programFiles = `C:\Program Files (x86)`
	sdk10x64     = `C:\Program Files (x86)\Microsoft SDKs\Windows\v10.0A\Bin\NETFX 4.0 Tools\x64\sn.exe`
)

var (
	env64 = platform.Static{ProgramFiles: programFiles, Is64Bit: true, WorkDir: "/work"}
	env32 = platform.Static{ProgramFiles: programFiles, Is64Bit: false, WorkDir: "/work"}
)

// probeFS is an in-memory file system that records every existence check.
type probeFS struct {
	mem *billy.MemoryFS

	mu      sync.Mutex
	probes  []string
	fail    map[string]error
	onProbe func(path string)
}

func newProbeFS(t *testing.T, files ...string) *probeFS {
	t.Helper()
	p := &probeFS{mem: billy.NewMemory(), fail: make(map[string]error)}
	for _, f := range files {
		p.add(t, f)
	}
	return p
}

func (p *probeFS) add(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, p.mem.WriteFile(path, []byte("MZ"), 0o644))
}

func (p *probeFS) FileExists(path string) (bool, error) {
	p.mu.Lock()
	p.probes = append(p.probes, path)
	hook := p.onProbe
	err := p.fail[path]
	p.mu.Unlock()

	if hook != nil {
		hook(path)
	}
	if err != nil {
		return false, err
	}
	return p.mem.FileExists(path)
}

func (p *probeFS) addDir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, p.mem.MkdirAll(path, 0o755))
}

func (p *probeFS) Probes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.probes...)
}

// sdkRegistry builds a registry whose SDK root has the given version keys.
func sdkRegistry(versions ...string) *registry.Memory {
	reg := registry.NewMemory()
	reg.CreateKey(registry.LocalMachine, SDKRegistryKey)
	for _, v := range versions {
		reg.CreateKey(registry.LocalMachine, SDKRegistryKey+`\`+v)
	}
	return reg
}

func setToolsFolder(reg *registry.Memory, version, toolsKey, folder string) {
	reg.SetValue(registry.LocalMachine, SDKRegistryKey+`\`+version+`\`+toolsKey, "InstallationFolder", folder)
}

// errRegistry fails every operation.
type errRegistry struct{ err error }

func (r errRegistry) OpenKey(registry.Hive, string) (registry.Key, bool, error) {
	return nil, false, r.err
}

// newExecutorMock returns a mock whose fluent methods return itself and
// whose Run calls run.
func newExecutorMock(run func(args ...string) (*exec.Result, error)) *mocks.ExecutorMock {
	if run == nil {
		run = func(...string) (*exec.Result, error) { return &exec.Result{}, nil }
	}
	m := &mocks.ExecutorMock{RunFunc: run}
	m.CloneFunc = func() exec.Executor { return m }
	m.WithContextFunc = func(context.Context) exec.Executor { return m }
	m.WithDirFunc = func(string) exec.Executor { return m }
	m.WithEnvFunc = func(map[string]string) exec.Executor { return m }
	m.WithTimeoutFunc = func(time.Duration) exec.Executor { return m }
	m.WithInheritEnvFunc = func() exec.Executor { return m }
	m.WithPassthroughFunc = func() exec.Executor { return m }
	m.WithStdoutFunc = func(_ io.Writer) exec.Executor { return m }
	m.WithStderrFunc = func(_ io.Writer) exec.Executor { return m }
	m.WithVerbatimArgsFunc = func() exec.Executor { return m }
	return m
}

// staticPath is a PathResolver with a fixed answer.
type staticPath struct {
	path  string
	err   error
	calls int
}

func (s *staticPath) GetPath() (string, error) {
	s.calls++
	return s.path, s.err
}
