package sn

import (
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/jmgilman/go/strongname/errors"
	"github.com/jmgilman/go/strongname/registry"
)

// SDKRegistryKey is the HKLM key whose subkeys describe installed Windows SDKs.
const SDKRegistryKey = `Software\Microsoft\Microsoft SDKs\Windows`

const (
	toolsKey64        = "WinSDK-NetFx40Tools-x64"
	toolsKey32        = "WinSDK-NetFx40Tools"
	installFolder     = "InstallationFolder"
	currentInstallDir = "CurrentInstallFolder"
)

// Locator finds sn.exe on disk or through the SDK registry entries.
// The first path found is kept for the lifetime of the Locator; a failed
// search is retried on the next call. Locator is safe for concurrent use.
type Locator struct {
	fs         FileSystem
	env        Environment
	registry   registry.Registry
	candidates Candidates
	logger     *log.Logger

	// mu guards path and serializes searches.
	mu   sync.Mutex
	path string
}

// NewLocator creates a Locator.
func NewLocator(fs FileSystem, env Environment, reg registry.Registry, opts ...Option) (*Locator, error) {
	if fs == nil {
		return nil, errors.InvalidArgument("fileSystem")
	}
	if env == nil {
		return nil, errors.InvalidArgument("environment")
	}
	if reg == nil {
		return nil, errors.InvalidArgument("registry")
	}

	o := newOptions(opts)
	return &Locator{
		fs:         fs,
		env:        env,
		registry:   reg,
		candidates: o.candidates,
		logger:     o.logger,
	}, nil
}

// GetPath returns the path to sn.exe.
func (l *Locator) GetPath() (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.path != "" {
		return l.path, nil
	}

	path, ok := l.fromDisk()
	if !ok {
		path, ok = l.fromRegistry()
	}
	if !ok {
		return "", errToolNotFound()
	}

	l.logger.Debug("located tool", "path", path)
	l.path = path
	return path, nil
}

func (l *Locator) fromDisk() (string, bool) {
	for _, candidate := range l.candidates.Paths(l.env.ProgramFilesX86(), l.env.Is64BitOperatingSystem()) {
		if l.exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (l *Locator) fromRegistry() (string, bool) {
	root, ok, err := l.registry.OpenKey(registry.LocalMachine, SDKRegistryKey)
	if err != nil {
		l.logger.Debug("cannot open sdk registry key", "key", SDKRegistryKey, "err", err)
		return "", false
	}
	if !ok {
		l.logger.Debug("sdk registry key not found", "key", SDKRegistryKey)
		return "", false
	}
	defer l.close(root)

	names, err := root.SubKeyNames()
	if err != nil {
		l.logger.Debug("cannot enumerate sdk registry key", "key", SDKRegistryKey, "err", err)
		return "", false
	}

	for _, name := range names {
		if path, ok := l.fromSDKKey(root, name); ok {
			return path, true
		}
	}
	return "", false
}

// fromSDKKey resolves sn.exe from one SDK version key. The key is closed
// before returning.
func (l *Locator) fromSDKKey(root registry.Key, name string) (string, bool) {
	sdk, ok, err := root.OpenKey(name)
	if err != nil {
		l.logger.Debug("cannot open sdk key", "sdk", name, "err", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	defer l.close(sdk)

	for _, lookup := range l.folderLookups() {
		folder, answered := lookup(sdk, name)
		if !answered {
			continue
		}
		if folder == "" {
			return "", false
		}
		path := joinWindows(folder, ExecutableName)
		if !l.exists(path) {
			return "", false
		}
		return path, true
	}
	return "", false
}

// folderLookup reads an install folder from an SDK key. answered is false
// when the lookup does not apply to the key and the next one should be
// tried. A blank folder is returned as "".
type folderLookup func(sdk registry.Key, name string) (folder string, answered bool)

func (l *Locator) folderLookups() []folderLookup {
	return []folderLookup{l.toolsFolder, l.currentInstallFolder}
}

// toolsFolder reads InstallationFolder from the architecture specific
// .NET 4 tools key.
func (l *Locator) toolsFolder(sdk registry.Key, name string) (string, bool) {
	keyName := toolsKey32
	if l.env.Is64BitOperatingSystem() {
		keyName = toolsKey64
	}

	tools, ok, err := sdk.OpenKey(keyName)
	if err != nil {
		l.logger.Debug("cannot open tools key", "sdk", name, "key", keyName, "err", err)
		return "", true
	}
	if !ok {
		return "", false
	}
	defer l.close(tools)

	return l.stringValue(tools, name, installFolder), true
}

// currentInstallFolder reads CurrentInstallFolder from the SDK key itself.
func (l *Locator) currentInstallFolder(sdk registry.Key, name string) (string, bool) {
	return l.stringValue(sdk, name, currentInstallDir), true
}

func (l *Locator) stringValue(key registry.Key, sdk, name string) string {
	v, ok, err := key.StringValue(name)
	if err != nil {
		l.logger.Debug("cannot read registry value", "sdk", sdk, "value", name, "err", err)
		return ""
	}
	if !ok || strings.TrimSpace(v) == "" {
		return ""
	}
	return v
}

func (l *Locator) exists(path string) bool {
	ok, err := l.fs.FileExists(path)
	if err != nil {
		l.logger.Debug("existence check failed", "path", path, "err", err)
		return false
	}
	l.logger.Debug("probed", "path", path, "exists", ok)
	return ok
}

func (l *Locator) close(key registry.Key) {
	if err := key.Close(); err != nil {
		l.logger.Debug("cannot close registry key", "err", err)
	}
}
