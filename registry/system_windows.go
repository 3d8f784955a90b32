//go:build windows

package registry

import (
	stderrors "errors"

	"golang.org/x/sys/windows/registry"
)

// View selects the WOW64 registry view.
type View uint32

const (
	// ViewDefault uses the view native to the running process.
	ViewDefault View = 0
	// View32 forces the 32-bit view (WOW6432Node on 64-bit Windows).
	View32 View = registry.WOW64_32KEY
	// View64 forces the 64-bit view.
	View64 View = registry.WOW64_64KEY
)

// Option configures the system registry.
type Option func(*System)

// WithView selects the registry view keys are opened in.
func WithView(view View) Option {
	return func(s *System) {
		s.view = view
	}
}

// System reads the Windows registry through golang.org/x/sys/windows/registry.
type System struct {
	view View
}

// NewSystem returns the host registry.
func NewSystem(opts ...Option) *System {
	s := &System{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenKey opens path under hive for reading.
func (s *System) OpenKey(hive Hive, path string) (Key, bool, error) {
	var root registry.Key
	switch hive {
	case LocalMachine:
		root = registry.LOCAL_MACHINE
	case CurrentUser:
		root = registry.CURRENT_USER
	default:
		return nil, false, nil
	}
	return openKey(root, path, s.view)
}

func openKey(parent registry.Key, path string, view View) (Key, bool, error) {
	k, err := registry.OpenKey(parent, path, registry.READ|uint32(view))
	if err != nil {
		if stderrors.Is(err, registry.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return &systemKey{key: k, view: view}, true, nil
}

type systemKey struct {
	key  registry.Key
	view View
}

func (k *systemKey) SubKeyNames() ([]string, error) {
	return k.key.ReadSubKeyNames(-1)
}

func (k *systemKey) OpenKey(name string) (Key, bool, error) {
	return openKey(k.key, name, k.view)
}

func (k *systemKey) StringValue(name string) (string, bool, error) {
	v, _, err := k.key.GetStringValue(name)
	if err != nil {
		if stderrors.Is(err, registry.ErrNotExist) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (k *systemKey) Close() error {
	return k.key.Close()
}
