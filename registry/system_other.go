//go:build !windows

package registry

// View selects the WOW64 registry view. It has no effect outside Windows.
type View uint32

const (
	// ViewDefault uses the view native to the running process.
	ViewDefault View = 0
	// View32 forces the 32-bit view.
	View32 View = 0x0200
	// View64 forces the 64-bit view.
	View64 View = 0x0100
)

// Option configures the system registry.
type Option func(*System)

// WithView selects the registry view keys are opened in.
func WithView(view View) Option {
	return func(s *System) {
		s.view = view
	}
}

// System is the host registry. Outside Windows there is no registry, so
// every key is reported absent.
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

// OpenKey always reports the key as absent.
func (s *System) OpenKey(Hive, string) (Key, bool, error) {
	return nil, false, nil
}
