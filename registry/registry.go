package registry

import "strings"

// Hive identifies a predefined registry root.
type Hive int

const (
	// LocalMachine is HKEY_LOCAL_MACHINE.
	LocalMachine Hive = iota
	// CurrentUser is HKEY_CURRENT_USER.
	CurrentUser
)

// String returns the conventional abbreviation of the hive.
func (h Hive) String() string {
	switch h {
	case LocalMachine:
		return "HKLM"
	case CurrentUser:
		return "HKCU"
	default:
		return "unknown"
	}
}

// Registry opens keys under a predefined hive.
//
// A key that does not exist is reported as (nil, false, nil); the error
// return is reserved for failures such as access denied.
type Registry interface {
	OpenKey(hive Hive, path string) (Key, bool, error)
}

// Key is an open registry key. Keys hold OS handles and must be closed.
type Key interface {
	// SubKeyNames returns the names of the immediate child keys in
	// enumeration order.
	SubKeyNames() ([]string, error)

	// OpenKey opens the named child key.
	OpenKey(name string) (Key, bool, error)

	// StringValue reads a string value. A missing value is ("", false, nil).
	StringValue(name string) (string, bool, error)

	// Close releases the key.
	Close() error
}

// splitPath splits a backslash separated key path, dropping empty segments.
func splitPath(path string) []string {
	parts := strings.Split(path, `\`)
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
