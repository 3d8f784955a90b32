package sn

import (
	"path/filepath"
	"strings"
)

// joinWindows joins path elements with backslashes. SDK locations are
// Windows paths even when the locator runs elsewhere.
func joinWindows(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for i, e := range elem {
		if i > 0 {
			e = strings.TrimLeft(e, `\/`)
		}
		e = strings.TrimRight(e, `\/`)
		if e != "" {
			parts = append(parts, e)
		}
	}
	return strings.Join(parts, `\`)
}

// isWindowsAbs reports whether p starts with a drive letter and separator
// or is a UNC path.
func isWindowsAbs(p string) bool {
	if strings.HasPrefix(p, `\\`) {
		return true
	}
	return len(p) >= 3 && isLetter(p[0]) && p[1] == ':' && (p[2] == '\\' || p[2] == '/')
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// makeAbsolute resolves p against base unless it is already absolute.
func makeAbsolute(p, base string) string {
	if filepath.IsAbs(p) || isWindowsAbs(p) || base == "" {
		return p
	}
	if isWindowsAbs(base) {
		return joinWindows(base, p)
	}
	return filepath.Join(base, p)
}
