package sn

import "time"

// Settings control a single sn.exe invocation.
type Settings struct {
	// Container is the key container used to re-sign. Required for resign.
	Container string

	// ForceVerification verifies even if verification is disabled for the
	// assembly in the registry (-vf instead of -v).
	ForceVerification bool

	// ToolPath overrides the located sn.exe. The file must exist.
	ToolPath string

	// WorkingDirectory is the base for relative paths and the working
	// directory of the process. Defaults to the environment's.
	WorkingDirectory string

	// Timeout bounds the process run. Zero means no timeout.
	Timeout time.Duration

	// Env holds extra environment variables, added on top of the
	// inherited environment of the current process.
	Env map[string]string

	// ArgumentCustomization may rewrite the arguments before they are used.
	// Returning nil keeps the original arguments.
	ArgumentCustomization func(*Arguments) *Arguments
}
