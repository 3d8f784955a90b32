// Package platform describes the host the strong-name tool runs on.
package platform

import (
	"os"
	"runtime"
	"strings"
)

// Host reads the running machine.
type Host struct {
	getenv func(string) string
	getwd  func() (string, error)
	goarch string
}

// NewHost returns the environment of the current process.
func NewHost() *Host {
	return &Host{
		getenv: os.Getenv,
		getwd:  os.Getwd,
		goarch: runtime.GOARCH,
	}
}

// ProgramFilesX86 returns the 32-bit program files directory.
// On a 32-bit Windows install only ProgramFiles is set, and it is the
// 32-bit directory.
func (h *Host) ProgramFilesX86() string {
	if dir := h.getenv("ProgramFiles(x86)"); dir != "" {
		return dir
	}
	return h.getenv("ProgramFiles")
}

// Is64BitOperatingSystem reports whether the OS is 64-bit. A 32-bit
// process on 64-bit Windows sees PROCESSOR_ARCHITEW6432.
func (h *Host) Is64BitOperatingSystem() bool {
	if is64Bit(h.goarch) {
		return true
	}
	return h.getenv("PROCESSOR_ARCHITEW6432") != ""
}

// WorkingDirectory returns the process working directory, or "" when it
// cannot be determined.
func (h *Host) WorkingDirectory() string {
	wd, err := h.getwd()
	if err != nil {
		return ""
	}
	return wd
}

func is64Bit(arch string) bool {
	switch strings.ToLower(arch) {
	case "amd64", "arm64", "ppc64", "ppc64le", "s390x", "riscv64", "loong64", "mips64", "mips64le":
		return true
	}
	return false
}

// Static is a fixed environment for tests and for pinning values from
// configuration.
type Static struct {
	ProgramFiles string
	Is64Bit      bool
	WorkDir      string
}

// ProgramFilesX86 returns ProgramFiles.
func (s Static) ProgramFilesX86() string { return s.ProgramFiles }

// Is64BitOperatingSystem returns Is64Bit.
func (s Static) Is64BitOperatingSystem() bool { return s.Is64Bit }

// WorkingDirectory returns WorkDir.
func (s Static) WorkingDirectory() string { return s.WorkDir }
