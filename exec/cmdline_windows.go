//go:build windows

package exec

import (
	osexec "os/exec"
	"strings"
	"syscall"
)

// applyVerbatimArgs hands the arguments to CreateProcess as a raw command
// line so pre-quoted tokens reach the tool unchanged.
func applyVerbatimArgs(cmd *osexec.Cmd, args []string) {
	line := syscall.EscapeArg(args[0])
	if len(args) > 1 {
		line += " " + strings.Join(args[1:], " ")
	}
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CmdLine = line
}
