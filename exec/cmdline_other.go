//go:build !windows

package exec

import (
	osexec "os/exec"
)

// applyVerbatimArgs strips the double quotes around pre-quoted tokens,
// since argv needs no quoting outside Windows.
func applyVerbatimArgs(cmd *osexec.Cmd, args []string) {
	argv := make([]string, len(args))
	argv[0] = cmd.Args[0]
	for i, arg := range args[1:] {
		argv[i+1] = unquote(arg)
	}
	cmd.Args = argv
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}
