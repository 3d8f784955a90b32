package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmgilman/go/strongname/errors"
	"github.com/jmgilman/go/strongname/exec"
)

// classify turns a failed sn.exe run into a PROCESS_FAILED or TIMEOUT error
// carrying the exit code and output. Other errors pass through.
func classify(err error) error {
	var execErr *exec.ExecError
	if !errors.As(err, &execErr) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.WithContext(
			errors.Wrap(err, errors.CodeTimeout, "sn.exe timed out"),
			"exit_code", execErr.ExitCode,
		)
	}
	return errors.WithContextMap(
		errors.Wrap(err, errors.CodeProcessFailed, "sn.exe failed"),
		map[string]interface{}{
			"exit_code": execErr.ExitCode,
			"stderr":    execErr.Stderr,
		},
	)
}

// renderError writes err either styled for a terminal or as JSON.
func renderError(w io.Writer, err error, asJSON bool) {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(errors.ToJSON(err))
		return
	}

	msg := err.Error()
	var perr errors.PlatformError
	if errors.As(err, &perr) {
		msg = perr.Message()
		if cause := perr.Unwrap(); cause != nil {
			msg += ": " + cause.Error()
		}
		_, _ = fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), msg)
		_, _ = fmt.Fprintf(w, "%s\n", SubtitleStyle.Render(string(perr.Code())))
		return
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), msg)
}
