package config

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/jmgilman/go/strongname/errors"
)

// Issue is a single schema violation in a config file.
type Issue struct {
	// Path is the field path, e.g. "candidates.versions.0".
	Path string
	// Message is the CUE error message.
	Message string
	// Line is the 1-based line in the config file, or 0 if unknown.
	Line int
}

// String formats the issue as "path: message (line N)".
func (i Issue) String() string {
	var b strings.Builder
	if i.Path != "" {
		b.WriteString(i.Path)
		b.WriteString(": ")
	}
	b.WriteString(i.Message)
	if i.Line > 0 {
		fmt.Fprintf(&b, " (line %d)", i.Line)
	}
	return b.String()
}

// validate unifies data with schema and reports every violation. Optional
// fields may be left unset, but every field that is set must be concrete.
func validate(schema, data cue.Value) (cue.Value, error) {
	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.All()); err != nil {
		return cue.Value{}, invalidConfig(err, "config does not match schema")
	}
	return unified, nil
}

// invalidConfig wraps a CUE error as INVALID_CONFIGURATION with the
// individual issues attached under "issues".
func invalidConfig(err error, message string) error {
	issues := extractIssues(err)
	lines := make([]string, len(issues))
	for i, issue := range issues {
		lines[i] = issue.String()
	}
	return errors.WithContext(
		errors.Wrap(err, errors.CodeInvalidConfig, message),
		"issues", lines,
	)
}

// extractIssues splits a CUE error into its individual issues.
func extractIssues(err error) []Issue {
	if err == nil {
		return nil
	}

	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issue := Issue{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		}
		if positions := e.InputPositions(); len(positions) > 0 {
			issue.Line = positions[0].Line()
		}
		issues = append(issues, issue)
	}
	return issues
}
