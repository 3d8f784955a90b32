package sn

import "strings"

type argument struct {
	value  string
	quoted bool
}

// Arguments is an ordered sn.exe command line, program excluded.
type Arguments struct {
	args []argument
}

// NewArguments returns an empty argument list.
func NewArguments() *Arguments {
	return &Arguments{}
}

// Append adds a token as-is.
func (a *Arguments) Append(value string) *Arguments {
	a.args = append(a.args, argument{value: value})
	return a
}

// AppendQuoted adds a token wrapped in double quotes.
func (a *Arguments) AppendQuoted(value string) *Arguments {
	a.args = append(a.args, argument{value: value, quoted: true})
	return a
}

// Len returns the number of tokens.
func (a *Arguments) Len() int {
	return len(a.args)
}

// Render returns the tokens as they appear on the command line.
func (a *Arguments) Render() []string {
	out := make([]string, len(a.args))
	for i, arg := range a.args {
		if arg.quoted {
			out[i] = `"` + arg.value + `"`
		} else {
			out[i] = arg.value
		}
	}
	return out
}

// String joins the rendered tokens with spaces.
func (a *Arguments) String() string {
	return strings.Join(a.Render(), " ")
}
