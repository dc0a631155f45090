package render

import (
	"flag"
	"strconv"
	"strings"

	"braces.dev/errtrace"
)

// Mode selects the output format of a [Renderer].
type Mode int

const (
	// TableSplit renders a Markdown table with the description
	// on one line, followed by notes about the default value.
	TableSplit Mode = iota

	// TableInline renders a Markdown table with every line
	// of the description and the default value note
	// separated by line breaks.
	TableInline

	// Sections renders a Markdown heading for each option,
	// followed by its description and a code block with its default.
	Sections

	// HTML renders a standalone HTML page
	// with syntax-highlighted defaults.
	HTML
)

var _modeNames = []string{
	TableSplit:  "table-split",
	TableInline: "table-inline",
	Sections:    "sections",
	HTML:        "html",
}

// Modes lists the names of all supported modes.
func Modes() []string {
	return append([]string(nil), _modeNames...)
}

var _ flag.Getter = (*Mode)(nil)

// String returns the name of the mode, e.g. "table-split".
func (m Mode) String() string {
	if m >= 0 && int(m) < len(_modeNames) {
		return _modeNames[m]
	}
	return "Mode(" + strconv.Itoa(int(m)) + ")"
}

// Get returns the mode.
func (m *Mode) Get() any { return *m }

// Set parses a mode from its name.
func (m *Mode) Set(name string) error {
	for i, n := range _modeNames {
		if n == name {
			*m = Mode(i)
			return nil
		}
	}
	return errtrace.Errorf("unknown mode %q: must be one of %s",
		name, strings.Join(_modeNames, ", "))
}
