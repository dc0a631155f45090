package nixsyntax

import (
	"fmt"
	"strings"
)

// SyntaxError is a single problem found while parsing.
type SyntaxError struct {
	Offset int      // byte offset of the offending token
	Pos    Position // position of Offset
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Msg)
}

// ParseError reports that the source is not valid Nix.
// It holds every syntax error found, in source order.
type ParseError struct {
	Errors []*SyntaxError
}

func (e *ParseError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "parse error"
	case 1:
		return "parse error: " + e.Errors[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d parse errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n\t")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// describe returns a short human-readable description of a token kind
// for use in error messages.
func describe(k Kind) string {
	if k == kindEOF {
		return "end of input"
	}
	for _, op := range _operators {
		if op.kind == k {
			return fmt.Sprintf("%q", op.text)
		}
	}
	for text, kw := range _keywords {
		if kw == k {
			return fmt.Sprintf("%q", text)
		}
	}
	switch k {
	case KindLBrace:
		return `"{"`
	case KindRBrace, KindInterpEnd:
		return `"}"`
	case KindInterpStart:
		return `"${"`
	case KindStringStart, KindStringEnd:
		return "string quote"
	}
	return strings.ToLower(k.String())
}
