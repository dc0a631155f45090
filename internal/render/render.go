package render

import (
	"bytes"
	"io"

	"braces.dev/errtrace"
	"go.abhg.dev/attrdoc/internal/attrdoc"
	"go.abhg.dev/attrdoc/internal/highlight"
)

// Highlighter renders Nix code into HTML.
type Highlighter interface {
	Source(src string) string
	WriteCSS(io.Writer) error
}

var _ Highlighter = (*highlight.Highlighter)(nil)

// Renderer writes option documentation in a chosen [Mode].
type Renderer struct {
	// Mode is the output format. Defaults to TableSplit.
	Mode Mode

	// Title of the HTML page. Defaults to "Options".
	// Unused by other modes.
	Title string

	// Highlighter renders default values in HTML mode.
	// Defaults to a class-based highlight.Highlighter.
	Highlighter Highlighter
}

// Render writes documentation for the given records to w.
//
// Nothing is written to w if rendering fails.
func (r *Renderer) Render(w io.Writer, records []*attrdoc.Record) error {
	var buf bytes.Buffer
	switch r.Mode {
	case TableSplit:
		writeTableSplit(&buf, records)
	case TableInline:
		writeTableInline(&buf, records)
	case Sections:
		writeSections(&buf, records)
	case HTML:
		if err := r.writeHTML(&buf, records); err != nil {
			return errtrace.Wrap(err)
		}
	default:
		return errtrace.Errorf("unsupported mode: %v", r.Mode)
	}

	_, err := w.Write(buf.Bytes())
	return errtrace.Wrap(err)
}

// _wrappedNote explains how to pass a value for a wrapped option.
const _wrappedNote = "The argument must be a function modifying the default value."

// defaultNote returns the note about an option's default value
// for use in Markdown tables, or false if there's nothing to say.
func defaultNote(c attrdoc.Classification) (string, bool) {
	switch c := c.(type) {
	case attrdoc.PlainDefault:
		return "Default: " + codeSpan(c.Shown), true
	case attrdoc.WrappedDefault:
		return _wrappedNote + " <br/> Default: " + codeSpan(c.Shown), true
	}
	return "", false
}
