package main

import (
	"bytes"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/attrdoc/internal/attrdoc"
	"go.abhg.dev/attrdoc/internal/nixsyntax"
	"go.abhg.dev/attrdoc/internal/render"
)

// Parser parses Nix source code into a syntax tree.
type Parser interface {
	Parse(src []byte) (*nixsyntax.Tree, error)
}

// ParseFunc adapts a function into a [Parser].
type ParseFunc func(src []byte) (*nixsyntax.Tree, error)

var _ Parser = ParseFunc(nixsyntax.Parse)

// Parse calls the function.
func (f ParseFunc) Parse(src []byte) (*nixsyntax.Tree, error) {
	return f(src)
}

// Extractor finds the options in a syntax tree
// and collects their documentation.
type Extractor interface {
	Extract(*nixsyntax.Tree) ([]*attrdoc.Record, error)
}

var _ Extractor = (*attrdoc.Extractor)(nil)

// Renderer writes the documentation for a list of options.
type Renderer interface {
	Render(io.Writer, []*attrdoc.Record) error
}

var _ Renderer = (*render.Renderer)(nil)

// Generator generates documentation for a Nix file.
//
// In terms of code organization,
// Generator's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Generator struct {
	Log       *log.Logger
	Parser    Parser
	Extractor Extractor
	Renderer  Renderer
}

// Generate reads the file at path and writes its documentation to w.
//
// Output is written only if every step succeeds.
func (g *Generator) Generate(w io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errtrace.Wrap(err)
	}

	g.Log.Printf("Parsing %v", path)
	tree, err := g.Parser.Parse(src)
	if err != nil {
		return errtrace.Errorf("%v: %w", path, err)
	}

	records, err := g.Extractor.Extract(tree)
	if err != nil {
		return errtrace.Errorf("%v: %w", path, err)
	}
	g.Log.Printf("Rendering %d options", len(records))

	var buf bytes.Buffer
	if err := g.Renderer.Render(&buf, records); err != nil {
		return errtrace.Errorf("render: %w", err)
	}

	_, err = w.Write(buf.Bytes())
	return errtrace.Wrap(err)
}
