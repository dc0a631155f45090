// Package highlight renders Nix expressions as syntax-highlighted HTML.
// It uses the Chroma library for styling and HTML output.
//
// Expressions are tokenized by [NixLexer] into a [Code] value,
// which is comprised of one or more [Span]s,
// and rendered by a [Highlighter].
package highlight
