// Package render presents extracted option documentation.
//
// A [Renderer] writes a list of [attrdoc.Record]s in one of several
// [Mode]s: two styles of Markdown table, Markdown sections,
// or a standalone HTML page.
package render
