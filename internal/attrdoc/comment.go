package attrdoc

import (
	"slices"
	"strings"

	"braces.dev/errtrace"
	"go.abhg.dev/attrdoc/internal/nixsyntax"
)

// DocComment is the documentation attached to a field,
// one normalized line per element, in source order.
type DocComment []string

// Text returns the comment as a single newline-separated string.
func (dc DocComment) Text() string {
	return strings.Join(dc, "\n")
}

// Associate collects the comments immediately preceding decl.
//
// It walks backwards from decl, stepping out to the parent whenever
// it runs out of siblings. Comments are collected, whitespace is
// skipped, and the walk stops at the first other element.
// This finds comments placed before the field itself as well as those
// that the parser attached to an enclosing node.
//
// Associate returns ErrNoComment if no non-empty comment line is found.
func Associate(decl nixsyntax.Element) (DocComment, error) {
	// Every step visits a different element of the tree,
	// so the walk can't take more steps than there are elements.
	limit := 1
	for p := decl.Parent(); p != nil; p = p.Parent() {
		limit = p.Size()
	}

	var comments []string
	cur := decl
walk:
	for steps := 0; ; steps++ {
		if steps > limit {
			return nil, errtrace.Errorf("comment walk did not terminate after %d steps", limit)
		}

		prev := cur.PrevSiblingOrToken()
		if prev == nil {
			parent := cur.Parent()
			if parent == nil {
				break
			}
			cur = parent
			continue
		}
		cur = prev

		switch cur.Kind() {
		case nixsyntax.KindComment:
			comments = append(comments, cur.Text())
		case nixsyntax.KindWhitespace:
			// skip
		default:
			break walk
		}
	}
	slices.Reverse(comments)

	var doc DocComment
	for _, c := range comments {
		doc = append(doc, commentLines(c)...)
	}
	doc = trimBlank(doc)
	if len(doc) == 0 {
		return nil, errtrace.Wrap(ErrNoComment)
	}
	return doc, nil
}

// commentLines strips comment markers from a single comment token
// and returns its lines.
func commentLines(text string) []string {
	body, ok := strings.CutPrefix(text, "/*")
	if !ok {
		return []string{strings.TrimSpace(strings.TrimLeft(text, "#"))}
	}

	body = strings.TrimSuffix(body, "*/")
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "*")
		lines[i] = strings.TrimSpace(line)
	}
	return trimBlank(lines)
}

// trimBlank drops empty lines from both ends of lines.
func trimBlank(lines []string) []string {
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
