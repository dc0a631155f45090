package render

import (
	"bytes"
	"fmt"
	"strings"

	"go.abhg.dev/attrdoc/internal/attrdoc"
)

const _tableHeader = "| Attribute | Description |\n| - | - |\n"

func writeTableSplit(buf *bytes.Buffer, records []*attrdoc.Record) {
	buf.WriteString(_tableHeader)
	for _, rec := range records {
		cell := strings.Join(rec.Doc, " ")
		if note, ok := defaultNote(rec.Class); ok {
			cell += " " + note
		}
		writeRow(buf, rec.Name, cell)
	}
}

func writeTableInline(buf *bytes.Buffer, records []*attrdoc.Record) {
	buf.WriteString(_tableHeader)
	for _, rec := range records {
		lines := append([]string(nil), rec.Doc...)
		if note, ok := defaultNote(rec.Class); ok {
			lines = append(lines, note)
		}
		writeRow(buf, rec.Name, strings.Join(lines, "<br/>"))
	}
}

func writeRow(buf *bytes.Buffer, name, cell string) {
	fmt.Fprintf(buf, "| %s | %s |\n", tableCell(codeSpan(name)), tableCell(cell))
}

// _lineBreaks folds line breaks into spaces.
// Other whitespace is kept as written.
var _lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// tableCell makes s safe to place inside a Markdown table cell.
// Pipes are escaped and line breaks are folded into spaces.
func tableCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return _lineBreaks.Replace(s)
}

func writeSections(buf *bytes.Buffer, records []*attrdoc.Record) {
	for i, rec := range records {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "### %s\n\n", codeSpan(rec.Name))
		for _, line := range rec.Doc {
			buf.WriteString(line)
			buf.WriteString("\n")
		}

		// Wrapped defaults don't get a code block.
		if def, ok := rec.Class.(attrdoc.PlainDefault); ok {
			fence := codeFence(def.Shown)
			fmt.Fprintf(buf, "\nDefault:\n\n%snix\n%s\n%s\n", fence, def.Shown, fence)
		}
	}
}

// codeSpan wraps s in an inline code span,
// using enough backticks that s may contain backticks.
func codeSpan(s string) string {
	tick := strings.Repeat("`", longestRun(s, '`')+1)
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		s = " " + s + " "
	}
	return tick + s + tick
}

// codeFence returns a fence for a code block holding s.
func codeFence(s string) string {
	return strings.Repeat("`", max(3, longestRun(s, '`')+1))
}

func longestRun(s string, c byte) int {
	var longest, cur int
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			cur = 0
			continue
		}
		cur++
		longest = max(longest, cur)
	}
	return longest
}
