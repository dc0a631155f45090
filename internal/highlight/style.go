package highlight

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// PlainStyle is a minimal syntax highlighting style for Chroma.
// It leaves most text as-is, fades comments,
// and sets keywords and strings apart.
var PlainStyle = chroma.MustNewStyle("attrdoc-plain", map[chroma.TokenType]string{
	chroma.Comment:       "#666666",
	chroma.Keyword:       "bold",
	chroma.LiteralString: "#22863a",
	chroma.NameAttribute: "#005cc5",
	chroma.PreWrapper:    "bg:#f6f8fa",
	chroma.Background:    "bg:#f6f8fa",
})

func init() {
	styles.Register(PlainStyle)
}
