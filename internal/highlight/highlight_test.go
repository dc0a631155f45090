package highlight

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestHighlighter_Highlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give Span
		want string
	}{
		{
			desc: "text",
			give: &TextSpan{
				Text: []byte("a < b"),
			},
			want: "a &lt; b",
		},
		{
			desc: "highlight",
			give: &TokenSpan{
				Tokens: []chroma.Token{
					{Type: chroma.Comment, Value: "/* foo */"},
					{Type: chroma.Text, Value: "bar"},
				},
			},
			want: `<span class="c">/* foo */</span>bar`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			h := Highlighter{
				Style:      PlainStyle,
				UseClasses: true,
			}
			want := `<pre class="chroma">` + tt.want + "</pre>"
			got := h.Highlight(&Code{
				Spans: []Span{tt.give},
			})
			assert.Equal(t, want, got)
		})
	}

	t.Run("nil", func(t *testing.T) {
		var h Highlighter
		assert.Empty(t, h.Highlight(nil))
	})

	t.Run("unknown", func(t *testing.T) {
		type unknownSpan struct{ Span }

		assert.Panics(t, func() {
			h := Highlighter{
				Style: PlainStyle,
			}
			h.Highlight(&Code{
				Spans: []Span{unknownSpan{}},
			})
		})
	})
}

func TestHighlighter_Highlight_noClasses(t *testing.T) {
	t.Parallel()

	var h Highlighter // PlainStyle by default
	want := `<pre style="background-color: #f6f8fa">` +
		`<span style="color:#666">/* foo */</span>bar` +
		`</pre>`
	got := h.Highlight(&Code{
		Spans: []Span{
			&TokenSpan{
				Tokens: []chroma.Token{
					{Type: chroma.Comment, Value: "/* foo */"},
					{Type: chroma.Text, Value: "bar"},
				},
			},
		},
	})
	assert.Equal(t, want, got)
}

func TestHighlighter_Source(t *testing.T) {
	t.Parallel()

	const src = `let a = { x = "1"; }; in a.x or null`

	h := Highlighter{UseClasses: true}
	got := h.Source(src)

	doc, err := html.Parse(strings.NewReader(got))
	require.NoError(t, err, "invalid HTML:\n%v", got)

	pre := cascadia.MustCompile("pre.chroma").MatchFirst(doc)
	require.NotNil(t, pre, "no <pre>:\n%v", got)
	assert.Equal(t, src, allText(pre))

	var keywords []string
	for _, n := range cascadia.QueryAll(pre, cascadia.MustCompile("span.k")) {
		keywords = append(keywords, allText(n))
	}
	assert.Equal(t, []string{"let", "in", "or"}, keywords)
}

func TestHighlighter_Source_lexerError(t *testing.T) {
	t.Parallel()

	h := Highlighter{UseClasses: true, Lexer: failLexer{}}
	assert.Equal(t, `<pre class="chroma">a &amp; b</pre>`, h.Source("a & b"))
}

func TestHighlighter_WriteCSS(t *testing.T) {
	t.Parallel()

	t.Run("classes", func(t *testing.T) {
		var sb strings.Builder
		h := Highlighter{UseClasses: true}
		require.NoError(t, h.WriteCSS(&sb))
		assert.Contains(t, sb.String(), ".chroma")
	})

	t.Run("inline", func(t *testing.T) {
		var sb strings.Builder
		var h Highlighter
		require.NoError(t, h.WriteCSS(&sb))
		assert.Empty(t, sb.String())
	})
}

type failLexer struct{}

func (failLexer) Lex([]byte) ([]chroma.Token, error) {
	return nil, errors.New("great sadness")
}

func allText(n *html.Node) string {
	var (
		sb    strings.Builder
		visit func(*html.Node)
	)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for n := n.FirstChild; n != nil; n = n.NextSibling {
			visit(n)
		}
	}
	visit(n)
	return sb.String()
}
