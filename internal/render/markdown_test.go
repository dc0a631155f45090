package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		give string
		want string
	}{
		{give: "x", want: "`x`"},
		{give: "a`b", want: "``a`b``"},
		{give: "a``b", want: "```a``b```"},
		{give: "`a", want: "`` `a ``"},
		{give: "a`", want: "`` a` ``"},
	}

	for _, tt := range tests {
		t.Run(tt.give, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, codeSpan(tt.give))
		})
	}
}

func TestCodeFence(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "```", codeFence("x"))
	assert.Equal(t, "```", codeFence("a `b` c"))
	assert.Equal(t, "````", codeFence("```"))
	assert.Equal(t, "`````", codeFence("a ```` b"))
}

func TestTableCell(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a", tableCell("a"))
	assert.Equal(t, `a \| b`, tableCell("a | b"))
	assert.Equal(t, "a   b  c", tableCell("a\n  b\r\n c"))
	assert.Equal(t, `"a    b" c`, tableCell("\"a    b\"\nc"))
	assert.Equal(t, "a  b", tableCell("a  b"))
}
