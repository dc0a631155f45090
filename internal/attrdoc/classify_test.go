package attrdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give string // value expression
		want Classification
	}{
		{desc: "or default", give: "a.x or 1", want: PlainDefault{Shown: "1"}},
		{desc: "or null", give: "a.x or null", want: AbsentDefault{}},
		{desc: "or function", give: "a.x or (y: y)", want: PlainDefault{Shown: "(y: y)"}},
		{
			desc: "or keeps inner whitespace",
			give: "a.x  or  [ 1  2 ]",
			want: PlainDefault{Shown: "[ 1  2 ]"},
		},
		{
			desc: "or set",
			give: `a.x or { RUST_BACKTRACE = "1"; }`,
			want: PlainDefault{Shown: `{ RUST_BACKTRACE = "1"; }`},
		},
		{desc: "or string null", give: `a.x or "null"`, want: PlainDefault{Shown: `"null"`}},
		{desc: "default function", give: "default 8080 null", want: PlainDefault{Shown: "8080"}},
		{desc: "default function absent", give: "default null a.x", want: AbsentDefault{}},
		{
			desc: "wrapped",
			give: `allowFun a "x" [ 1 ]`,
			want: WrappedDefault{Shown: "[ 1 ]"},
		},
		{
			desc: "wrapped string",
			give: `allowFun attrs0 "cargoBuild" ''cargo build''`,
			want: WrappedDefault{Shown: "''cargo build''"},
		},
		{desc: "wrapped too short", give: `allowFun a "x"`, want: NoDefault{}},
		{desc: "wrapped too long", give: `allowFun a "x" 1 2`, want: NoDefault{}},
		{desc: "other function", give: `other a "x" 1`, want: NoDefault{}},
		{desc: "single application", give: "f x", want: NoDefault{}},
		{desc: "lambda", give: "x: x", want: BareLambda{}},
		{desc: "pattern lambda", give: "{ a, b ? 1 }: a", want: BareLambda{}},
		{desc: "parenthesized lambda", give: "(x: x)", want: NoDefault{}},
		{desc: "literal", give: "42", want: NoDefault{}},
		{desc: "select", give: "a.x", want: NoDefault{}},
		{desc: "string", give: `"x"`, want: NoDefault{}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			tree := parse(t, tt.give)
			var c Classifier
			assert.Equal(t, tt.want, c.Classify(tree.Root().FirstChildNode()))
		})
	}
}

func TestClassifier_Classify_nil(t *testing.T) {
	t.Parallel()

	var c Classifier
	assert.Equal(t, NoDefault{}, c.Classify(nil))
}

func TestClassifier_Classify_custom(t *testing.T) {
	t.Parallel()

	c := Classifier{
		Absent:       "none",
		Wrappers:     []string{"wrap", "lib.wrap"},
		DefaultFuncs: []string{"withDefault"},
		Depth:        2,
	}

	tests := []struct {
		desc string
		give string
		want Classification
	}{
		{desc: "absent", give: "a.x or none", want: AbsentDefault{}},
		{desc: "null is a value", give: "a.x or null", want: PlainDefault{Shown: "null"}},
		{desc: "default func", give: "withDefault 3 a", want: PlainDefault{Shown: "3"}},
		{desc: "builtin default func", give: "default 3 a", want: NoDefault{}},
		{desc: "wrapper", give: "wrap a 1", want: WrappedDefault{Shown: "1"}},
		{desc: "selected wrapper", give: "lib.wrap a 1", want: WrappedDefault{Shown: "1"}},
		{desc: "builtin wrapper", give: `allowFun a "x" 1`, want: NoDefault{}},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			tree := parse(t, tt.give)
			assert.Equal(t, tt.want, c.Classify(tree.Root().FirstChildNode()))
		})
	}
}

// Values that differ only in surrounding whitespace
// classify the same way.
func TestClassifier_Classify_whitespace(t *testing.T) {
	t.Parallel()

	var c Classifier
	for _, give := range [][2]string{
		{"a.x or 1", "a.x\n  or\n  1"},
		{`allowFun a "x" [ 1 ]`, "allowFun\ta\n\"x\"   [ 1 ]"},
		{"default 1 a", "default  1  a"},
	} {
		left := c.Classify(parse(t, give[0]).Root().FirstChildNode())
		right := c.Classify(parse(t, give[1]).Root().FirstChildNode())
		assert.Equal(t, left, right, "%q and %q", give[0], give[1])
	}
}
