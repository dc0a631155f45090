package attrdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.abhg.dev/attrdoc/internal/nixsyntax"
)

func TestTarget_Entries(t *testing.T) {
	t.Parallel()

	tree := parse(t, `x: let mkAttrs = a: {
  one = 1;
  inherit (a) skipped;
  two.nested = a.two or 2;
  "three" = x: x;
}; in x`)
	target, err := Locate(tree, DefaultMarker)
	require.NoError(t, err)

	type entry struct{ Name, Value, Decl string }

	var got []entry
	for ent, err := range target.Entries() {
		require.NoError(t, err)
		got = append(got, entry{
			Name:  ent.Name,
			Value: nixsyntax.Shown(ent.Value),
			Decl:  nixsyntax.Shown(ent.Decl),
		})
	}

	assert.Equal(t, []entry{
		{Name: "one", Value: "1", Decl: "one = 1;"},
		{Name: "two", Value: "a.two or 2", Decl: "two.nested = a.two or 2;"},
		{Name: `"three"`, Value: "x: x", Decl: `"three" = x: x;`},
	}, got)
}

func TestTarget_Entries_restartable(t *testing.T) {
	t.Parallel()

	target, err := Locate(parse(t, "x: let mkAttrs = a: { a = 1; b = 2; }; in x"), DefaultMarker)
	require.NoError(t, err)

	names := func() []string {
		var names []string
		for ent, err := range target.Entries() {
			require.NoError(t, err)
			names = append(names, ent.Name)
		}
		return names
	}

	assert.Equal(t, []string{"a", "b"}, names())
	assert.Equal(t, []string{"a", "b"}, names())
}

func TestTarget_Entries_earlyExit(t *testing.T) {
	t.Parallel()

	target, err := Locate(parse(t, "x: let mkAttrs = a: { a = 1; b = 2; c = 3; }; in x"), DefaultMarker)
	require.NoError(t, err)

	var names []string
	for ent := range target.Entries() {
		names = append(names, ent.Name)
		if len(names) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestTarget_Entries_missingKey(t *testing.T) {
	t.Parallel()

	// The parser keeps going after a binding without a key,
	// so the tree is still usable.
	tree, err := nixsyntax.Parse([]byte("x: let mkAttrs = a: {\n  a = 1;\n  = 2;\n  c = 3;\n}; in x"))
	require.Error(t, err)

	target, err := Locate(tree, DefaultMarker)
	require.NoError(t, err)

	var (
		names []string
		errs  []error
	)
	for ent, err := range target.Entries() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		names = append(names, ent.Name)
	}

	assert.Equal(t, []string{"a"}, names)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrMissingKey)

	var entErr *EntryError
	require.ErrorAs(t, errs[0], &entErr)
	assert.Empty(t, entErr.Name)
	assert.Equal(t, nixsyntax.Position{Line: 3, Column: 3}, entErr.Pos)
}
