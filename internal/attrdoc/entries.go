package attrdoc

import (
	"iter"

	"braces.dev/errtrace"
	"go.abhg.dev/attrdoc/internal/nixsyntax"
)

// Entry is a single field of the options record.
type Entry struct {
	// Name is the first segment of the field's attribute path.
	Name string

	// Value is the expression bound to the field.
	// It may be nil if the binding has no value.
	Value *nixsyntax.Node

	// Decl is the binding node for the whole field.
	// Its leading trivia holds the field's documentation.
	Decl *nixsyntax.Node
}

// Entries returns the fields of the options record in source order.
//
// The sequence may be ranged over any number of times.
// It stops after the first error.
// inherit statements are not fields and are skipped.
func (t *Target) Entries() iter.Seq2[*Entry, error] {
	return func(yield func(*Entry, error) bool) {
		for _, kv := range t.Set.Entries() {
			decl := kv.Syntax()

			var path []*nixsyntax.Node
			if key := kv.Key(); key != nil {
				path = key.Path()
			}
			if len(path) == 0 {
				yield(nil, errtrace.Wrap(&EntryError{
					Pos: decl.Tree().Position(decl.Range().Start),
					Err: ErrMissingKey,
				}))
				return
			}

			ent := &Entry{
				Name:  nixsyntax.Shown(path[0]),
				Value: kv.Value(),
				Decl:  decl,
			}
			if !yield(ent, nil) {
				return
			}
		}
	}
}
