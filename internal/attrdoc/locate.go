package attrdoc

import (
	"fmt"

	"braces.dev/errtrace"
	"go.abhg.dev/attrdoc/internal/nixsyntax"
)

// DefaultMarker is the name of the binding holding the options record.
const DefaultMarker = "mkAttrs"

// Target is the options record found by [Locate].
type Target struct {
	// Binding is the let binding named after the marker.
	Binding *nixsyntax.KeyValue

	// Lambda is the function bound to the marker.
	Lambda *nixsyntax.Lambda

	// Set is the record returned by Lambda.
	Set *nixsyntax.AttrSet
}

// Locate finds the options record inside a parsed file.
//
// The root of the file must be a function whose body is a let-in.
// The first binding in that let-in whose name starts with marker
// must be a function returning an attribute set literal.
func Locate(tree *nixsyntax.Tree, marker string) (*Target, error) {
	root := tree.Root()
	inner := root.FirstChildNode()
	if inner == nil {
		return nil, errtrace.Wrap(structureError(root, "root is not a function"))
	}

	lambda, ok := nixsyntax.Cast(inner).(*nixsyntax.Lambda)
	if !ok {
		return nil, errtrace.Wrap(structureError(inner, "root is not a function"))
	}

	body := lambda.Body()
	let, ok := nixsyntax.Cast(body).(*nixsyntax.LetIn)
	if !ok {
		at := inner
		if body != nil {
			at = body
		}
		return nil, errtrace.Wrap(structureError(at, "body is not a let-binding"))
	}

	binding := findBinding(let, marker)
	if binding == nil {
		return nil, errtrace.Wrap(fmt.Errorf("%q: %w", marker, ErrNotFound))
	}

	value := binding.Value()
	fn, ok := nixsyntax.Cast(value).(*nixsyntax.Lambda)
	if !ok {
		return nil, errtrace.Wrap(structureError(binding.Syntax(), "not a record pattern"))
	}
	set, ok := nixsyntax.Cast(fn.Body()).(*nixsyntax.AttrSet)
	if !ok {
		return nil, errtrace.Wrap(structureError(value, "not a record pattern"))
	}

	return &Target{
		Binding: binding,
		Lambda:  fn,
		Set:     set,
	}, nil
}

// findBinding returns the first binding whose leading path segment
// is the marker, or nil.
func findBinding(let *nixsyntax.LetIn, marker string) *nixsyntax.KeyValue {
	for _, kv := range let.Entries() {
		key := kv.Key()
		if key == nil {
			continue
		}
		if path := key.Path(); len(path) > 0 && nixsyntax.Shown(path[0]) == marker {
			return kv
		}
	}
	return nil
}
