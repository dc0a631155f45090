package attrdoc

import (
	"errors"
	"fmt"

	"go.abhg.dev/attrdoc/internal/nixsyntax"
)

var (
	// ErrNotFound indicates that the let block has no binding
	// named after the marker identifier.
	ErrNotFound = errors.New("marker binding not found")

	// ErrMissingKey indicates a record field without a name.
	ErrMissingKey = errors.New("field has no key")

	// ErrNoComment indicates a record field without documentation.
	ErrNoComment = errors.New("field has no documentation comment")
)

// StructureError reports that the file does not have the expected
// function, let-binding, and record shape.
type StructureError struct {
	Reason string             // what was wrong, e.g. "root is not a function"
	Pos    nixsyntax.Position // where the unexpected node starts
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Reason)
}

func structureError(n *nixsyntax.Node, reason string) error {
	return &StructureError{
		Reason: reason,
		Pos:    n.Tree().Position(n.Range().Start),
	}
}

// EntryError is a failure attributed to a single record field.
type EntryError struct {
	Name string // empty if the field has no name
	Pos  nixsyntax.Position
	Err  error
}

func (e *EntryError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%d:%d: %v", e.Pos.Line, e.Pos.Column, e.Err)
	}
	return fmt.Sprintf("%d:%d: %s: %v", e.Pos.Line, e.Pos.Column, e.Name, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
