package attrdoc

import (
	"slices"

	"go.abhg.dev/attrdoc/internal/nixsyntax"
)

// Classification describes what a field's value says about its default.
//
// It is one of
// [NoDefault], [PlainDefault], [AbsentDefault], [WrappedDefault],
// and [BareLambda].
type Classification interface {
	classification()
}

type (
	// NoDefault is a value with no recognizable default.
	NoDefault struct{}

	// PlainDefault is a field that falls back to a default expression.
	//
	//	attrs.port or 8080
	//	default 8080 attrs.port
	PlainDefault struct {
		// Shown is the source text of the default expression.
		Shown string
	}

	// AbsentDefault is a field whose fallback is the absence marker.
	// It's documented as though it had no default.
	//
	//	attrs.name or null
	AbsentDefault struct{}

	// WrappedDefault is a field built by applying one of the wrapper
	// functions to the user's attributes and a default.
	// The user may pass a function that modifies the default
	// instead of a plain value.
	//
	//	allowFun attrs0 "cargoBuild" ''cargo build''
	WrappedDefault struct {
		// Shown is the source text of the final argument.
		Shown string
	}

	// BareLambda is a field whose value is a function.
	BareLambda struct{}
)

var (
	_ Classification = NoDefault{}
	_ Classification = PlainDefault{}
	_ Classification = AbsentDefault{}
	_ Classification = WrappedDefault{}
	_ Classification = BareLambda{}
)

func (NoDefault) classification()      {}
func (PlainDefault) classification()   {}
func (AbsentDefault) classification()  {}
func (WrappedDefault) classification() {}
func (BareLambda) classification()     {}

// Default values for the [Classifier] fields.
const (
	DefaultAbsent = "null"
	DefaultDepth  = 3
)

var (
	// DefaultWrappers are the functions recognized as wrappers
	// when Classifier.Wrappers is empty.
	DefaultWrappers = []string{"allowFun"}

	// DefaultFuncs are the functions recognized as taking a default
	// and a value when Classifier.DefaultFuncs is empty.
	DefaultFuncs = []string{"default"}
)

// Classifier decides the [Classification] of field values
// by matching on their syntactic shape.
//
// The zero value is ready to use with the default conventions.
type Classifier struct {
	// Absent is the source text that marks a default as missing.
	// Defaults to DefaultAbsent.
	Absent string

	// Wrappers lists functions that wrap a default value.
	// Defaults to DefaultWrappers.
	Wrappers []string

	// DefaultFuncs lists functions applied as 'f default value'.
	// Defaults to DefaultFuncs.
	DefaultFuncs []string

	// Depth is the number of applications between a wrapped field's
	// value and the wrapper function.
	// Defaults to DefaultDepth.
	Depth int
}

// Classify reports the classification of a field's value.
// A nil value is NoDefault.
//
// Shapes are tried in order and the first match wins:
//
//  1. a field with a default, either 'x.a or D' or 'default D x'
//  2. a chain of applications of a wrapper function
//  3. a function
func (c *Classifier) Classify(value *nixsyntax.Node) Classification {
	switch e := nixsyntax.Cast(value).(type) {
	case *nixsyntax.OrDefault:
		return c.fieldDefault(e.Default())

	case *nixsyntax.Apply:
		if def, ok := c.defaultCall(e); ok {
			return c.fieldDefault(def)
		}
		return c.wrapped(e)

	case *nixsyntax.Lambda:
		return BareLambda{}
	}
	return NoDefault{}
}

func (c *Classifier) fieldDefault(def *nixsyntax.Node) Classification {
	if def == nil {
		return NoDefault{}
	}

	absent := c.Absent
	if absent == "" {
		absent = DefaultAbsent
	}

	shown := nixsyntax.Shown(def)
	if shown == absent {
		return AbsentDefault{}
	}
	return PlainDefault{Shown: shown}
}

// defaultCall matches 'f D x' where f is one of DefaultFuncs,
// and returns D.
func (c *Classifier) defaultCall(outer *nixsyntax.Apply) (*nixsyntax.Node, bool) {
	inner, ok := nixsyntax.Cast(outer.Lambda()).(*nixsyntax.Apply)
	if !ok {
		return nil, false
	}
	fn := inner.Lambda()
	if fn == nil {
		return nil, false
	}

	funcs := c.DefaultFuncs
	if len(funcs) == 0 {
		funcs = DefaultFuncs
	}
	if !slices.Contains(funcs, nixsyntax.Shown(fn)) {
		return nil, false
	}
	return inner.Argument(), true
}

// wrapped matches a chain of Depth applications
// whose innermost function is one of Wrappers.
func (c *Classifier) wrapped(outer *nixsyntax.Apply) Classification {
	depth := c.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}

	cur := outer.Syntax()
	for range depth {
		app, ok := nixsyntax.Cast(cur).(*nixsyntax.Apply)
		if !ok {
			return NoDefault{}
		}
		cur = app.Lambda()
	}
	if cur == nil {
		return NoDefault{}
	}

	wrappers := c.Wrappers
	if len(wrappers) == 0 {
		wrappers = DefaultWrappers
	}
	if !slices.Contains(wrappers, nixsyntax.Shown(cur)) {
		return NoDefault{}
	}

	arg := outer.Argument()
	if arg == nil {
		return NoDefault{}
	}
	return WrappedDefault{Shown: nixsyntax.Shown(arg)}
}
