package nixsyntax

// Expr is a typed view of an expression node.
//
// Only the shapes needed to navigate a configuration file are modeled;
// everything else is an [*Other].
type Expr interface {
	// Syntax returns the node underlying this view.
	Syntax() *Node

	expr()
}

type (
	// Lambda is a function.
	//
	//	x: body
	//	{ a, b ? 1 }: body
	Lambda struct{ node *Node }

	// LetIn binds names for use in its body.
	//
	//	let a = 1; in body
	LetIn struct{ node *Node }

	// AttrSet is an attribute set literal.
	//
	//	{ a = 1; b = 2; }
	//	rec { a = 1; b = a; }
	AttrSet struct{ node *Node }

	// Apply is a function application with a single argument.
	// Applications with multiple arguments are nested:
	// f a b is Apply(Apply(f, a), b).
	Apply struct{ node *Node }

	// Select is an attribute selection.
	//
	//	set.a.b
	Select struct{ node *Node }

	// OrDefault is an attribute selection with a fallback value.
	//
	//	set.a or fallback
	OrDefault struct{ node *Node }

	// Ident is a reference to a name.
	Ident struct{ node *Node }

	// Other is any expression not modeled above.
	Other struct{ node *Node }
)

var (
	_ Expr = (*Lambda)(nil)
	_ Expr = (*LetIn)(nil)
	_ Expr = (*AttrSet)(nil)
	_ Expr = (*Apply)(nil)
	_ Expr = (*Select)(nil)
	_ Expr = (*OrDefault)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*Other)(nil)
)

func (*Lambda) expr()    {}
func (*LetIn) expr()     {}
func (*AttrSet) expr()   {}
func (*Apply) expr()     {}
func (*Select) expr()    {}
func (*OrDefault) expr() {}
func (*Ident) expr()     {}
func (*Other) expr()     {}

// Cast returns a typed view of the given node.
// It returns nil if n is nil.
func Cast(n *Node) Expr {
	if n == nil {
		return nil
	}
	switch n.kind {
	case NodeLambda:
		return &Lambda{n}
	case NodeLetIn:
		return &LetIn{n}
	case NodeAttrSet:
		return &AttrSet{n}
	case NodeApply:
		return &Apply{n}
	case NodeSelect:
		return &Select{n}
	case NodeOrDefault:
		return &OrDefault{n}
	case NodeIdent:
		return &Ident{n}
	default:
		return &Other{n}
	}
}

// Syntax returns the underlying node.
func (e *Lambda) Syntax() *Node { return e.node }

// Param returns the function's parameter:
// an [NodeIdent] or a [NodePattern].
func (e *Lambda) Param() *Node { return e.node.FirstChildNode() }

// Body returns the function's body.
func (e *Lambda) Body() *Node { return nodeAfter(e.node, KindColon) }

// Syntax returns the underlying node.
func (e *LetIn) Syntax() *Node { return e.node }

// Entries returns the key-value bindings of the let block in source order.
// Inherit statements are not included.
func (e *LetIn) Entries() []*KeyValue {
	var kvs []*KeyValue
	for _, c := range e.node.children {
		if t, ok := c.(*Token); ok && t.kind == KindIn {
			break
		}
		if n, ok := c.(*Node); ok && n.kind == NodeKeyValue {
			kvs = append(kvs, &KeyValue{n})
		}
	}
	return kvs
}

// Body returns the expression after "in".
func (e *LetIn) Body() *Node { return nodeAfter(e.node, KindIn) }

// Syntax returns the underlying node.
func (e *AttrSet) Syntax() *Node { return e.node }

// Recursive reports whether this is a "rec" attribute set.
func (e *AttrSet) Recursive() bool { return e.node.ChildToken(KindRec) != nil }

// Entries returns the key-value bindings of the set in source order.
// Inherit statements are not included.
func (e *AttrSet) Entries() []*KeyValue {
	var kvs []*KeyValue
	for _, n := range e.node.ChildNodes() {
		if n.kind == NodeKeyValue {
			kvs = append(kvs, &KeyValue{n})
		}
	}
	return kvs
}

// Syntax returns the underlying node.
func (e *Apply) Syntax() *Node { return e.node }

// Lambda returns the function being applied.
func (e *Apply) Lambda() *Node { return childNode(e.node, 0) }

// Argument returns the argument the function is applied to.
func (e *Apply) Argument() *Node { return childNode(e.node, 1) }

// Syntax returns the underlying node.
func (e *Select) Syntax() *Node { return e.node }

// Set returns the expression attributes are selected from.
func (e *Select) Set() *Node { return childNode(e.node, 0) }

// Attrpath returns the selected attribute path.
func (e *Select) Attrpath() *Key {
	if n := nodeAfter(e.node, KindDot); n != nil && n.kind == NodeKey {
		return &Key{n}
	}
	return nil
}

// Syntax returns the underlying node.
func (e *OrDefault) Syntax() *Node { return e.node }

// Index returns the selection that may fail.
func (e *OrDefault) Index() *Node { return childNode(e.node, 0) }

// Default returns the fallback expression after "or".
func (e *OrDefault) Default() *Node { return nodeAfter(e.node, KindOr) }

// Syntax returns the underlying node.
func (e *Ident) Syntax() *Node { return e.node }

// Name returns the identifier.
func (e *Ident) Name() string { return Shown(e.node) }

// Syntax returns the underlying node.
func (e *Other) Syntax() *Node { return e.node }

// KeyValue is a single binding inside an attribute set or let block.
//
//	key.path = value;
type KeyValue struct{ node *Node }

// AsKeyValue returns a KeyValue view of n, or nil if n is not a binding.
func AsKeyValue(n *Node) *KeyValue {
	if n == nil || n.kind != NodeKeyValue {
		return nil
	}
	return &KeyValue{n}
}

// Syntax returns the underlying node.
func (kv *KeyValue) Syntax() *Node { return kv.node }

// Key returns the attribute path being bound,
// or nil if the binding is malformed and has none.
func (kv *KeyValue) Key() *Key {
	for _, n := range kv.node.ChildNodes() {
		if n.kind == NodeKey {
			return &Key{n}
		}
	}
	return nil
}

// Value returns the expression bound to the key.
func (kv *KeyValue) Value() *Node { return nodeAfter(kv.node, KindAssign) }

// Key is a dotted attribute path.
type Key struct{ node *Node }

// Syntax returns the underlying node.
func (k *Key) Syntax() *Node { return k.node }

// Path returns the segments of the attribute path:
// identifiers, strings, or dynamic ${...} attributes.
func (k *Key) Path() []*Node {
	var segs []*Node
	for _, n := range k.node.ChildNodes() {
		if n.kind != NodeError {
			segs = append(segs, n)
		}
	}
	return segs
}

// childNode returns the i-th child node of n, or nil.
func childNode(n *Node, i int) *Node {
	for _, c := range n.children {
		if c, ok := c.(*Node); ok {
			if i == 0 {
				return c
			}
			i--
		}
	}
	return nil
}

// nodeAfter returns the first child node of n
// that follows a token of the given kind.
func nodeAfter(n *Node, kind Kind) *Node {
	seen := false
	for _, c := range n.children {
		switch c := c.(type) {
		case *Token:
			if c.kind == kind {
				seen = true
			}
		case *Node:
			if seen {
				return c
			}
		}
	}
	return nil
}
