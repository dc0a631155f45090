package nixsyntax

import (
	"sort"
	"strings"
)

// Range is a half-open byte range [Start, End) in the source.
type Range struct {
	Start, End int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Element is a [Node] or a [Token] inside a syntax tree.
type Element interface {
	// Kind reports the kind of this element.
	Kind() Kind

	// Parent returns the node containing this element,
	// or nil for the root.
	Parent() *Node

	// Range reports the byte range of this element in the source.
	Range() Range

	// Text returns the source text covered by this element, verbatim.
	Text() string

	// PrevSiblingOrToken returns the element immediately before this one
	// inside the same parent, or nil if this is the first child.
	PrevSiblingOrToken() Element

	// NextSiblingOrToken returns the element immediately after this one
	// inside the same parent, or nil if this is the last child.
	NextSiblingOrToken() Element

	element()
}

var (
	_ Element = (*Node)(nil)
	_ Element = (*Token)(nil)
)

// Tree is a parsed Nix document.
// It owns all nodes and tokens inside it.
type Tree struct {
	src   string
	root  *Node
	lines []int // offsets at which each line starts
}

// Root returns the root node of the tree.
// Its kind is always [NodeRoot].
func (t *Tree) Root() *Node { return t.root }

// Source returns the text the tree was parsed from.
func (t *Tree) Source() string { return t.src }

// Position is a human-readable location in the source.
// Lines and columns are 1-indexed; columns count bytes.
type Position struct {
	Line, Column int
}

// Position converts a byte offset into a line and column.
func (t *Tree) Position(offset int) Position {
	line := sort.Search(len(t.lines), func(i int) bool {
		return t.lines[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}
	return Position{
		Line:   line + 1,
		Column: offset - t.lines[line] + 1,
	}
}

func lineStarts(src string) []int {
	lines := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lines = append(lines, i+1)
		}
	}
	return lines
}

// Node is an interior element of the syntax tree.
type Node struct {
	kind     Kind
	tree     *Tree
	parent   *Node
	index    int // position inside parent.children
	children []Element
	rng      Range
	size     int // number of elements in this subtree, including itself
}

func (*Node) element() {}

// Kind reports the kind of this node.
func (n *Node) Kind() Kind { return n.kind }

// Parent returns the node containing this node, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Range reports the byte range of this node.
func (n *Node) Range() Range { return n.rng }

// Text returns the source text of this node,
// including any trivia inside it.
func (n *Node) Text() string { return n.tree.src[n.rng.Start:n.rng.End] }

// Tree returns the tree that owns this node.
func (n *Node) Tree() *Tree { return n.tree }

// Size reports the number of nodes and tokens in this subtree,
// including the node itself.
func (n *Node) Size() int { return n.size }

// PrevSiblingOrToken returns the element before this node
// inside its parent.
func (n *Node) PrevSiblingOrToken() Element {
	return sibling(n.parent, n.index-1)
}

// NextSiblingOrToken returns the element after this node
// inside its parent.
func (n *Node) NextSiblingOrToken() Element {
	return sibling(n.parent, n.index+1)
}

// Children returns the direct children of this node,
// tokens included, in source order.
//
// The returned slice must not be modified.
func (n *Node) Children() []Element { return n.children }

// ChildNodes returns the direct children of this node that are nodes.
func (n *Node) ChildNodes() []*Node {
	var nodes []*Node
	for _, c := range n.children {
		if c, ok := c.(*Node); ok {
			nodes = append(nodes, c)
		}
	}
	return nodes
}

// FirstChildNode returns the first child node,
// or nil if this node has no child nodes.
func (n *Node) FirstChildNode() *Node {
	for _, c := range n.children {
		if c, ok := c.(*Node); ok {
			return c
		}
	}
	return nil
}

// ChildToken returns the first direct child token of the given kind,
// or nil if there isn't one.
func (n *Node) ChildToken(kind Kind) *Token {
	for _, c := range n.children {
		if t, ok := c.(*Token); ok && t.kind == kind {
			return t
		}
	}
	return nil
}

// Tokens calls fn on every token in this subtree, in source order.
// It stops early if fn returns false.
func (n *Node) Tokens(fn func(*Token) bool) bool {
	for _, c := range n.children {
		switch c := c.(type) {
		case *Token:
			if !fn(c) {
				return false
			}
		case *Node:
			if !c.Tokens(fn) {
				return false
			}
		}
	}
	return true
}

// Token is a leaf element of the syntax tree.
type Token struct {
	kind   Kind
	parent *Node
	index  int
	text   string
	offset int
}

func (*Token) element() {}

// Kind reports the kind of this token.
func (t *Token) Kind() Kind { return t.kind }

// Parent returns the node containing this token.
func (t *Token) Parent() *Node { return t.parent }

// Range reports the byte range of this token.
func (t *Token) Range() Range {
	return Range{Start: t.offset, End: t.offset + len(t.text)}
}

// Text returns the text of this token.
func (t *Token) Text() string { return t.text }

// PrevSiblingOrToken returns the element before this token
// inside its parent.
func (t *Token) PrevSiblingOrToken() Element {
	return sibling(t.parent, t.index-1)
}

// NextSiblingOrToken returns the element after this token
// inside its parent.
func (t *Token) NextSiblingOrToken() Element {
	return sibling(t.parent, t.index+1)
}

func sibling(parent *Node, idx int) Element {
	if parent == nil || idx < 0 || idx >= len(parent.children) {
		return nil
	}
	return parent.children[idx]
}

// Shown renders an element back to source text.
//
// The text is reproduced verbatim between the first and last
// significant tokens of the element;
// trivia at either edge is dropped.
func Shown(e Element) string {
	switch e := e.(type) {
	case *Token:
		if e.kind.IsTrivia() {
			return ""
		}
		return e.text
	case *Node:
		var first, last *Token
		e.Tokens(func(t *Token) bool {
			if !t.kind.IsTrivia() {
				if first == nil {
					first = t
				}
				last = t
			}
			return true
		})
		if first == nil {
			return ""
		}
		return e.tree.src[first.offset : last.offset+len(last.text)]
	default:
		return ""
	}
}

// Dump renders the structure of a subtree for debugging,
// one element per line, indented by depth.
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, e Element, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(e.Kind().String())
	if t, ok := e.(*Token); ok {
		sb.WriteString(" ")
		sb.WriteString(quoteText(t.text))
	}
	sb.WriteString("\n")
	if n, ok := e.(*Node); ok {
		for _, c := range n.children {
			dump(sb, c, depth+1)
		}
	}
}

func quoteText(s string) string {
	r := strings.NewReplacer("\n", `\n`, "\t", `\t`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// builder assembles a tree from a stream of tokens.
// Nodes are opened with start or startAt and closed with finish.
type builder struct {
	tree  *Tree
	stack []*Node
	pos   int // offset just past the last token added
}

func (b *builder) top() *Node { return b.stack[len(b.stack)-1] }

func (b *builder) start(kind Kind) {
	n := &Node{kind: kind, tree: b.tree}
	if len(b.stack) > 0 {
		parent := b.top()
		parent.children = append(parent.children, n)
	}
	b.stack = append(b.stack, n)
}

// checkpoint marks the current position in the open node
// so that a node may later be started retroactively with startAt.
func (b *builder) checkpoint() int {
	return len(b.top().children)
}

// startAt opens a node that adopts all children of the current node
// added since the checkpoint.
func (b *builder) startAt(cp int, kind Kind) {
	parent := b.top()
	n := &Node{
		kind:     kind,
		tree:     b.tree,
		children: append([]Element(nil), parent.children[cp:]...),
	}
	parent.children = append(parent.children[:cp], n)
	b.stack = append(b.stack, n)
}

func (b *builder) token(lx lexeme) {
	b.top().children = append(b.top().children, &Token{
		kind:   lx.Kind,
		text:   lx.Text,
		offset: lx.Offset,
	})
	b.pos = lx.Offset + len(lx.Text)
}

func (b *builder) finish() *Node {
	n := b.top()
	b.stack = b.stack[:len(b.stack)-1]

	n.size = 1
	for i, c := range n.children {
		switch c := c.(type) {
		case *Node:
			c.parent, c.index = n, i
			n.size += c.size
		case *Token:
			c.parent, c.index = n, i
			n.size++
		}
	}

	if len(n.children) == 0 {
		n.rng = Range{Start: b.pos, End: b.pos}
	} else {
		n.rng = Range{
			Start: n.children[0].Range().Start,
			End:   n.children[len(n.children)-1].Range().End,
		}
	}
	return n
}
