package nixsyntax

import (
	"fmt"

	"braces.dev/errtrace"
)

// kindEOF is reported by the parser when there are no more tokens.
// It never appears in a tree.
const kindEOF Kind = -1

// _maxDepth bounds expression nesting so that hostile input
// cannot exhaust the stack.
const _maxDepth = 1000

// Binding powers of infix operators, loosest first.
const (
	bpImplies = iota + 1
	bpOrOr
	bpAnd
	bpEquality
	bpCompare
	bpUpdate
	bpNot
	bpAdd
	bpMul
	bpConcat
	bpHasAttr
	bpNegate
)

type infixOp struct {
	bp    int
	right bool // right-associative
}

var _infix = map[Kind]infixOp{
	KindImplies: {bp: bpImplies, right: true},
	KindOrOr:    {bp: bpOrOr},
	KindAnd:     {bp: bpAnd},
	KindEqual:   {bp: bpEquality},
	KindNotEq:   {bp: bpEquality},
	KindLess:    {bp: bpCompare},
	KindLessEq:  {bp: bpCompare},
	KindMore:    {bp: bpCompare},
	KindMoreEq:  {bp: bpCompare},
	KindUpdate:  {bp: bpUpdate, right: true},
	KindAdd:     {bp: bpAdd},
	KindSub:     {bp: bpAdd},
	KindMul:     {bp: bpMul},
	KindDiv:     {bp: bpMul},
	KindConcat:  {bp: bpConcat, right: true},
}

// Parse parses Nix source into a lossless syntax tree.
//
// If the source has syntax errors,
// Parse returns a best-effort tree along with a [*ParseError].
func Parse(src []byte) (*Tree, error) {
	tree := &Tree{
		src:   string(src),
		lines: lineStarts(string(src)),
	}
	p := parser{
		toks: lex(tree.src),
		b:    builder{tree: tree},
		tree: tree,
	}
	tree.root = p.parseRoot()

	if len(p.errs) > 0 {
		return tree, errtrace.Wrap(&ParseError{Errors: p.errs})
	}
	return tree, nil
}

type parser struct {
	toks  []lexeme
	pos   int
	b     builder
	tree  *Tree
	errs  []*SyntaxError
	depth int
}

// peek returns the kind of the next significant token.
// Trivia before it is added to the node currently being built.
func (p *parser) peek() Kind {
	for p.pos < len(p.toks) && p.toks[p.pos].Kind.IsTrivia() {
		p.b.token(p.toks[p.pos])
		p.pos++
	}
	if p.pos >= len(p.toks) {
		return kindEOF
	}
	return p.toks[p.pos].Kind
}

// peekN looks n significant tokens past the next one
// without consuming anything.
func (p *parser) peekN(n int) Kind {
	for i := p.pos; i < len(p.toks); i++ {
		if p.toks[i].Kind.IsTrivia() {
			continue
		}
		if n == 0 {
			return p.toks[i].Kind
		}
		n--
	}
	return kindEOF
}

// bump adds the next significant token to the current node.
func (p *parser) bump() {
	if p.peek() == kindEOF {
		return
	}
	p.b.token(p.toks[p.pos])
	p.pos++
}

func (p *parser) expect(k Kind) bool {
	if got := p.peek(); got != k {
		p.errorf("expected %v, found %v", describe(k), describe(got))
		return false
	}
	p.bump()
	return true
}

func (p *parser) errorf(format string, args ...any) {
	offset := len(p.tree.src)
	if p.pos < len(p.toks) {
		offset = p.toks[p.pos].Offset
	}
	p.errs = append(p.errs, &SyntaxError{
		Offset: offset,
		Pos:    p.tree.Position(offset),
		Msg:    fmt.Sprintf(format, args...),
	})
}

// recover reports an unexpected token and wraps it in an error node.
// Closing delimiters are left in place for the enclosing rule.
func (p *parser) recover(what string) {
	k := p.peek()
	p.errorf("expected %v, found %v", what, describe(k))
	p.b.start(NodeError)
	switch k {
	case kindEOF, KindRBrace, KindRBrack, KindRParen, KindSemi,
		KindIn, KindThen, KindElse, KindInterpEnd:
	default:
		p.bump()
	}
	p.b.finish()
}

func (p *parser) parseRoot() *Node {
	p.b.start(NodeRoot)
	if p.peek() == kindEOF {
		p.errorf("expected expression, found %v", describe(kindEOF))
	} else {
		p.parseExpr()
	}
	if p.peek() != kindEOF {
		p.errorf("unexpected %v after expression", describe(p.peek()))
		p.b.start(NodeError)
		for p.peek() != kindEOF {
			p.bump()
		}
		p.b.finish()
	}
	return p.b.finish()
}

// parseExpr parses a full expression,
// including functions, let-in, with, assert, and if-else.
func (p *parser) parseExpr() {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > _maxDepth {
		p.recover("shallower expression")
		return
	}

	switch p.peek() {
	case KindLet:
		if p.peekN(1) != KindLBrace {
			p.parseLetIn()
			return
		}

	case KindWith, KindAssert:
		kind := NodeWith
		if p.peek() == KindAssert {
			kind = NodeAssert
		}
		p.b.start(kind)
		p.bump()
		p.parseExpr()
		p.expect(KindSemi)
		p.parseExpr()
		p.b.finish()
		return

	case KindIf:
		p.b.start(NodeIfElse)
		p.bump()
		p.parseExpr()
		p.expect(KindThen)
		p.parseExpr()
		p.expect(KindElse)
		p.parseExpr()
		p.b.finish()
		return

	case KindIdent:
		switch p.peekN(1) {
		case KindColon:
			p.b.start(NodeLambda)
			p.parseIdent()
			p.bump() // :
			p.parseExpr()
			p.b.finish()
			return
		case KindAt:
			p.parsePatternLambda()
			return
		}

	case KindLBrace:
		if p.isPattern() {
			p.parsePatternLambda()
			return
		}
	}

	p.parseBinary(0)
}

// isPattern reports whether the '{' ahead opens a function argument pattern
// rather than an attribute set.
func (p *parser) isPattern() bool {
	switch p.peekN(1) {
	case KindEllipsis:
		return true
	case KindRBrace:
		next := p.peekN(2)
		return next == KindColon || next == KindAt
	case KindIdent:
		switch p.peekN(2) {
		case KindComma, KindQuestion:
			return true
		case KindRBrace:
			next := p.peekN(3)
			return next == KindColon || next == KindAt
		}
	}
	return false
}

// parsePatternLambda parses functions taking a pattern argument:
//
//	{ a, b ? 1, ... }: body
//	args@{ a, ... }: body
//	{ a, ... }@args: body
func (p *parser) parsePatternLambda() {
	p.b.start(NodeLambda)
	p.b.start(NodePattern)

	if p.peek() == KindIdent {
		p.b.start(NodePatBind)
		p.parseIdent()
		p.expect(KindAt)
		p.b.finish()
	}

	if p.expect(KindLBrace) {
		p.parsePatEntries()
		p.expect(KindRBrace)
	}

	if p.peek() == KindAt {
		p.b.start(NodePatBind)
		p.bump()
		if p.peek() == KindIdent {
			p.parseIdent()
		} else {
			p.recover("identifier")
		}
		p.b.finish()
	}
	p.b.finish() // pattern

	p.expect(KindColon)
	p.parseExpr()
	p.b.finish()
}

func (p *parser) parsePatEntries() {
	for {
		switch p.peek() {
		case KindRBrace, kindEOF:
			return
		case KindEllipsis:
			p.bump()
		case KindIdent:
			p.b.start(NodePatEntry)
			p.parseIdent()
			if p.peek() == KindQuestion {
				p.bump()
				p.parseExpr()
			}
			p.b.finish()
		default:
			before := p.pos
			p.recover("pattern entry")
			if p.pos == before {
				return
			}
			continue
		}

		switch p.peek() {
		case KindComma:
			p.bump()
		case KindRBrace:
			return
		default:
			p.recover(`"," or "}"`)
			return
		}
	}
}

func (p *parser) parseLetIn() {
	p.b.start(NodeLetIn)
	p.bump() // let
	p.parseBindings(KindIn)
	p.expect(KindIn)
	p.parseExpr()
	p.b.finish()
}

// parseBindings parses key-value and inherit bindings until end.
// The end token is not consumed.
func (p *parser) parseBindings(end Kind) {
	for {
		k := p.peek()
		if k == end || k == kindEOF {
			return
		}

		before := p.pos
		if k == KindInherit {
			p.parseInherit()
		} else {
			p.parseKeyValue()
		}
		if p.pos == before {
			// No progress. Skip the token to avoid looping forever.
			p.b.start(NodeError)
			p.bump()
			p.b.finish()
		}
	}
}

func (p *parser) parseKeyValue() {
	p.b.start(NodeKeyValue)
	if p.canStartAttr(p.peek()) {
		p.parseAttrpath()
		p.expect(KindAssign)
		p.parseExpr()
		p.expect(KindSemi)
	} else {
		p.recover("binding")
	}
	p.b.finish()
}

func (p *parser) parseInherit() {
	p.b.start(NodeInherit)
	p.bump() // inherit
	if p.peek() == KindLParen {
		p.b.start(NodeInheritFrom)
		p.bump()
		p.parseExpr()
		p.expect(KindRParen)
		p.b.finish()
	}
	for p.canStartAttr(p.peek()) {
		p.parseAttr()
	}
	p.expect(KindSemi)
	p.b.finish()
}

func (p *parser) canStartAttr(k Kind) bool {
	switch k {
	case KindIdent, KindOr, KindStringStart, KindInterpStart:
		return true
	}
	return false
}

// parseAttrpath parses a dotted attribute path into a Key node.
//
//	foo.bar."baz".${qux}
func (p *parser) parseAttrpath() {
	p.b.start(NodeKey)
	p.parseAttr()
	for p.peek() == KindDot {
		p.bump()
		p.parseAttr()
	}
	p.b.finish()
}

func (p *parser) parseAttr() {
	switch p.peek() {
	case KindIdent, KindOr:
		p.parseIdent()
	case KindStringStart:
		p.parseString()
	case KindInterpStart:
		p.b.start(NodeDynamic)
		p.bump()
		p.parseExpr()
		p.expect(KindInterpEnd)
		p.b.finish()
	default:
		p.recover("attribute name")
	}
}

func (p *parser) parseIdent() {
	p.b.start(NodeIdent)
	p.bump()
	p.b.finish()
}

// parseBinary parses unary and binary operator expressions
// whose operators bind tighter than minBP.
func (p *parser) parseBinary(minBP int) {
	p.peek()
	cp := p.b.checkpoint()

	switch p.peek() {
	case KindNot:
		p.b.start(NodeUnaryOp)
		p.bump()
		p.parseBinary(bpNot)
		p.b.finish()
	case KindSub:
		p.b.start(NodeUnaryOp)
		p.bump()
		p.parseBinary(bpNegate)
		p.b.finish()
	default:
		p.parseApply()
	}

	for {
		k := p.peek()
		if k == KindQuestion {
			if bpHasAttr <= minBP {
				return
			}
			p.b.startAt(cp, NodeHasAttr)
			p.bump()
			p.parseAttrpath()
			p.b.finish()
			continue
		}

		op, ok := _infix[k]
		if !ok || op.bp <= minBP {
			return
		}
		p.b.startAt(cp, NodeBinOp)
		p.bump()
		next := op.bp
		if op.right {
			next--
		}
		p.parseBinary(next)
		p.b.finish()
	}
}

// parseApply parses function application:
//
//	f a b
func (p *parser) parseApply() {
	p.peek()
	cp := p.b.checkpoint()
	p.parseSelect()
	for canStartSimple(p.peek()) {
		p.b.startAt(cp, NodeApply)
		p.parseSelect()
		p.b.finish()
	}
}

func canStartSimple(k Kind) bool {
	switch k {
	case KindIdent, KindOr, KindInteger, KindFloat, KindPath, KindURI,
		KindStringStart, KindLParen, KindLBrack, KindLBrace, KindRec:
		return true
	}
	return false
}

// parseSelect parses attribute selection with an optional fallback:
//
//	a.b.c
//	a.b or c
func (p *parser) parseSelect() {
	p.peek()
	cp := p.b.checkpoint()
	p.parseSimple()
	if p.peek() != KindDot {
		return
	}

	p.b.startAt(cp, NodeSelect)
	p.bump()
	p.parseAttrpath()
	p.b.finish()

	if p.peek() == KindOr {
		p.b.startAt(cp, NodeOrDefault)
		p.bump()
		p.parseSelect()
		p.b.finish()
	}
}

func (p *parser) parseSimple() {
	switch p.peek() {
	case KindIdent, KindOr:
		// "or" is only a keyword after a selection.
		p.parseIdent()

	case KindInteger, KindFloat, KindURI:
		p.b.start(NodeLiteral)
		p.bump()
		p.b.finish()

	case KindPath:
		p.b.start(NodePath)
		p.bump()
		p.parsePathInterp()
		p.b.finish()

	case KindStringStart:
		p.parseString()

	case KindLParen:
		p.b.start(NodeParen)
		p.bump()
		p.parseExpr()
		p.expect(KindRParen)
		p.b.finish()

	case KindLBrack:
		p.b.start(NodeList)
		p.bump()
		for {
			k := p.peek()
			if k == KindRBrack || k == kindEOF {
				break
			}
			if !canStartSimple(k) {
				before := p.pos
				p.recover("list element")
				if p.pos == before {
					break
				}
				continue
			}
			p.parseSelect()
		}
		p.expect(KindRBrack)
		p.b.finish()

	case KindRec, KindLBrace:
		p.b.start(NodeAttrSet)
		if p.peek() == KindRec {
			p.bump()
		}
		p.parseAttrSetBody()
		p.b.finish()

	case KindLet:
		// Legacy "let { ... }" is an attribute set with a body attribute.
		p.b.start(NodeAttrSet)
		p.bump()
		p.parseAttrSetBody()
		p.b.finish()

	default:
		p.recover("expression")
	}
}

// parsePathInterp parses the interpolations and segments
// that directly follow the start of a path.
//
//	./a/${b}/c
func (p *parser) parsePathInterp() {
	for p.pos < len(p.toks) && p.toks[p.pos].Offset == p.b.pos {
		switch p.toks[p.pos].Kind {
		case KindPath:
			p.bump()
		case KindInterpStart:
			p.b.start(NodeStrInterp)
			p.bump()
			p.parseExpr()
			p.expect(KindInterpEnd)
			p.b.finish()
		default:
			return
		}
	}
}

func (p *parser) parseAttrSetBody() {
	if !p.expect(KindLBrace) {
		return
	}
	p.parseBindings(KindRBrace)
	p.expect(KindRBrace)
}

// parseString parses a double-quoted or indented string
// with its interpolations.
func (p *parser) parseString() {
	p.b.start(NodeStr)
	p.bump() // opening quote
loop:
	for {
		switch p.peek() {
		case KindStringContent:
			p.bump()
		case KindInterpStart:
			p.b.start(NodeStrInterp)
			p.bump()
			p.parseExpr()
			p.expect(KindInterpEnd)
			p.b.finish()
		case KindStringEnd:
			p.bump()
			break loop
		default:
			p.errorf("unterminated string")
			break loop
		}
	}
	p.b.finish()
}
