package nixsyntax

import (
	"strings"
	"unicode/utf8"
)

// lexeme is a single token produced by the lexer.
type lexeme struct {
	Kind   Kind
	Text   string
	Offset int // byte offset of Text in the source
}

type lexMode int

const (
	modeCode      lexMode = iota // regular Nix code
	modeInterp                   // code inside ${ ... }
	modeString                   // inside "..."
	modeIndString                // inside ''...''
	modePath                     // inside a path with interpolations
)

type lexFrame struct {
	mode  lexMode
	depth int // unmatched '{' seen in this frame
}

// lexer splits Nix source into tokens.
// It never fails: input it does not understand becomes KindError tokens,
// which the parser reports.
type lexer struct {
	src    string
	pos    int
	frames []lexFrame
	out    []lexeme
}

// operators sorted so that longer operators are tried first.
var _operators = []struct {
	text string
	kind Kind
}{
	{"...", KindEllipsis},
	{"++", KindConcat},
	{"//", KindUpdate},
	{"==", KindEqual},
	{"!=", KindNotEq},
	{"<=", KindLessEq},
	{">=", KindMoreEq},
	{"&&", KindAnd},
	{"||", KindOrOr},
	{"->", KindImplies},
	{"+", KindAdd},
	{"-", KindSub},
	{"*", KindMul},
	{"/", KindDiv},
	{"<", KindLess},
	{">", KindMore},
	{"!", KindNot},
	{"[", KindLBrack},
	{"]", KindRBrack},
	{"(", KindLParen},
	{")", KindRParen},
	{";", KindSemi},
	{":", KindColon},
	{",", KindComma},
	{".", KindDot},
	{"=", KindAssign},
	{"?", KindQuestion},
	{"@", KindAt},
}

func lex(src string) []lexeme {
	l := lexer{
		src:    src,
		frames: []lexFrame{{mode: modeCode}},
	}
	for l.pos < len(l.src) {
		switch l.top().mode {
		case modeString:
			l.lexString()
		case modeIndString:
			l.lexIndString()
		case modePath:
			l.lexPath()
		default:
			l.lexCode()
		}
	}
	return l.out
}

func (l *lexer) top() *lexFrame { return &l.frames[len(l.frames)-1] }

func (l *lexer) push(m lexMode) { l.frames = append(l.frames, lexFrame{mode: m}) }

func (l *lexer) pop() {
	if len(l.frames) > 1 {
		l.frames = l.frames[:len(l.frames)-1]
	}
}

// emit records a token of length n starting at the current position.
func (l *lexer) emit(kind Kind, n int) {
	l.out = append(l.out, lexeme{
		Kind:   kind,
		Text:   l.src[l.pos : l.pos+n],
		Offset: l.pos,
	})
	l.pos += n
}

func (l *lexer) lexCode() {
	rest := l.src[l.pos:]
	c := rest[0]

	switch {
	case isSpace(c):
		n := 1
		for n < len(rest) && isSpace(rest[n]) {
			n++
		}
		l.emit(KindWhitespace, n)
		return

	case c == '#':
		n := strings.IndexByte(rest, '\n')
		if n < 0 {
			n = len(rest)
		}
		l.emit(KindComment, n)
		return

	case strings.HasPrefix(rest, "/*"):
		end := strings.Index(rest[2:], "*/")
		if end < 0 {
			l.emit(KindError, len(rest))
			return
		}
		l.emit(KindComment, end+4)
		return

	case c == '"':
		l.emit(KindStringStart, 1)
		l.push(modeString)
		return

	case strings.HasPrefix(rest, "''"):
		l.emit(KindStringStart, 2)
		l.push(modeIndString)
		return

	case strings.HasPrefix(rest, "${"):
		l.emit(KindInterpStart, 2)
		l.push(modeInterp)
		return

	case c == '{':
		l.top().depth++
		l.emit(KindLBrace, 1)
		return

	case c == '}':
		f := l.top()
		if f.mode == modeInterp && f.depth == 0 {
			l.emit(KindInterpEnd, 1)
			l.pop()
			return
		}
		if f.depth > 0 {
			f.depth--
		}
		l.emit(KindRBrace, 1)
		return
	}

	if n := matchPathInterp(rest); n > 0 {
		l.emit(KindPath, n)
		l.push(modePath)
		return
	}
	if n := matchPath(rest); n > 0 {
		l.emit(KindPath, n)
		return
	}
	if n := matchURI(rest); n > 0 {
		l.emit(KindURI, n)
		return
	}

	switch {
	case isIdentStart(c):
		n := 1
		for n < len(rest) && isIdentChar(rest[n]) {
			n++
		}
		kind := KindIdent
		if kw, ok := _keywords[rest[:n]]; ok {
			kind = kw
		}
		l.emit(kind, n)
		return

	case isDigit(c), c == '.' && len(rest) > 1 && isDigit(rest[1]):
		l.lexNumber(rest)
		return
	}

	for _, op := range _operators {
		if strings.HasPrefix(rest, op.text) {
			l.emit(op.kind, len(op.text))
			return
		}
	}

	_, size := utf8.DecodeRuneInString(rest)
	l.emit(KindError, size)
}

func (l *lexer) lexNumber(rest string) {
	n := 0
	for n < len(rest) && isDigit(rest[n]) {
		n++
	}
	if n+1 < len(rest) && rest[n] == '.' && isDigit(rest[n+1]) {
		n++
		for n < len(rest) && isDigit(rest[n]) {
			n++
		}
		if n < len(rest) && (rest[n] == 'e' || rest[n] == 'E') {
			m := n + 1
			if m < len(rest) && (rest[m] == '+' || rest[m] == '-') {
				m++
			}
			if m < len(rest) && isDigit(rest[m]) {
				for m < len(rest) && isDigit(rest[m]) {
					m++
				}
				n = m
			}
		}
		l.emit(KindFloat, n)
		return
	}
	l.emit(KindInteger, n)
}

// lexString lexes the contents of a double-quoted string
// up to and including the closing quote or the next interpolation.
func (l *lexer) lexString() {
	rest := l.src[l.pos:]
	n := 0
	for n < len(rest) {
		switch {
		case rest[n] == '\\' && n+1 < len(rest):
			n += 2
			continue
		case strings.HasPrefix(rest[n:], "$${"):
			n += 2
			continue
		case strings.HasPrefix(rest[n:], "${"):
			if n > 0 {
				l.emit(KindStringContent, n)
			}
			l.emit(KindInterpStart, 2)
			l.push(modeInterp)
			return
		case rest[n] == '"':
			if n > 0 {
				l.emit(KindStringContent, n)
			}
			l.emit(KindStringEnd, 1)
			l.pop()
			return
		}
		n++
	}
	l.emit(KindStringContent, n)
}

// lexIndString lexes the contents of an indented ('') string.
func (l *lexer) lexIndString() {
	rest := l.src[l.pos:]
	n := 0
	for n < len(rest) {
		s := rest[n:]
		switch {
		case strings.HasPrefix(s, "''$"), strings.HasPrefix(s, "'''"):
			n += 3
			continue
		case strings.HasPrefix(s, "''\\") && len(s) > 3:
			_, size := utf8.DecodeRuneInString(s[3:])
			n += 3 + size
			continue
		case strings.HasPrefix(s, "''"):
			if n > 0 {
				l.emit(KindStringContent, n)
			}
			l.emit(KindStringEnd, 2)
			l.pop()
			return
		case strings.HasPrefix(s, "$${"):
			n += 2
			continue
		case strings.HasPrefix(s, "${"):
			if n > 0 {
				l.emit(KindStringContent, n)
			}
			l.emit(KindInterpStart, 2)
			l.push(modeInterp)
			return
		}
		n++
	}
	l.emit(KindStringContent, n)
}

// lexPath lexes the rest of a path after an interpolation
// up to and including the next interpolation.
//
//	./a/${b}/c${d}
func (l *lexer) lexPath() {
	rest := l.src[l.pos:]
	n := 0
	for n < len(rest) && (isPathChar(rest[n]) || isPathSlash(rest, n)) {
		n++
	}
	if n > 0 {
		l.emit(KindPath, n)
	}
	if strings.HasPrefix(l.src[l.pos:], "${") {
		l.emit(KindInterpStart, 2)
		l.push(modeInterp)
		return
	}
	l.pop()
}

// matchPathInterp reports the length of the path at the start of s
// if it is immediately followed by an interpolation, or zero otherwise.
//
//	./a/${b}  a/${b}  ~/${b}  ./a/b${c}
func matchPathInterp(s string) int {
	if s[0] == '<' {
		return 0
	}

	n := 0
	if s[0] == '~' {
		n = 1
	} else {
		for n < len(s) && isPathChar(s[n]) {
			n++
		}
	}

	slashes := 0
	for n < len(s) && isPathSlash(s, n) {
		n++
		slashes++
		for n < len(s) && isPathChar(s[n]) {
			n++
		}
	}
	if slashes == 0 || !strings.HasPrefix(s[n:], "${") {
		return 0
	}
	return n
}

// isPathSlash reports whether s[i] is a '/' separating path segments
// rather than the start of a "//" operator.
func isPathSlash(s string, i int) bool {
	return s[i] == '/' && (i+1 >= len(s) || s[i+1] != '/')
}

// matchPath reports the length of the path literal at the start of s,
// or zero if s does not start with a path.
//
//	./foo/bar  ../foo  foo/bar  ~/foo  <nixpkgs/lib>
func matchPath(s string) int {
	if s[0] == '<' {
		n := 1
		for n < len(s) && (isPathChar(s[n]) || s[n] == '/') {
			n++
		}
		if n > 1 && n < len(s) && s[n] == '>' && s[1] != '/' && s[n-1] != '/' {
			return n + 1
		}
		return 0
	}

	n := 0
	if s[0] == '~' {
		n = 1
	} else {
		for n < len(s) && isPathChar(s[n]) {
			n++
		}
	}

	segments := 0
	for n+1 < len(s) && s[n] == '/' && isPathChar(s[n+1]) {
		n++
		for n < len(s) && isPathChar(s[n]) {
			n++
		}
		segments++
	}
	if segments == 0 {
		return 0
	}
	return n
}

// matchURI reports the length of the URI literal at the start of s,
// or zero if s does not start with a URI.
//
//	https://example.com/foo.tar.gz
func matchURI(s string) int {
	if !isAlpha(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && (isAlpha(s[n]) || isDigit(s[n]) || strings.IndexByte("+-.", s[n]) >= 0) {
		n++
	}
	if n >= len(s) || s[n] != ':' {
		return 0
	}
	n++
	start := n
	for n < len(s) && isURIChar(s[n]) {
		n++
	}
	if n == start {
		return 0
	}
	return n
}

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isAlpha(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func isIdentStart(c byte) bool { return isAlpha(c) || c == '_' }

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '\'' || c == '-'
}

func isPathChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || strings.IndexByte("._-+", c) >= 0
}

func isURIChar(c byte) bool {
	return isAlpha(c) || isDigit(c) || strings.IndexByte("%/?:@&=+$,-_.!~*'", c) >= 0
}
