package highlight

import (
	chroma "github.com/alecthomas/chroma/v2"
	"go.abhg.dev/attrdoc/internal/nixsyntax"
)

// Lexer analyzes source code and generates a stream of tokens.
type Lexer interface {
	Lex(src []byte) ([]chroma.Token, error)
}

// NixLexer is a [Lexer] that recognizes Nix.
//
// It uses the same parser as the documentation extractor,
// so the tokens always reproduce the input exactly,
// even if the input is not a valid expression.
var NixLexer Lexer = nixLexer{}

type nixLexer struct{}

func (nixLexer) Lex(src []byte) ([]chroma.Token, error) {
	// Syntax errors are ignored.
	// The tree covers every byte of input regardless.
	tree, _ := nixsyntax.Parse(src)

	var toks []chroma.Token
	tree.Root().Tokens(func(t *nixsyntax.Token) bool {
		toks = append(toks, chroma.Token{
			Type:  tokenType(t),
			Value: t.Text(),
		})
		return true
	})
	return toks, nil
}

var _constants = map[string]struct{}{
	"true":  {},
	"false": {},
	"null":  {},
}

func tokenType(t *nixsyntax.Token) chroma.TokenType {
	k := t.Kind()
	switch {
	case k == nixsyntax.KindWhitespace:
		return chroma.TextWhitespace
	case k == nixsyntax.KindComment:
		if len(t.Text()) > 0 && t.Text()[0] == '#' {
			return chroma.CommentSingle
		}
		return chroma.CommentMultiline
	case k == nixsyntax.KindError:
		return chroma.Error
	case k.IsKeyword():
		return chroma.Keyword
	case k.IsOperator():
		return chroma.Operator
	case k.IsPunct():
		return chroma.Punctuation
	}

	switch k {
	case nixsyntax.KindIdent:
		if _, ok := _constants[t.Text()]; ok {
			return chroma.KeywordConstant
		}
		if p := t.Parent(); p != nil {
			if gp := p.Parent(); gp != nil && gp.Kind() == nixsyntax.NodeKey {
				return chroma.NameAttribute
			}
		}
		return chroma.Name
	case nixsyntax.KindInteger:
		return chroma.LiteralNumberInteger
	case nixsyntax.KindFloat:
		return chroma.LiteralNumberFloat
	case nixsyntax.KindPath, nixsyntax.KindURI:
		return chroma.LiteralStringOther
	case nixsyntax.KindStringStart, nixsyntax.KindStringContent, nixsyntax.KindStringEnd:
		return chroma.LiteralString
	case nixsyntax.KindInterpStart, nixsyntax.KindInterpEnd:
		return chroma.LiteralStringInterpol
	}
	return chroma.Text
}

// Tokenize lexes src with the given lexer into a [Code] block.
// If the lexer fails, the block holds the source as plain text.
func Tokenize(l Lexer, src []byte) *Code {
	toks, err := l.Lex(src)
	if err != nil {
		return &Code{Spans: []Span{&TextSpan{Text: src}}}
	}
	return &Code{Spans: []Span{&TokenSpan{Tokens: toks}}}
}
