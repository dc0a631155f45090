package nixsyntax

import "fmt"

// Kind identifies the type of a token or node in the syntax tree.
type Kind int

// Token kinds.
const (
	KindError Kind = iota // unrecognized input

	KindWhitespace
	KindComment

	KindIdent
	KindInteger
	KindFloat
	KindPath
	KindURI

	// Keywords.
	KindLet
	KindIn
	KindRec
	KindWith
	KindInherit
	KindIf
	KindThen
	KindElse
	KindAssert
	KindOr

	// Strings.
	KindStringStart   // " or ''
	KindStringContent // literal text between quotes
	KindStringEnd     // " or ''
	KindInterpStart   // ${
	KindInterpEnd     // } closing an interpolation

	// Punctuation.
	KindLBrace   // {
	KindRBrace   // }
	KindLBrack   // [
	KindRBrack   // ]
	KindLParen   // (
	KindRParen   // )
	KindSemi     // ;
	KindColon    // :
	KindComma    // ,
	KindDot      // .
	KindEllipsis // ...
	KindAssign   // =
	KindQuestion // ?
	KindAt       // @

	// Operators.
	KindConcat  // ++
	KindAdd     // +
	KindSub     // -
	KindMul     // *
	KindDiv     // /
	KindUpdate  // //
	KindEqual   // ==
	KindNotEq   // !=
	KindLess    // <
	KindLessEq  // <=
	KindMore    // >
	KindMoreEq  // >=
	KindAnd     // &&
	KindOrOr    // ||
	KindImplies // ->
	KindNot     // !

	kindLastToken
)

// Node kinds.
const (
	NodeRoot Kind = iota + kindLastToken + 1
	NodeError
	NodeLambda
	NodeIdent
	NodePattern
	NodePatEntry
	NodePatBind
	NodeLetIn
	NodeAttrSet
	NodeKeyValue
	NodeKey
	NodeDynamic
	NodeInherit
	NodeInheritFrom
	NodeApply
	NodeSelect
	NodeOrDefault
	NodeHasAttr
	NodeBinOp
	NodeUnaryOp
	NodeParen
	NodeList
	NodeWith
	NodeAssert
	NodeIfElse
	NodeStr
	NodeStrInterp
	NodePath
	NodeLiteral
)

var _kindNames = map[Kind]string{
	kindEOF: "EOF",

	KindError:         "ERROR",
	KindWhitespace:    "WHITESPACE",
	KindComment:       "COMMENT",
	KindIdent:         "IDENT",
	KindInteger:       "INTEGER",
	KindFloat:         "FLOAT",
	KindPath:          "PATH",
	KindURI:           "URI",
	KindLet:           "LET",
	KindIn:            "IN",
	KindRec:           "REC",
	KindWith:          "WITH",
	KindInherit:       "INHERIT",
	KindIf:            "IF",
	KindThen:          "THEN",
	KindElse:          "ELSE",
	KindAssert:        "ASSERT",
	KindOr:            "OR",
	KindStringStart:   "STRING_START",
	KindStringContent: "STRING_CONTENT",
	KindStringEnd:     "STRING_END",
	KindInterpStart:   "INTERP_START",
	KindInterpEnd:     "INTERP_END",
	KindLBrace:        "L_BRACE",
	KindRBrace:        "R_BRACE",
	KindLBrack:        "L_BRACK",
	KindRBrack:        "R_BRACK",
	KindLParen:        "L_PAREN",
	KindRParen:        "R_PAREN",
	KindSemi:          "SEMICOLON",
	KindColon:         "COLON",
	KindComma:         "COMMA",
	KindDot:           "DOT",
	KindEllipsis:      "ELLIPSIS",
	KindAssign:        "ASSIGN",
	KindQuestion:      "QUESTION",
	KindAt:            "AT",
	KindConcat:        "CONCAT",
	KindAdd:           "ADD",
	KindSub:           "SUB",
	KindMul:           "MUL",
	KindDiv:           "DIV",
	KindUpdate:        "UPDATE",
	KindEqual:         "EQUAL",
	KindNotEq:         "NOT_EQUAL",
	KindLess:          "LESS",
	KindLessEq:        "LESS_OR_EQ",
	KindMore:          "MORE",
	KindMoreEq:        "MORE_OR_EQ",
	KindAnd:           "AND",
	KindOrOr:          "OR_OR",
	KindImplies:       "IMPLICATION",
	KindNot:           "INVERT",

	NodeRoot:        "NODE_ROOT",
	NodeError:       "NODE_ERROR",
	NodeLambda:      "NODE_LAMBDA",
	NodeIdent:       "NODE_IDENT",
	NodePattern:     "NODE_PATTERN",
	NodePatEntry:    "NODE_PAT_ENTRY",
	NodePatBind:     "NODE_PAT_BIND",
	NodeLetIn:       "NODE_LET_IN",
	NodeAttrSet:     "NODE_ATTR_SET",
	NodeKeyValue:    "NODE_KEY_VALUE",
	NodeKey:         "NODE_KEY",
	NodeDynamic:     "NODE_DYNAMIC",
	NodeInherit:     "NODE_INHERIT",
	NodeInheritFrom: "NODE_INHERIT_FROM",
	NodeApply:       "NODE_APPLY",
	NodeSelect:      "NODE_SELECT",
	NodeOrDefault:   "NODE_OR_DEFAULT",
	NodeHasAttr:     "NODE_HAS_ATTR",
	NodeBinOp:       "NODE_BIN_OP",
	NodeUnaryOp:     "NODE_UNARY_OP",
	NodeParen:       "NODE_PAREN",
	NodeList:        "NODE_LIST",
	NodeWith:        "NODE_WITH",
	NodeAssert:      "NODE_ASSERT",
	NodeIfElse:      "NODE_IF_ELSE",
	NodeStr:         "NODE_STRING",
	NodeStrInterp:   "NODE_STRING_INTERPOL",
	NodePath:        "NODE_PATH",
	NodeLiteral:     "NODE_LITERAL",
}

// String returns the name of the kind, e.g. "NODE_LAMBDA".
func (k Kind) String() string {
	if name, ok := _kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsTrivia reports whether tokens of this kind
// carry no meaning in the grammar.
func (k Kind) IsTrivia() bool {
	return k == KindWhitespace || k == KindComment
}

// IsToken reports whether this is a token kind.
func (k Kind) IsToken() bool {
	return k < kindLastToken
}

// IsKeyword reports whether this is a reserved word like "let".
func (k Kind) IsKeyword() bool {
	return KindLet <= k && k <= KindOr
}

// IsPunct reports whether this is a delimiter or separator.
func (k Kind) IsPunct() bool {
	return KindLBrace <= k && k <= KindAt
}

// IsOperator reports whether this is an arithmetic, logical,
// or set operator.
func (k Kind) IsOperator() bool {
	return KindConcat <= k && k <= KindNot
}

var _keywords = map[string]Kind{
	"let":     KindLet,
	"in":      KindIn,
	"rec":     KindRec,
	"with":    KindWith,
	"inherit": KindInherit,
	"if":      KindIf,
	"then":    KindThen,
	"else":    KindElse,
	"assert":  KindAssert,
	"or":      KindOr,
}
