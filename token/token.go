// Package token defines the lexical tokens produced by the lexer and
// consumed by the parser.
package token

import (
	"fmt"

	"github.com/chadbramwell/write-a-c-compiler-sub000/internal/intern"
)

// Kind identifies the category of a token.
//
// Single-character operators and punctuation reuse their own ASCII code as
// their Kind, so '+' is Kind('+') and '(' is Kind('('). Multi-character
// operators and keywords use dedicated values starting above the ASCII
// range (see the iota block below, offset past 127) so the two spaces never
// collide.
type Kind int

const (
	firstMultiByte Kind = 128 + iota

	// Multi-character operators.
	LAND // &&
	LOR  // ||
	EQ   // ==
	NE   // !=
	LE   // <=
	GE   // >=

	// Keywords.
	KwInt
	KwVoid
	KwReturn
	KwIf
	KwElse
	KwFor
	KwWhile
	KwDo
	KwBreak
	KwContinue

	// Other token classes.
	Ident
	Constant
	EOF
)

// keywords maps a keyword's spelling to its Kind. The lexer scans any run
// of identifier characters first and rewrites it to the matching keyword
// Kind post-hoc.
var keywords = map[string]Kind{
	"int":      KwInt,
	"void":     KwVoid,
	"return":   KwReturn,
	"if":       KwIf,
	"else":     KwElse,
	"for":      KwFor,
	"while":    KwWhile,
	"do":       KwDo,
	"break":    KwBreak,
	"continue": KwContinue,
}

// Lookup returns the keyword Kind for name, and whether name is a keyword.
func Lookup(name string) (Kind, bool) {
	k, ok := keywords[name]
	return k, ok
}

var kindNames = map[Kind]string{
	LAND: "&&", LOR: "||", EQ: "==", NE: "!=", LE: "<=", GE: ">=",
	KwInt: "int", KwVoid: "void", KwReturn: "return", KwIf: "if",
	KwElse: "else", KwFor: "for", KwWhile: "while", KwDo: "do",
	KwBreak: "break", KwContinue: "continue",
	Ident: "identifier", Constant: "constant", EOF: "EOF",
}

// String renders a Kind's spelling for diagnostics. Single-character kinds
// render as the character itself.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k >= 0 && k < firstMultiByte {
		return string(rune(k))
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pos is a source location retained only for diagnostics.
type Pos struct {
	Line   int32
	Column int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a single lexical token. Name is valid iff Kind == Ident, Num is
// valid iff Kind == Constant.
type Token struct {
	Kind Kind
	Name intern.Symbol
	Num  int64
	Pos  Pos
}

// Lexeme renders the token's original spelling for diagnostics.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Ident:
		return t.Name.String()
	case Constant:
		return fmt.Sprintf("%d", t.Num)
	default:
		return t.Kind.String()
	}
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s %q @%s}", t.Kind, t.Lexeme(), t.Pos)
}
