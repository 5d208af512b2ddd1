package token

import (
	"fmt"
)

// Token represents a lexical token. Tokens are immutable values: the
// scanner creates them, everything downstream only reads them.
//
// Literal holds the parsed value for STRING and NUMBER tokens (string and
// float64 respectively) and is nil for every other kind. Line is the
// 1-based source line the lexeme begins on.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int
}

func NewToken(t TokenType, lexeme string, literal any, line int) Token {
	return Token{
		Type:    t,
		Lexeme:  lexeme,
		Literal: literal,
		Line:    line,
	}
}

// NewTokenHeap is NewToken for places that hold tokens by pointer,
// e.g. operator slots in expression nodes.
func NewTokenHeap(t TokenType, lexeme string, literal any, line int) *Token {
	tt := NewToken(t, lexeme, literal, line)
	return &tt
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %v", t.Type, t.Lexeme, t.Literal)
}

// GoString implements fmt.GoStringer.
func (t Token) GoString() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Literal: %#v, Line: %d}", t.Type, t.Lexeme, t.Literal, t.Line)
}

var _ fmt.Stringer = (*Token)(nil)
var _ fmt.GoStringer = (*Token)(nil)
