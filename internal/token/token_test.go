package token_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poxlang/pox/internal/token"
)

func TestTokenTypeNames(t *testing.T) {
	t.Parallel()

	// Every kind in the closed set renders symbolically; nothing falls
	// through to the numeric default.
	for tt := token.LEFT_PAREN; tt <= token.EOF; tt++ {
		name := tt.String()
		assert.NotEmpty(t, name)
		assert.NotEqual(t, "UNKNOWN", name)
	}

	assert.Equal(t, "UNKNOWN", token.TokenType(-1).String())
	assert.Equal(t, "UNKNOWN", (token.EOF + 1).String())
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	tok := token.NewToken(token.NUMBER, "12.34", 12.34, 3)
	assert.Equal(t, "NUMBER 12.34 12.34", tok.String())
	assert.Equal(t, `{Type: NUMBER, Lexeme: "12.34", Literal: 12.34, Line: 3}`, tok.GoString())

	eof := token.NewToken(token.EOF, "", nil, 7)
	assert.Equal(t, `{Type: EOF, Lexeme: "", Literal: <nil>, Line: 7}`, eof.GoString())
}

func TestNewTokenHeap(t *testing.T) {
	t.Parallel()

	tok := token.NewTokenHeap(token.MINUS, "-", nil, 1)
	assert.Equal(t, token.NewToken(token.MINUS, "-", nil, 1), *tok)
	assert.Equal(t, "MINUS - <nil>", fmt.Sprintf("%v", tok))
}
