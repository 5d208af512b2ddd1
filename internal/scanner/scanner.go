package scanner

import (
	"strconv"

	"github.com/poxlang/pox/internal/loxerrors"
	"github.com/poxlang/pox/internal/token"
)

// Scanner turns one complete source text into tokens.
type Scanner interface {
	// Scan tokenizes the whole input in a single pass. The returned
	// sequence always ends with exactly one EOF token. hadError is true
	// if any lexical error was encountered; each one has already been
	// reported to the reporter and scanning resumed after it, so a
	// single call surfaces every lexical error in the source.
	Scan() (tokens []token.Token, hadError bool)
}

var reservedKeywords = map[string]token.TokenType{
	"and":    token.AND,
	"class":  token.CLASS,
	"else":   token.ELSE,
	"false":  token.FALSE,
	"for":    token.FOR,
	"fun":    token.FUN,
	"if":     token.IF,
	"nil":    token.NIL,
	"or":     token.OR,
	"print":  token.PRINT,
	"return": token.RETURN,
	"super":  token.SUPER,
	"this":   token.THIS,
	"true":   token.TRUE,
	"var":    token.VAR,
	"while":  token.WHILE,
}

type scanner struct {
	source   []rune
	tokens   []token.Token
	reporter loxerrors.ErrReporter

	// Cursor state, local to one scan. start/current index into source;
	// line tracks the line under the cursor, startLine the line the
	// lexeme under scan began on.
	start, current  int
	line, startLine int
	hadError        bool
}

// NewScanner returns a new Scanner over input, reporting lexical errors
// to reporter.
func NewScanner(input string, reporter loxerrors.ErrReporter) Scanner {
	return &scanner{source: []rune(input), reporter: reporter, line: 1, startLine: 1}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, bool) {
	for !s.isAtEnd() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.startLine = s.line
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", nil, s.line))

	return s.tokens, s.hadError
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) scanToken() {
	c := s.advance()

	switch c {
	case '(':
		s.addToken(token.LEFT_PAREN)
	case ')':
		s.addToken(token.RIGHT_PAREN)
	case '{':
		s.addToken(token.LEFT_BRACE)
	case '}':
		s.addToken(token.RIGHT_BRACE)
	case ',':
		s.addToken(token.COMMA)
	case '.':
		s.addToken(token.DOT)
	case '-':
		s.addToken(token.MINUS)
	case '+':
		s.addToken(token.PLUS)
	case ';':
		s.addToken(token.SEMICOLON)
	case '*':
		s.addToken(token.STAR)
	case '!':
		s.addMatchToken('=', token.BANG_EQUAL, token.BANG)
	case '=':
		s.addMatchToken('=', token.EQUAL_EQUAL, token.EQUAL)
	case '<':
		s.addMatchToken('=', token.LESS_EQUAL, token.LESS)
	case '>':
		s.addMatchToken('=', token.GREATER_EQUAL, token.GREATER)
	case '/':
		if s.match('/') {
			s.comment()
		} else {
			s.addToken(token.SLASH)
		}
	case ' ', '\r', '\t', '\n':
		// Ignore whitespace.
	case '"':
		s.string()
	default:
		if s.isDigit(c) {
			s.number()
		} else if s.isAlpha(c) {
			s.reservedOrIdentifier()
		} else {
			s.reportUnexpectedCharacter(c)
		}
	}
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) peekNext() rune {
	if s.current+1 >= len(s.source) {
		return '\000'
	}
	return s.source[s.current+1]
}

func (s *scanner) advance() rune {
	if s.source[s.current] == '\n' {
		s.line++
	}
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) match(expected rune) bool {
	if expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) addMatchToken(lookAhead rune, ifMatch, ifNotMatched token.TokenType) {
	if s.match(lookAhead) {
		s.addToken(ifMatch)
	} else {
		s.addToken(ifNotMatched)
	}
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, nil)
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal any) {
	s.tokens = append(s.tokens, token.NewToken(t, string(s.source[s.start:s.current]), literal, s.startLine))
}

func (s *scanner) comment() {
	for s.peek() != '\n' && !s.isAtEnd() {
		s.advance()
	}
}

func (s *scanner) string() {
	for !s.isAtEnd() && s.peek() != '"' {
		s.advance()
	}

	if s.isAtEnd() {
		s.reportError(loxerrors.ErrScanUnterminatedString)
		return
	}

	// The closing ".
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addTokenLiteral(token.STRING, string(value))
}

func (s *scanner) number() {
	for s.isDigit(s.peek()) {
		s.advance()
	}

	// A trailing '.' with no digit after it is not part of the number;
	// it is left for the next token.
	if s.peek() == '.' && s.isDigit(s.peekNext()) {
		s.advance()

		for s.isDigit(s.peek()) {
			s.advance()
		}
	}

	svalue := string(s.source[s.start:s.current])
	value, err := strconv.ParseFloat(svalue, 64)
	if err != nil {
		s.reportError(err)
		return
	}
	s.addTokenLiteral(token.NUMBER, value)
}

func (s *scanner) reservedOrIdentifier() {
	for s.isAlphaNumeric(s.peek()) {
		s.advance()
	}

	tokenType := token.IDENTIFIER
	name := string(s.source[s.start:s.current])
	if reserved, ok := reservedKeywords[name]; ok {
		tokenType = reserved
	}
	s.addToken(tokenType)
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func (s *scanner) isAlphaNumeric(c rune) bool {
	return s.isAlpha(c) || s.isDigit(c)
}

func (s *scanner) reportUnexpectedCharacter(c rune) {
	s.report(loxerrors.NewScanError(s.line, loxerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c)))
}

func (s *scanner) reportError(err error) {
	s.report(loxerrors.NewScanError(s.line, err, ""))
}

// report sends one diagnostic to the reporter and latches hadError.
// Scanning always continues; the caller decides what a lexically invalid
// token sequence is good for.
func (s *scanner) report(err error) {
	s.hadError = true
	s.reporter.ReportError(err)
}

var _ Scanner = (*scanner)(nil)
