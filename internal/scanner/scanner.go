package scanner

import (
	"errors"
	"strconv"
	"unicode"

	"github.com/leonardinius/loxlite/internal/loxerrors"
	"github.com/leonardinius/loxlite/internal/token"
)

// Scanner turns source text into tokens.
type Scanner interface {
	// Scan returns every token it could produce, terminated by a single EOF
	// token, together with the joined lexical errors, if any.
	// Tokens are returned even when err is not nil.
	Scan() ([]token.Token, error)

	// Errors returns the lexical errors recorded by the last Scan.
	Errors() []error
}

type scanner struct {
	source               []rune
	tokens               []token.Token
	start, current, line int
	errs                 []error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0, line: 1}
}

// Scan implements Scanner.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isAtEnd() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", "", s.line))

	return s.tokens, errors.Join(s.errs...)
}

// Errors implements Scanner.
func (s *scanner) Errors() []error {
	return s.errs
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// singleTokens are complete after one character.
var singleTokens = map[rune]token.TokenType{
	'(': token.LEFT_PAREN,
	')': token.RIGHT_PAREN,
	'{': token.LEFT_BRACE,
	'}': token.RIGHT_BRACE,
	',': token.COMMA,
	'.': token.DOT,
	'-': token.MINUS,
	'+': token.PLUS,
	';': token.SEMICOLON,
	'*': token.STAR,
}

// equalTokens hold the plain and the "=" suffixed token type of an operator.
var equalTokens = map[rune][2]token.TokenType{
	'!': {token.BANG, token.BANG_EQUAL},
	'=': {token.EQUAL, token.EQUAL_EQUAL},
	'<': {token.LESS, token.LESS_EQUAL},
	'>': {token.GREATER, token.GREATER_EQUAL},
}

func (s *scanner) scanToken() {
	c := s.advance()

	if t, ok := singleTokens[c]; ok {
		s.addToken(t)
		return
	}

	if pair, ok := equalTokens[c]; ok {
		if s.match('=') {
			s.addToken(pair[1])
		} else {
			s.addToken(pair[0])
		}
		return
	}

	switch {
	case c == '/' && s.match('/'):
		s.comment()
	case c == '/':
		s.addToken(token.SLASH)
	case c == ' ', c == '\r', c == '\t', c == '\n':
		// Whitespace.
	case c == '"':
		s.stringLiteral()
	case isDigit(c):
		s.number()
	case isAlpha(c):
		s.identifier()
	default:
		s.reportErrorAt(s.line, loxerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
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
	if !s.isAtEnd() && expected == s.peek() {
		s.advance()
		return true
	}

	return false
}

func (s *scanner) addToken(t token.TokenType) {
	s.addTokenLiteral(t, "")
}

func (s *scanner) addTokenLiteral(t token.TokenType, literal string) {
	s.tokens = append(s.tokens, token.NewToken(t, s.lexeme(), literal, s.line))
}

func (s *scanner) lexeme() string {
	return string(s.source[s.start:s.current])
}

// comment stops before the newline so the line counter sees it.
func (s *scanner) comment() {
	s.skip(func(c rune) bool { return c != '\n' })
}

func (s *scanner) stringLiteral() {
	startLine := s.line

	s.skip(func(c rune) bool { return c != '"' })

	if s.isAtEnd() {
		s.reportErrorAt(startLine, loxerrors.ErrScanUnterminatedString, "")
		return
	}

	// The closing ".
	s.advance()

	lexeme := s.lexeme()
	s.addTokenLiteral(token.STRING, lexeme[1:len(lexeme)-1])
}

// number keeps the literal as written; the parser converts it.
// A fraction needs digits on both sides of the dot.
func (s *scanner) number() {
	s.skip(isDigit)

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		s.skip(isDigit)
	}

	s.addTokenLiteral(token.NUMBER, s.lexeme())
}

func (s *scanner) identifier() {
	s.skip(isAlpha)

	if keyword, ok := token.Lookup(s.lexeme()); ok {
		s.addToken(keyword)
		return
	}
	s.addToken(token.IDENTIFIER)
}

func (s *scanner) skip(accept func(rune) bool) {
	for !s.isAtEnd() && accept(s.peek()) {
		s.advance()
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

// isAlpha accepts letters only: identifiers never contain digits or '_'.
func isAlpha(c rune) bool {
	return unicode.IsLetter(c)
}

func (s *scanner) reportErrorAt(line int, err error, details string) {
	s.errs = append(s.errs, loxerrors.NewScanError(line, err, details))
}

var _ Scanner = (*scanner)(nil)
