package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/loxlite/internal/token"
)

var (
	ErrParseMissingEOF                            = errors.New("token stream must end with EOF.")
	ErrParseUnexpectedToken                       = errors.New("expected expression.")
	ErrParseUnexpectedVariableName                = errors.New("expect variable name.")
	ErrParseExpectedRightParenToken               = errors.New("expected ')' after expression.")
	ErrParseExpectedSemicolonTokenAfterPrintValue = errors.New("expect ';' after print value.")
	ErrParseExpectedSemicolonTokenAfterExpr       = errors.New("expect ';' after value.")
	ErrParseExpectedSemicolonTokenAfterVar        = errors.New("expect ';' after variable declaration.")
)

// ErrParseInvalidNumber reports a NUMBER literal that does not convert to a float.
func ErrParseInvalidNumber(literal string, err error) error {
	return fmt.Errorf("invalid number literal %q: %w", literal, err)
}

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

type ParserError struct {
	tok   *token.Token
	cause error
}

// Token returns the token the parser stopped at.
func (p *ParserError) Token() *token.Token {
	return p.tok
}

// Error implements error.
func (p *ParserError) Error() string {
	where := "at end"
	if p.tok.Type != token.EOF {
		where = fmt.Sprintf("at '%s'", p.tok.Lexeme)
	}
	return fmt.Sprintf("[line %d] parse error %s: %v", p.tok.Line, where, p.cause)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
