package loxerrors

import (
	"errors"
	"fmt"

	"github.com/leonardinius/loxlite/internal/token"
)

var (
	ErrRuntimeOperandMustBeNumber    = errors.New("operand must be a number.")
	ErrRuntimeOperandsMustBeSameType = errors.New("operands must be of same type.")
	ErrRuntimeUndefinedVariable      = errors.New("undefined variable")
	ErrRuntimeUnknownOperator        = errors.New("unknown operator.")
	ErrRuntimeUnsupportedValue       = errors.New("unsupported value.")
)

// ErrRuntimeUndefinedVariableName wraps ErrRuntimeUndefinedVariable with the variable name.
func ErrRuntimeUndefinedVariableName(name string) error {
	return fmt.Errorf("%w '%s'.", ErrRuntimeUndefinedVariable, name)
}

func NewRuntimeError(tok *token.Token, cause error) *RuntimeError {
	return &RuntimeError{tok: tok, cause: cause}
}

type RuntimeError struct {
	tok   *token.Token
	cause error

	// Suggestion is an optional hint shown by reporters, never part of Error().
	Suggestion string
}

// Token returns the token the failing expression was built from.
func (r *RuntimeError) Token() *token.Token {
	return r.tok
}

// Error implements error.
func (r *RuntimeError) Error() string {
	if r.tok == nil {
		return fmt.Sprintf("runtime error: %v", r.cause)
	}
	return fmt.Sprintf("[line %d] runtime error at '%s': %v", r.tok.Line, r.tok.Lexeme, r.cause)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
