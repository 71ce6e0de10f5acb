package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/leonardinius/loxlite/internal/loxerrors"
	"github.com/leonardinius/loxlite/internal/token"
)

var nilStatements []Stmt = nil

type Parser interface {
	// Parse returns the statements of the whole token stream.
	// On failure it returns no statements and every parse error found,
	// joined into one error.
	Parse() ([]Stmt, error)
}

type parser struct {
	tokens  []token.Token
	current int
}

// NewParser returns a Parser over tokens. The AST references the tokens, so
// the slice must outlive the parsed statements.
func NewParser(tokens []token.Token) Parser {
	return &parser{
		tokens:  tokens,
		current: 0,
	}
}

// GoString implements fmt.GoStringer.
func (p *parser) GoString() string {
	return fmt.Sprintf("parser{tokens: %#v, current: %d}", p.tokens, p.current)
}

// String implements fmt.Stringer.
func (p *parser) String() string {
	return fmt.Sprintf("parser{tokens: %d, current: %d}", len(p.tokens), p.current)
}

// Parse implements Parser.
func (p *parser) Parse() ([]Stmt, error) {
	if len(p.tokens) == 0 || p.tokens[len(p.tokens)-1].Type != token.EOF {
		return nilStatements, loxerrors.ErrParseMissingEOF
	}

	var statements []Stmt
	var errs []error
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			// keep going to report the following statements' errors too
			errs = append(errs, err)
			p.synchronize()
			continue
		}
		statements = append(statements, stmt)
	}

	if len(errs) > 0 {
		// if we are at error state, we do not return invalid ast tree
		return nilStatements, errors.Join(errs...)
	}
	return statements, nil
}

func (p *parser) declaration() (Stmt, error) {
	if p.match(token.VAR) {
		return p.varDeclaration()
	}

	return p.statement()
}

func (p *parser) varDeclaration() (Stmt, error) {
	name, err := p.consume(token.IDENTIFIER, loxerrors.ErrParseUnexpectedVariableName)
	if err != nil {
		return nil, err
	}

	var initializer Expr
	if p.match(token.EQUAL) {
		if initializer, err = p.expression(); err != nil {
			return nil, err
		}
	}

	if _, err = p.consume(token.SEMICOLON, loxerrors.ErrParseExpectedSemicolonTokenAfterVar); err != nil {
		return nil, err
	}

	return &StmtVar{Name: name, Initializer: initializer}, nil
}

func (p *parser) statement() (Stmt, error) {
	if p.match(token.PRINT) {
		return p.printStatement()
	}

	return p.expressionStatement()
}

func (p *parser) printStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err = p.consume(token.SEMICOLON, loxerrors.ErrParseExpectedSemicolonTokenAfterPrintValue); err != nil {
		return nil, err
	}

	return &StmtPrint{Expression: expr}, nil
}

func (p *parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err = p.consume(token.SEMICOLON, loxerrors.ErrParseExpectedSemicolonTokenAfterExpr); err != nil {
		return nil, err
	}

	return &StmtExpression{Expression: expr}, nil
}

func (p *parser) expression() (Expr, error) {
	return p.equality()
}

func (p *parser) equality() (Expr, error) {
	return p.binary(p.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

func (p *parser) comparison() (Expr, error) {
	return p.binary(p.term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

func (p *parser) term() (Expr, error) {
	return p.binary(p.factor, token.MINUS, token.PLUS)
}

func (p *parser) factor() (Expr, error) {
	return p.binary(p.unary, token.SLASH, token.STAR)
}

// binary parses a left-associative level: operand (operator operand)*.
func (p *parser) binary(operand func() (Expr, error), operators ...token.TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}

	for p.match(operators...) {
		operator := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &ExprBinary{Left: expr, Operator: operator, Right: right}
	}

	return expr, nil
}

func (p *parser) unary() (Expr, error) {
	if p.match(token.BANG, token.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ExprUnary{Operator: operator, Right: right}, nil
	}

	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	if p.match(token.FALSE) {
		return &ExprLiteral{Value: FalseValue, Token: p.previous()}, nil
	}
	if p.match(token.TRUE) {
		return &ExprLiteral{Value: TrueValue, Token: p.previous()}, nil
	}
	if p.match(token.NIL) {
		return &ExprLiteral{Value: NilValue, Token: p.previous()}, nil
	}

	if p.match(token.NUMBER) {
		tok := p.previous()
		value, err := p.number(tok)
		if err != nil {
			return nil, err
		}
		return &ExprLiteral{Value: value, Token: tok}, nil
	}

	if p.match(token.STRING) {
		tok := p.previous()
		return &ExprLiteral{Value: ValueString(tok.Literal), Token: tok}, nil
	}

	if p.match(token.IDENTIFIER) {
		return &ExprVariable{Name: p.previous()}, nil
	}

	return p.grouping()
}

func (p *parser) grouping() (Expr, error) {
	if !p.match(token.LEFT_PAREN) {
		return nil, loxerrors.NewParseError(p.peek(), loxerrors.ErrParseUnexpectedToken)
	}

	expr, err := p.expression()
	if err != nil {
		return nil, err
	}

	if _, err = p.consume(token.RIGHT_PAREN, loxerrors.ErrParseExpectedRightParenToken); err != nil {
		return nil, err
	}

	return &ExprGrouping{Expression: expr}, nil
}

// number converts the raw NUMBER literal. Out of range literals keep the
// IEEE-754 result strconv reports (±Inf or 0), only malformed text fails.
func (p *parser) number(tok *token.Token) (Value, error) {
	value, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, loxerrors.NewParseError(tok, loxerrors.ErrParseInvalidNumber(tok.Literal, err))
	}
	return ValueNumber(value), nil
}

func (p *parser) consume(tokenType token.TokenType, cause error) (*token.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	return nil, loxerrors.NewParseError(p.peek(), cause)
}

func (p *parser) match(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) check(tokenType token.TokenType) bool {
	return !p.isAtEnd() && p.peek().Type == tokenType
}

func (p *parser) peek() *token.Token {
	return &p.tokens[p.current]
}

func (p *parser) previous() *token.Token {
	return &p.tokens[p.current-1]
}

func (p *parser) advance() *token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

// synchronize discards tokens until a statement boundary: just past a ';'
// or right before a keyword that starts a statement.
func (p *parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case token.CLASS,
			token.FUN,
			token.VAR,
			token.FOR,
			token.IF,
			token.WHILE,
			token.PRINT,
			token.RETURN:
			return
		}

		p.advance()
	}
}

var _ Parser = (*parser)(nil)
var _ fmt.Stringer = (*parser)(nil)
var _ fmt.GoStringer = (*parser)(nil)
