package parser

import (
	"strings"
)

// Printer renders parsed syntax back to text.
type Printer interface {
	Print(expr Expr) string
	PrintStmt(stmt Stmt) string
	PrintProgram(statements []Stmt) string
}

// AstPrinter renders expressions fully parenthesized in infix form:
// literals as their lexeme, groups as (e), unary as (op e) and binary as
// (l op r). Statements render as source-like lines.
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

// VisitExprBinary implements ExprVisitor.
func (p *AstPrinter) VisitExprBinary(expr *ExprBinary) (any, error) {
	return p.parenthesize(p.Print(expr.Left), expr.Operator.Lexeme, p.Print(expr.Right)), nil
}

// VisitExprGrouping implements ExprVisitor.
func (p *AstPrinter) VisitExprGrouping(expr *ExprGrouping) (any, error) {
	return p.parenthesize(p.Print(expr.Expression)), nil
}

// VisitExprLiteral implements ExprVisitor.
func (p *AstPrinter) VisitExprLiteral(expr *ExprLiteral) (any, error) {
	return literalText(expr), nil
}

// VisitExprUnary implements ExprVisitor.
func (p *AstPrinter) VisitExprUnary(expr *ExprUnary) (any, error) {
	return p.parenthesize(expr.Operator.Lexeme, p.Print(expr.Right)), nil
}

// VisitExprVariable implements ExprVisitor.
func (p *AstPrinter) VisitExprVariable(expr *ExprVariable) (any, error) {
	return expr.Name.Lexeme, nil
}

// VisitStmtExpression implements StmtVisitor.
func (p *AstPrinter) VisitStmtExpression(stmt *StmtExpression) (any, error) {
	return p.Print(stmt.Expression) + ";", nil
}

// VisitStmtPrint implements StmtVisitor.
func (p *AstPrinter) VisitStmtPrint(stmt *StmtPrint) (any, error) {
	return "print " + p.Print(stmt.Expression) + ";", nil
}

// VisitStmtVar implements StmtVisitor.
func (p *AstPrinter) VisitStmtVar(stmt *StmtVar) (any, error) {
	if stmt.Initializer == nil {
		return "var " + stmt.Name.Lexeme + ";", nil
	}
	return "var " + stmt.Name.Lexeme + " = " + p.Print(stmt.Initializer) + ";", nil
}

func (p *AstPrinter) parenthesize(parts ...string) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(strings.Join(parts, " "))
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) Print(expr Expr) string {
	return asStr(expr.Accept(p))
}

func (p *AstPrinter) PrintStmt(stmt Stmt) string {
	return asStr(stmt.Accept(p))
}

// PrintProgram renders one statement per line.
func (p *AstPrinter) PrintProgram(statements []Stmt) string {
	lines := make([]string, len(statements))
	for i, stmt := range statements {
		lines[i] = p.PrintStmt(stmt)
	}
	return strings.Join(lines, "\n")
}

func literalText(expr *ExprLiteral) string {
	if expr.Token != nil {
		return expr.Token.Lexeme
	}
	if expr.Value == nil {
		return "<nil>"
	}
	return expr.Value.GoString()
}

func asStr(v any, _ error) string {
	if v == nil {
		return "<nil>"
	}

	return v.(string)
}

var _ Printer = (*AstPrinter)(nil)
var _ ExprVisitor = (*AstPrinter)(nil)
var _ StmtVisitor = (*AstPrinter)(nil)
