package parser

import (
	"strings"

	"github.com/leonardinius/loxlite/internal/token"
)

// RPNPrinter renders expressions in reverse polish notation.
// Unary minus is written as "~" to tell it apart from subtraction.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

// VisitExprBinary implements ExprVisitor.
func (p *RPNPrinter) VisitExprBinary(expr *ExprBinary) (any, error) {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right), nil
}

// VisitExprGrouping implements ExprVisitor.
func (p *RPNPrinter) VisitExprGrouping(expr *ExprGrouping) (any, error) {
	return p.reverse("", expr.Expression), nil
}

// VisitExprLiteral implements ExprVisitor.
func (p *RPNPrinter) VisitExprLiteral(expr *ExprLiteral) (any, error) {
	return literalText(expr), nil
}

// VisitExprUnary implements ExprVisitor.
func (p *RPNPrinter) VisitExprUnary(expr *ExprUnary) (any, error) {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, expr.Right), nil
}

// VisitExprVariable implements ExprVisitor.
func (p *RPNPrinter) VisitExprVariable(expr *ExprVariable) (any, error) {
	return expr.Name.Lexeme, nil
}

// VisitStmtExpression implements StmtVisitor.
func (p *RPNPrinter) VisitStmtExpression(stmt *StmtExpression) (any, error) {
	return p.Print(stmt.Expression), nil
}

// VisitStmtPrint implements StmtVisitor.
func (p *RPNPrinter) VisitStmtPrint(stmt *StmtPrint) (any, error) {
	return p.Print(stmt.Expression) + " print", nil
}

// VisitStmtVar implements StmtVisitor.
func (p *RPNPrinter) VisitStmtVar(stmt *StmtVar) (any, error) {
	if stmt.Initializer == nil {
		return "nil " + stmt.Name.Lexeme + " var", nil
	}
	return p.Print(stmt.Initializer) + " " + stmt.Name.Lexeme + " var", nil
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(p.Print(expr))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

func (p *RPNPrinter) Print(expr Expr) string {
	return asStr(expr.Accept(p))
}

func (p *RPNPrinter) PrintStmt(stmt Stmt) string {
	return asStr(stmt.Accept(p))
}

// PrintProgram renders one statement per line.
func (p *RPNPrinter) PrintProgram(statements []Stmt) string {
	lines := make([]string, len(statements))
	for i, stmt := range statements {
		lines[i] = p.PrintStmt(stmt)
	}
	return strings.Join(lines, "\n")
}

var _ Printer = (*RPNPrinter)(nil)
var _ ExprVisitor = (*RPNPrinter)(nil)
var _ StmtVisitor = (*RPNPrinter)(nil)
