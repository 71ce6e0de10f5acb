package parser

import "github.com/leonardinius/loxlite/internal/token"

// ExprVisitor is the interface that wraps the Visit methods for expressions.
//
// Visit is called for every node in the tree.
type ExprVisitor interface {
	VisitExprBinary(expr *ExprBinary) (any, error)
	VisitExprGrouping(expr *ExprGrouping) (any, error)
	VisitExprLiteral(expr *ExprLiteral) (any, error)
	VisitExprUnary(expr *ExprUnary) (any, error)
	VisitExprVariable(expr *ExprVariable) (any, error)
}

// StmtVisitor is the interface that wraps the Visit methods for statements.
type StmtVisitor interface {
	VisitStmtExpression(stmt *StmtExpression) (any, error)
	VisitStmtPrint(stmt *StmtPrint) (any, error)
	VisitStmtVar(stmt *StmtVar) (any, error)
}

type Expr interface {
	Accept(v ExprVisitor) (any, error)
}

type Stmt interface {
	Accept(v StmtVisitor) (any, error)
}

type ExprBinary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

type ExprGrouping struct {
	Expression Expr
}

// ExprLiteral holds an already converted value.
// Token is the source token when the literal came from the parser, nil otherwise.
type ExprLiteral struct {
	Value Value
	Token *token.Token
}

type ExprUnary struct {
	Operator *token.Token
	Right    Expr
}

type ExprVariable struct {
	Name *token.Token
}

type StmtExpression struct {
	Expression Expr
}

type StmtPrint struct {
	Expression Expr
}

// StmtVar declares a variable; a nil Initializer binds nil.
type StmtVar struct {
	Name        *token.Token
	Initializer Expr
}

func (e *ExprBinary) Accept(v ExprVisitor) (any, error) {
	return v.VisitExprBinary(e)
}

func (e *ExprGrouping) Accept(v ExprVisitor) (any, error) {
	return v.VisitExprGrouping(e)
}

func (e *ExprLiteral) Accept(v ExprVisitor) (any, error) {
	return v.VisitExprLiteral(e)
}

func (e *ExprUnary) Accept(v ExprVisitor) (any, error) {
	return v.VisitExprUnary(e)
}

func (e *ExprVariable) Accept(v ExprVisitor) (any, error) {
	return v.VisitExprVariable(e)
}

func (s *StmtExpression) Accept(v StmtVisitor) (any, error) {
	return v.VisitStmtExpression(s)
}

func (s *StmtPrint) Accept(v StmtVisitor) (any, error) {
	return v.VisitStmtPrint(s)
}

func (s *StmtVar) Accept(v StmtVisitor) (any, error) {
	return v.VisitStmtVar(s)
}

var (
	_ Expr = (*ExprBinary)(nil)
	_ Expr = (*ExprGrouping)(nil)
	_ Expr = (*ExprLiteral)(nil)
	_ Expr = (*ExprUnary)(nil)
	_ Expr = (*ExprVariable)(nil)
	_ Stmt = (*StmtExpression)(nil)
	_ Stmt = (*StmtPrint)(nil)
	_ Stmt = (*StmtVar)(nil)
)
