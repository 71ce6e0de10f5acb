package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/sahilm/fuzzy"

	"github.com/leonardinius/loxlite/internal/loxerrors"
	"github.com/leonardinius/loxlite/internal/parser"
	"github.com/leonardinius/loxlite/internal/token"
)

type Interpreter interface {
	// Interpret executes the statements in order.
	// A failing statement is reported and execution continues with the next one.
	// Returns the value of the last expression statement (nil otherwise) and
	// the joined errors of all failed statements.
	//
	// Not thread safe.
	Interpret(ctx context.Context, statements []parser.Stmt) (Value, error)

	// Evaluate evaluates a single expression against the environment.
	// Errors are returned, not reported.
	//
	// Not thread safe.
	Evaluate(ctx context.Context, expr parser.Expr) (Value, error)

	// Environment returns the bindings shared by all runs of this interpreter.
	Environment() Environment
}

type interpreter struct {
	globals  Environment
	stdout   io.Writer
	reporter loxerrors.ErrReporter
	logger   *slog.Logger
}

func NewInterpreter(options ...InterpreterOption) Interpreter {
	opts := newInterpreterOpts(options...)
	return &interpreter{
		globals:  opts.globals,
		stdout:   opts.stdout,
		reporter: opts.reporter,
		logger:   opts.logger,
	}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(ctx context.Context, statements []parser.Stmt) (Value, error) {
	var (
		last Value = NilValue
		errs []error
	)

	for n, stmt := range statements {
		value, err := i.execute(stmt)
		if err != nil {
			i.logger.DebugContext(ctx, "statement failed", slog.Int("statement", n), slog.Any("error", err))
			i.reporter.ReportError(err)
			errs = append(errs, err)
			last = NilValue
			continue
		}
		last = value
	}

	i.logger.DebugContext(ctx, "interpreted",
		slog.Int("statements", len(statements)),
		slog.Int("failed", len(errs)),
	)

	return last, errors.Join(errs...)
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(ctx context.Context, expr parser.Expr) (Value, error) {
	value, err := i.evaluate(expr)
	if err != nil {
		i.logger.DebugContext(ctx, "evaluation failed", slog.Any("error", err))
	}
	return value, err
}

// Environment implements Interpreter.
func (i *interpreter) Environment() Environment {
	return i.globals
}

// VisitStmtExpression implements parser.StmtVisitor.
func (i *interpreter) VisitStmtExpression(stmt *parser.StmtExpression) (any, error) {
	return i.evaluate(stmt.Expression)
}

// VisitStmtPrint implements parser.StmtVisitor.
func (i *interpreter) VisitStmtPrint(stmt *parser.StmtPrint) (any, error) {
	value, err := i.evaluate(stmt.Expression)
	if err != nil {
		return nil, err
	}

	if _, err = fmt.Fprintln(i.stdout, value.String()); err != nil {
		return nil, err
	}
	return NilValue, nil
}

// VisitStmtVar implements parser.StmtVisitor.
func (i *interpreter) VisitStmtVar(stmt *parser.StmtVar) (any, error) {
	var value Value = NilValue
	if stmt.Initializer != nil {
		var err error
		if value, err = i.evaluate(stmt.Initializer); err != nil {
			return nil, err
		}
	}

	i.globals.Define(stmt.Name.Lexeme, value)
	return NilValue, nil
}

// VisitExprBinary implements parser.ExprVisitor.
func (i *interpreter) VisitExprBinary(expr *parser.ExprBinary) (any, error) {
	left, err := i.evaluate(expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.BANG_EQUAL:
		eq, err := i.isEqual(expr.Operator, left, right)
		return boolValue(!eq), err
	case token.EQUAL_EQUAL:
		eq, err := i.isEqual(expr.Operator, left, right)
		return boolValue(eq), err
	}

	l, r, err := i.numberOperands(expr.Operator, left, right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.GREATER:
		return boolValue(l > r), nil
	case token.GREATER_EQUAL:
		return boolValue(l >= r), nil
	case token.LESS:
		return boolValue(l < r), nil
	case token.LESS_EQUAL:
		return boolValue(l <= r), nil
	case token.MINUS:
		return l - r, nil
	case token.PLUS:
		return l + r, nil
	case token.SLASH:
		return l / r, nil
	case token.STAR:
		return l * r, nil
	}

	return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeUnknownOperator)
}

// VisitExprGrouping implements parser.ExprVisitor.
func (i *interpreter) VisitExprGrouping(expr *parser.ExprGrouping) (any, error) {
	return i.evaluate(expr.Expression)
}

// VisitExprLiteral implements parser.ExprVisitor.
func (i *interpreter) VisitExprLiteral(expr *parser.ExprLiteral) (any, error) {
	if expr.Value == nil {
		return nil, loxerrors.NewRuntimeError(expr.Token, loxerrors.ErrRuntimeUnsupportedValue)
	}
	return expr.Value, nil
}

// VisitExprUnary implements parser.ExprVisitor.
func (i *interpreter) VisitExprUnary(expr *parser.ExprUnary) (any, error) {
	right, err := i.evaluate(expr.Right)
	if err != nil {
		return nil, err
	}

	switch expr.Operator.Type {
	case token.MINUS:
		n, ok := right.(parser.ValueNumber)
		if !ok {
			return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeOperandMustBeNumber)
		}
		return -n, nil
	case token.BANG:
		return boolValue(!isTruthy(right)), nil
	}

	return nil, loxerrors.NewRuntimeError(expr.Operator, loxerrors.ErrRuntimeUnknownOperator)
}

// VisitExprVariable implements parser.ExprVisitor.
func (i *interpreter) VisitExprVariable(expr *parser.ExprVariable) (any, error) {
	if value, ok := i.globals.Get(expr.Name.Lexeme); ok {
		return value, nil
	}

	rt := loxerrors.NewRuntimeError(expr.Name, loxerrors.ErrRuntimeUndefinedVariableName(expr.Name.Lexeme))
	rt.Suggestion = i.suggest(expr.Name.Lexeme)
	return nil, rt
}

func (i *interpreter) execute(stmt parser.Stmt) (Value, error) {
	return asValue(stmt.Accept(i))
}

func (i *interpreter) evaluate(expr parser.Expr) (Value, error) {
	return asValue(expr.Accept(i))
}

func asValue(v any, err error) (Value, error) {
	if err != nil {
		return nil, err
	}
	value, ok := v.(Value)
	if !ok {
		return nil, loxerrors.NewRuntimeError(nil, fmt.Errorf("%w %T", loxerrors.ErrRuntimeUnsupportedValue, v))
	}
	return value, nil
}

// isEqual requires both operands to carry the same tag.
// Numbers compare as IEEE-754 doubles, so NaN is not equal to itself.
func (i *interpreter) isEqual(op *token.Token, left, right Value) (bool, error) {
	switch l := left.(type) {
	case parser.ValueNil:
		if _, ok := right.(parser.ValueNil); ok {
			return true, nil
		}
	case parser.ValueBool:
		if r, ok := right.(parser.ValueBool); ok {
			return l == r, nil
		}
	case parser.ValueNumber:
		if r, ok := right.(parser.ValueNumber); ok {
			return l == r, nil
		}
	case parser.ValueString:
		if r, ok := right.(parser.ValueString); ok {
			return l == r, nil
		}
	}

	return false, loxerrors.NewRuntimeError(op, loxerrors.ErrRuntimeOperandsMustBeSameType)
}

func (i *interpreter) numberOperands(op *token.Token, left, right Value) (parser.ValueNumber, parser.ValueNumber, error) {
	l, ok := left.(parser.ValueNumber)
	if !ok {
		return 0, 0, loxerrors.NewRuntimeError(op, loxerrors.ErrRuntimeOperandMustBeNumber)
	}
	r, ok := right.(parser.ValueNumber)
	if !ok {
		return 0, 0, loxerrors.NewRuntimeError(op, loxerrors.ErrRuntimeOperandMustBeNumber)
	}
	return l, r, nil
}

// suggest returns the closest bound name, or "" if nothing resembles name.
func (i *interpreter) suggest(name string) string {
	matches := fuzzy.Find(name, i.globals.Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

var (
	_ Interpreter        = (*interpreter)(nil)
	_ parser.ExprVisitor = (*interpreter)(nil)
	_ parser.StmtVisitor = (*interpreter)(nil)
)
