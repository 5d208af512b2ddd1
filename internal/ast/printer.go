package ast

import (
	"fmt"
	"strings"
)

// AstPrinter renders an expression tree as a canonical, fully
// parenthesized string: `(<operator lexeme> <operands...>)`, groupings as
// `(group ...)`. The rendering is a pure function of the tree, useful for
// debugging and golden tests.
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.asStr(expr.Accept(p))
}

// VisitBinaryExpr implements Visitor.
func (p *AstPrinter) VisitBinaryExpr(expr *Binary) any {
	return p.parenthesize(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitGroupingExpr implements Visitor.
func (p *AstPrinter) VisitGroupingExpr(expr *Grouping) any {
	return p.parenthesize("group", expr.Expression)
}

// VisitLiteralExpr implements Visitor.
func (p *AstPrinter) VisitLiteralExpr(expr *Literal) any {
	if expr.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", expr.Value)
}

// VisitUnaryExpr implements Visitor.
func (p *AstPrinter) VisitUnaryExpr(expr *Unary) any {
	return p.parenthesize(expr.Operator.Lexeme, expr.Right)
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.asStr(expr.Accept(p)))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) asStr(v any) string {
	return v.(string)
}

var _ Visitor = (*AstPrinter)(nil)
