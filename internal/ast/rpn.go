package ast

import (
	"fmt"
	"strings"

	"github.com/poxlang/pox/internal/token"
)

// RPNPrinter renders an expression tree in reverse Polish notation.
// It exists mostly to prove a second visitor can be added without touching
// the node variants. Unary minus prints as `~` to keep it distinguishable
// from subtraction.
type RPNPrinter struct{}

func NewRPNPrinter() *RPNPrinter {
	return &RPNPrinter{}
}

func (p *RPNPrinter) Print(expr Expr) string {
	return fmt.Sprintf("%v", expr.Accept(p))
}

// VisitBinaryExpr implements Visitor.
func (p *RPNPrinter) VisitBinaryExpr(expr *Binary) any {
	return p.reverse(expr.Operator.Lexeme, expr.Left, expr.Right)
}

// VisitGroupingExpr implements Visitor.
func (p *RPNPrinter) VisitGroupingExpr(expr *Grouping) any {
	return p.reverse("", expr.Expression)
}

// VisitLiteralExpr implements Visitor.
func (p *RPNPrinter) VisitLiteralExpr(expr *Literal) any {
	if expr.Value == nil {
		return "nil"
	}
	return fmt.Sprintf("%v", expr.Value)
}

// VisitUnaryExpr implements Visitor.
func (p *RPNPrinter) VisitUnaryExpr(expr *Unary) any {
	operator := expr.Operator.Lexeme
	if expr.Operator.Type == token.MINUS {
		operator = "~"
	}
	return p.reverse(operator, expr.Right)
}

func (p *RPNPrinter) reverse(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	for _, expr := range exprs {
		_, _ = out.WriteString(fmt.Sprintf("%v", expr.Accept(p)))
		_, _ = out.WriteString(" ")
	}
	_, _ = out.WriteString(name)
	v := out.String()
	return strings.TrimSuffix(v, " ")
}

var _ Visitor = (*RPNPrinter)(nil)
