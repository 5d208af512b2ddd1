package ast

import "github.com/poxlang/pox/internal/token"

// Visitor is the dispatch contract for operations over expression trees.
// One method per node variant; the variant set is closed, so adding a
// variant means extending this interface and every implementation.
type Visitor interface {
	VisitBinaryExpr(expr *Binary) any
	VisitGroupingExpr(expr *Grouping) any
	VisitLiteralExpr(expr *Literal) any
	VisitUnaryExpr(expr *Unary) any
}

// Expr is one node of an expression tree. Nodes are built bottom-up by
// the parser, own their children exclusively, and are immutable once
// constructed: visitors only read.
type Expr interface {
	Accept(v Visitor) any
}

// Binary is an infix operation. Operator is the originating token, kept
// whole so printers and the future evaluator see the exact source lexeme.
type Binary struct {
	Left     Expr
	Operator *token.Token
	Right    Expr
}

func (e *Binary) Accept(v Visitor) any {
	return v.VisitBinaryExpr(e)
}

// Grouping is a parenthesized sub-expression.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) Accept(v Visitor) any {
	return v.VisitGroupingExpr(e)
}

// Literal is a constant: float64, string, bool, or nil.
type Literal struct {
	Value any
}

func (e *Literal) Accept(v Visitor) any {
	return v.VisitLiteralExpr(e)
}

// Unary is a prefix operation.
type Unary struct {
	Operator *token.Token
	Right    Expr
}

func (e *Unary) Accept(v Visitor) any {
	return v.VisitUnaryExpr(e)
}

var _ Expr = (*Binary)(nil)
var _ Expr = (*Grouping)(nil)
var _ Expr = (*Literal)(nil)
var _ Expr = (*Unary)(nil)
