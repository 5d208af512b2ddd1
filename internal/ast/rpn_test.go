package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poxlang/pox/internal/ast"
	"github.com/poxlang/pox/internal/token"
)

func TestRPNPrinterVisitor(t *testing.T) {
	t.Parallel()

	// (1 + 2) * (4 - 3)
	var tree ast.Expr = &ast.Binary{
		Left: &ast.Grouping{
			Expression: &ast.Binary{
				Left:     &ast.Literal{Value: float64(1)},
				Operator: token.NewTokenHeap(token.PLUS, "+", nil, 1),
				Right:    &ast.Literal{Value: float64(2)},
			},
		},
		Operator: token.NewTokenHeap(token.STAR, "*", nil, 1),
		Right: &ast.Grouping{
			Expression: &ast.Binary{
				Left:     &ast.Literal{Value: float64(4)},
				Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1),
				Right:    &ast.Literal{Value: float64(3)},
			},
		},
	}

	p := ast.NewRPNPrinter()
	assert.Equal(t, "1 2 + 4 3 - *", p.Print(tree))
}

func TestRPNPrinterUnaryMinus(t *testing.T) {
	t.Parallel()

	var tree ast.Expr = &ast.Unary{
		Operator: token.NewTokenHeap(token.MINUS, "-", nil, 1),
		Right:    &ast.Literal{Value: float64(123)},
	}

	p := ast.NewRPNPrinter()
	assert.Equal(t, "123 ~", p.Print(tree))
}
