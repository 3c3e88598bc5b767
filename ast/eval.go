package ast

import (
	"github.com/xiam/arith/lexer"
)

// Eval returns the value of the literal.
func (l *Literal) Eval() float64 {
	return l.tok.Number()
}

// Eval negates the value of the inner expression.
func (u *Unary) Eval() float64 {
	if u.op.Operator() == lexer.OperatorMinus {
		return -u.inner.Eval()
	}
	panic("unreachable")
}

// Eval applies the node's operator to the values of its operands, left one
// first. Arithmetic follows IEEE-754: dividing by zero yields an infinity
// or NaN instead of an error.
func (b *Binary) Eval() float64 {
	left, right := b.left.Eval(), b.right.Eval()

	switch b.op.Operator() {
	case lexer.OperatorPlus:
		return left + right
	case lexer.OperatorMinus:
		return left - right
	case lexer.OperatorStar:
		return left * right
	case lexer.OperatorSlash:
		return left / right
	}

	panic("unreachable")
}
