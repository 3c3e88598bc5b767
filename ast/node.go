package ast

import (
	"github.com/xiam/arith/lexer"
)

// Expr represents a node of the expression tree
type Expr interface {
	// Eval folds the expression into its numeric value.
	Eval() float64

	// String returns the canonical parenthesized form of the expression.
	String() string
}

// Literal is a leaf holding a number token
type Literal struct {
	tok lexer.Token
}

// NewLiteral creates a leaf node from a number token
func NewLiteral(tok lexer.Token) *Literal {
	return &Literal{tok: tok}
}

// Token returns the token the literal was built from
func (l *Literal) Token() lexer.Token {
	return l.tok
}

func (l *Literal) String() string {
	return l.tok.String()
}

// Unary is a minus sign applied to an inner expression
type Unary struct {
	op    lexer.Token
	inner Expr
}

// NewUnary creates a node negating the inner expression
func NewUnary(op lexer.Token, inner Expr) *Unary {
	return &Unary{
		op:    op,
		inner: inner,
	}
}

// Op returns the operator token of the node
func (u *Unary) Op() lexer.Token {
	return u.op
}

// Inner returns the negated expression
func (u *Unary) Inner() Expr {
	return u.inner
}

func (u *Unary) String() string {
	return "(" + u.op.String() + u.inner.String() + ")"
}

// Binary applies an operator to a left and a right expression
type Binary struct {
	left  Expr
	op    lexer.Token
	right Expr
}

// NewBinary creates a node applying op to the left and right expressions
func NewBinary(left Expr, op lexer.Token, right Expr) *Binary {
	return &Binary{
		left:  left,
		op:    op,
		right: right,
	}
}

// Left returns the left operand of the node
func (b *Binary) Left() Expr {
	return b.left
}

// Op returns the operator token of the node
func (b *Binary) Op() lexer.Token {
	return b.op
}

// Right returns the right operand of the node
func (b *Binary) Right() Expr {
	return b.right
}

func (b *Binary) String() string {
	return "(" + b.left.String() + " " + b.op.String() + " " + b.right.String() + ")"
}
