// Package arith evaluates infix arithmetic expressions over IEEE-754
// doubles. An input line goes through a fixed pipeline: the lexer turns
// characters into tokens, the parser turns tokens into an expression tree,
// and the tree evaluates to a number.
package arith

import (
	"github.com/xiam/arith/ast"
	"github.com/xiam/arith/lexer"
	"github.com/xiam/arith/parser"
)

// Parse lexes and parses one expression line and returns its tree.
func Parse(in []byte) (ast.Expr, error) {
	tokens, err := lexer.Tokenize(in)
	if err != nil {
		return nil, err
	}

	return parser.Parse(tokens)
}

// Eval parses one expression line and returns its value.
func Eval(in []byte) (float64, error) {
	expr, err := Parse(in)
	if err != nil {
		return 0, err
	}

	return expr.Eval(), nil
}
