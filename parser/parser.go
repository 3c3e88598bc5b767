package parser

import (
	"github.com/xiam/arith/ast"
	"github.com/xiam/arith/lexer"
)

// Parser builds an expression tree out of a token sequence.
//
// The grammar it implements, from lowest to highest precedence:
//
//	Program  → Term
//	Term     → Factor (("+" | "-") Factor)*
//	Factor   → Unary  (("*" | "/") Unary)*
//	Unary    → "-" Literal | Literal
//	Literal  → Number
//
// Both binary levels fold to the left, so "10 - 2 - 3" groups as
// "((10 - 2) - 3)".
type Parser struct {
	src TokenSource
}

// New initializes a Parser that reads tokens from src
func New(src TokenSource) *Parser {
	return &Parser{src: src}
}

// Parse consumes one expression from the token sequence and returns its
// tree. Tokens past the end of the expression are left unconsumed.
func (p *Parser) Parse() (ast.Expr, error) {
	return p.parseTerm()
}

// match consumes the next token only when it is an operator among ops.
func (p *Parser) match(ops ...lexer.Operator) (lexer.Token, bool) {
	tok, ok := p.src.Peek()
	if !ok || !tok.Is(lexer.TokenOperator) {
		return lexer.Token{}, false
	}

	for _, op := range ops {
		if tok.Operator() == op {
			p.src.Next()
			return tok, true
		}
	}

	return lexer.Token{}, false
}

func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.match(lexer.OperatorPlus, lexer.OperatorMinus)
		if !ok {
			return left, nil
		}

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = ast.NewBinary(left, op, right)
	}
}

func (p *Parser) parseFactor() (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.match(lexer.OperatorStar, lexer.OperatorSlash)
		if !ok {
			return left, nil
		}

		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}

		left = ast.NewBinary(left, op, right)
	}
}

// parseUnary accepts a minus sign in front of a literal. Any other operator
// cannot head an expression.
func (p *Parser) parseUnary() (ast.Expr, error) {
	tok, ok := p.src.Peek()
	if !ok {
		return nil, newError(ErrIncompleteExpression)
	}

	if tok.Is(lexer.TokenOperator) {
		if tok.Operator() != lexer.OperatorMinus {
			return nil, newError(ErrUnaryExpression)
		}
		p.src.Next()

		lit, err := p.parseLiteral()
		if err != nil {
			return nil, err
		}

		return ast.NewUnary(tok, lit), nil
	}

	return p.parseLiteral()
}

// parseLiteral consumes the one terminal of the grammar, a number token.
func (p *Parser) parseLiteral() (ast.Expr, error) {
	tok, ok := p.src.Next()
	if !ok {
		return nil, newError(ErrIncompleteExpression)
	}
	if !tok.Is(lexer.TokenNumber) {
		return nil, newError(ErrUnexpectedExpression)
	}

	return ast.NewLiteral(tok), nil
}

// Parse builds the expression tree for the given token sequence.
func Parse(tokens []lexer.Token) (ast.Expr, error) {
	return New(NewSource(tokens)).Parse()
}
