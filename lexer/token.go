package lexer

import (
	"strconv"
)

// Token represents a known sequence of characters (lexical unit)
type Token struct {
	tt  TokenType
	num float64
	op  Operator

	line int
	col  int
}

// NewNumber creates a lexical unit holding a numeric value
func NewNumber(num float64, line int, col int) Token {
	return Token{
		tt:   TokenNumber,
		num:  num,
		line: line,
		col:  col,
	}
}

// NewOperator creates a lexical unit holding an operator
func NewOperator(op Operator, line int, col int) Token {
	return Token{
		tt:   TokenOperator,
		op:   op,
		line: line,
		col:  col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column of the lexical unit
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// Number returns the numeric value of a number token
func (t Token) Number() float64 {
	return t.num
}

// Operator returns the operator held by an operator token
func (t Token) Operator() Operator {
	return t.op
}

func (t Token) String() string {
	switch t.tt {
	case TokenNumber:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case TokenOperator:
		return t.op.String()
	}
	return tokenNames[TokenInvalid]
}
