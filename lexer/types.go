package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid  TokenType = iota
	TokenNumber             // Numeric literal: "42", "4.5", "3."
	TokenOperator           // Arithmetic operator: "+", "-", "*" or "/"
)

var tokenNames = map[TokenType]string{
	TokenInvalid:  "invalid",
	TokenNumber:   "number",
	TokenOperator: "operator",
}

func (tt TokenType) String() string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

// Operator represents the four arithmetic operators
type Operator uint8

// List of operators
const (
	OperatorPlus Operator = iota
	OperatorMinus
	OperatorStar
	OperatorSlash
)

var operatorSymbols = map[Operator]rune{
	OperatorPlus:  '+',
	OperatorMinus: '-',
	OperatorStar:  '*',
	OperatorSlash: '/',
}

func (op Operator) String() string {
	if r, ok := operatorSymbols[op]; ok {
		return string(r)
	}
	panic("unknown operator")
}

// operatorFromRune maps an operator symbol to its Operator value. Runes
// that are not one of the four operator symbols yield ErrOperatorFormat.
func operatorFromRune(r rune) (Operator, error) {
	for op, symbol := range operatorSymbols {
		if symbol == r {
			return op, nil
		}
	}
	return 0, ErrOperatorFormat
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isWhitespace reports whether r is one of the two skippable characters.
// Tabs and carriage returns are not skipped; they fail the scan instead.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\n'
}
