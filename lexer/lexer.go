package lexer

import (
	"strconv"
)

// scanFunc attempts to scan one token at the cursor. It reports emitted =
// false when the consumed characters produce no token (whitespace), and
// declines with errNoMatch when the cursor character is not one it can
// scan.
type scanFunc func(lx *Lexer) (tok Token, emitted bool, err error)

// scanners are tried in order at every cursor position.
var scanners = []scanFunc{
	(*Lexer).scanNumber,
	(*Lexer).scanOperator,
}

// Lexer splits an input line into tokens
type Lexer struct {
	in  []rune
	pos int

	line int
	col  int
}

// New initializes a Lexer over the given input
func New(in []byte) *Lexer {
	return &Lexer{
		in:   []rune(string(in)),
		line: 1,
		col:  1,
	}
}

// Scan consumes the whole input and returns the tokens found in it, or the
// first lexing error.
func (lx *Lexer) Scan() ([]Token, error) {
	tokens := []Token{}

	for lx.pos < len(lx.in) {
		tok, emitted, err := lx.scanToken()
		if err != nil {
			return nil, err
		}
		if emitted {
			tokens = append(tokens, tok)
		}
	}

	return tokens, nil
}

func (lx *Lexer) scanToken() (Token, bool, error) {
	for _, scan := range scanners {
		tok, emitted, err := scan(lx)
		if err == errNoMatch {
			continue
		}
		if err != nil {
			return Token{}, false, err
		}
		return tok, emitted, nil
	}

	return Token{}, false, newError(ErrUnexpectedToken, lx.line, lx.col)
}

// scanNumber consumes a numeric literal: one or more digits optionally
// followed by a dot and more digits. A second dot makes the whole literal
// malformed.
func (lx *Lexer) scanNumber() (Token, bool, error) {
	if !isDigit(lx.peek()) {
		return Token{}, false, errNoMatch
	}

	line, col := lx.line, lx.col
	start := lx.pos

	for isDigit(lx.peek()) {
		lx.next()
	}
	if lx.peek() == '.' {
		lx.next()
		for isDigit(lx.peek()) {
			lx.next()
		}
		if lx.peek() == '.' {
			return Token{}, false, newError(ErrNumberFormat, line, col)
		}
	}

	num, err := strconv.ParseFloat(string(lx.in[start:lx.pos]), 64)
	if err != nil {
		return Token{}, false, newError(ErrNumberFormat, line, col)
	}

	return NewNumber(num, line, col), true, nil
}

// scanOperator consumes one operator symbol, or one whitespace character
// (space or newline) without emitting a token.
func (lx *Lexer) scanOperator() (Token, bool, error) {
	r := lx.peek()

	if isWhitespace(r) {
		lx.next()
		return Token{}, false, nil
	}

	op, err := operatorFromRune(r)
	if err != nil {
		return Token{}, false, errNoMatch
	}

	line, col := lx.line, lx.col
	lx.next()

	return NewOperator(op, line, col), true, nil
}

func (lx *Lexer) peek() rune {
	if lx.pos >= len(lx.in) {
		return 0
	}
	return lx.in[lx.pos]
}

func (lx *Lexer) next() rune {
	r := lx.peek()
	lx.pos++

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	return r
}

// Tokenize takes an input line and returns all the tokens within it, or an
// error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	return New(in).Scan()
}
