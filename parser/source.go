package parser

import (
	"github.com/xiam/arith/lexer"
)

// TokenSource is a token sequence with one token of lookahead. Peek reports
// the next token without consuming it and Next consumes it; both report
// ok = false once the sequence is exhausted.
type TokenSource interface {
	Peek() (tok lexer.Token, ok bool)
	Next() (tok lexer.Token, ok bool)
}

// sliceSource walks a token slice, such as the one produced by
// lexer.Tokenize.
type sliceSource struct {
	tokens []lexer.Token
	pos    int
}

// NewSource adapts a token slice into a TokenSource.
func NewSource(tokens []lexer.Token) TokenSource {
	return &sliceSource{tokens: tokens}
}

func (s *sliceSource) Peek() (lexer.Token, bool) {
	if s.pos >= len(s.tokens) {
		return lexer.Token{}, false
	}
	return s.tokens[s.pos], true
}

func (s *sliceSource) Next() (lexer.Token, bool) {
	tok, ok := s.Peek()
	if ok {
		s.pos++
	}
	return tok, ok
}
