package parser

import (
	"errors"
)

// Parse failures.
var (
	ErrUnexpectedExpression = errors.New("unexpected expression")
	ErrUnaryExpression      = errors.New("syntax error in <unary> expression")
	ErrIncompleteExpression = errors.New("syntax error by uncomplete expression")
)

// Error is a parse failure.
type Error struct {
	err error
}

func newError(err error) *Error {
	return &Error{err: err}
}

func (e *Error) Error() string {
	return "[AST PARSE ERROR]: " + e.err.Error()
}

// Unwrap returns the failure sentinel wrapped by the error.
func (e *Error) Unwrap() error {
	return e.err
}
