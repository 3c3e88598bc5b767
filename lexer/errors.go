package lexer

import (
	"errors"
)

// Lexing failures. ErrOperatorFormat never escapes the scan loop: a
// character that is not an operator symbol makes the operator sub-scanner
// decline, and a character no sub-scanner accepts surfaces as
// ErrUnexpectedToken.
var (
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrNumberFormat    = errors.New("cannot parse number")
	ErrOperatorFormat  = errors.New("cannot parse operator")
)

// errNoMatch makes a sub-scanner decline the character under the cursor
// without consuming it, so the scan loop can try the next sub-scanner.
var errNoMatch = errors.New("no match")

// Error is a lexing failure tied to the position that produced it.
type Error struct {
	err  error
	line int
	col  int
}

func newError(err error, line int, col int) *Error {
	return &Error{
		err:  err,
		line: line,
		col:  col,
	}
}

func (e *Error) Error() string {
	return "[TOKENIZER ERROR]: " + e.err.Error()
}

// Unwrap returns the failure sentinel wrapped by the error.
func (e *Error) Unwrap() error {
	return e.err
}

// Pos returns the line and column the failure was detected at.
func (e *Error) Pos() (int, int) {
	return e.line, e.col
}
