// Package repl implements the interactive read-eval-print loop.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/xiam/arith"
)

// Prompt is written to the output before reading each input line.
const Prompt = "> "

// Start reads expression lines from in until the stream is exhausted. For
// every line it writes two lines to out, the parenthesized form of the
// expression and its value, or a single diagnostic line to errOut, and then
// prompts again. Errors never stop the loop.
func Start(in io.Reader, out io.Writer, errOut io.Writer) error {
	scanner := bufio.NewScanner(in)

	// The default 64KiB line cap would end the session with
	// bufio.ErrTooLong on a long line.
	scanner.Buffer(nil, math.MaxInt)

	for {
		fmt.Fprint(out, Prompt)

		if !scanner.Scan() {
			break
		}

		expr, err := arith.Parse(scanner.Bytes())
		if err != nil {
			fmt.Fprintln(errOut, err)
			continue
		}

		fmt.Fprintln(out, expr)
		fmt.Fprintln(out, expr.Eval())
	}

	return scanner.Err()
}
