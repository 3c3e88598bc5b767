package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xiam/arith"
)

// readExpr returns the expression given as arguments, or the first line of
// the standard input when no arguments were given. The expression commands
// disable flag parsing so that a leading minus, as in "-7 * 2", is not
// mistaken for a flag; a conventional "--" separator before the expression
// is accepted and skipped.
func readExpr(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		return nil, scanner.Err()
	}
	return scanner.Bytes(), nil
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval [expr]",
		Short: "Evaluate one expression and print its tree and value",

		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readExpr(cmd, args)
			if err != nil {
				return err
			}

			expr, err := arith.Parse(in)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), expr)
			fmt.Fprintln(cmd.OutOrStdout(), expr.Eval())
			return nil
		},
	}
}
