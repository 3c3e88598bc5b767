package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xiam/arith/lexer"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [expr]",
		Short: "Print the token stream of an expression",

		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readExpr(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := lexer.Tokenize(in)
			if err != nil {
				return err
			}

			for i, tok := range tokens {
				line, col := tok.Pos()
				fmt.Fprintf(cmd.OutOrStdout(), "token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n", i, tok.Type(), line, col, tok.String())
			}
			return nil
		},
	}
}
