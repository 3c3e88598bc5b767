package main

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/xiam/arith"
	"github.com/xiam/arith/ast"
)

func newASTCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ast [--raw] [expr]",
		Short: "Print the expression tree of an expression",

		DisableFlagParsing: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag parsing is off, so the one flag is picked out by
			// hand; it has to come before the expression.
			rawDump := false
			if len(args) > 0 && args[0] == "--raw" {
				rawDump = true
				args = args[1:]
			}

			in, err := readExpr(cmd, args)
			if err != nil {
				return err
			}

			root, err := arith.Parse(in)
			if err != nil {
				return err
			}

			if rawDump {
				spew.Fdump(cmd.OutOrStdout(), root)
				return nil
			}

			ast.Print(cmd.OutOrStdout(), root)
			return nil
		},
	}
}
