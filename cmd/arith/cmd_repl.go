package main

import (
	"github.com/spf13/cobra"
	"github.com/xiam/arith/repl"
)

func runRepl(cmd *cobra.Command) error {
	return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate expressions interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}
}
