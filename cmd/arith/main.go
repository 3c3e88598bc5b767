package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arith",
		Short: "An interactive arithmetic expression evaluator",

		SilenceUsage:  true,
		SilenceErrors: true,

		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(cmd)
		},
	}

	rootCmd.AddCommand(newReplCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newASTCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
