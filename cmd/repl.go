package cmd

import (
	"github.com/spf13/cobra"

	"lacs/repl"
)

var ReplCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive check loop",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return repl.Start(cmd.OutOrStdout())
	},
}
