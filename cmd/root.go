package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "lacs",
	Short: "Lacs CLI — front end for the Lacs expression language",
	Long: `Lacs is the front end for a small statically-typed expression language
with procedure definitions, integer arithmetic, conditionals, and
local/parameter declarations.

Commands:
  check  Parse and type-check a (.lacs) source file
  repl   Start an interactive check loop
`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(CheckCmd, ReplCmd)
}
