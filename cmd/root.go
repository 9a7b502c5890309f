package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "klondike",
	Short: "Single-deck Klondike solitaire in the terminal",
	Long: `Klondike is a terminal solitaire game: one deck, draw one, unlimited
passes through the stock. Select piles by name (s, w, f1-f4, t1-t7) or
by clicking logical coordinates.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().Int64("seed", 0, "Shuffle seed for a reproducible deal (0 picks one at random)")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().String("log-file", "", "Write a move log to this file ('default' uses the XDG state directory)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
