package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// dealCmd prints one freshly dealt table
var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Print a freshly dealt table",
	Long: `Deal shuffles a deck, lays out the seven tableaus and prints the table.
Combine with --seed to reproduce a deal.

Examples:
  klondike deal
  klondike deal --seed 1996`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		if err := s.draw(); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "game %s, seed %d\n", s.table.ID(), s.table.Seed())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)
}
