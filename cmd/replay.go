package cmd

import (
	"fmt"

	"github.com/arcanaland/klondike/internal/pile"
	"github.com/spf13/cobra"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay [pile...]",
	Short: "Replay a sequence of selections and check the table",
	Long: `Replay deals a game, selects each named pile in order and then checks
that no card was lost or duplicated, that every foundation runs ace upward
in one suit and that every tableau run alternates colors.

Examples:
  klondike replay --seed 1996 s s t7 w t3
  klondike replay --seed 7 t1 t2 t3 t4 t5 t6 t7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		for i, name := range args {
			ref, err := pile.ParseRef(name)
			if err != nil {
				return fmt.Errorf("selection %d: %w", i+1, err)
			}
			m, err := s.table.Select(ref)
			if err != nil {
				return fmt.Errorf("selection %d: %w", i+1, err)
			}
			fmt.Fprintf(s.out, "%3d. %-3s %s\n", i+1, ref, m)
		}
		fmt.Fprintln(s.out)

		if err := s.draw(); err != nil {
			return err
		}

		fmt.Fprintln(s.out, "Validation Results:")
		fmt.Fprintln(s.out, "-------------------")
		if err := s.table.Verify(); err != nil {
			fmt.Fprintf(s.out, "❌ Table is inconsistent: %v\n", err)
			return fmt.Errorf("validation failed")
		}
		fmt.Fprintf(s.out, "✅ All 52 cards accounted for after %d selections (seed %d).\n", len(args), s.table.Seed())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(replayCmd)
}
