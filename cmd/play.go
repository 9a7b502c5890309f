package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arcanaland/klondike/internal/pile"
)

const playHelp = `Commands:
  s, w            select the stock or the waste
  f1..f4          select a foundation
  t1..t7          select a tableau
  click X Y       select whatever pile is at logical position X,Y
  new             deal a new game
  help            show this help
  quit            leave the game`

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game",
	Long: `Play starts an interactive game. Type a pile name to select it: the
stock draws a card (or takes the waste back when empty), other piles play
their top card, or the whole face-up run of a tableau, wherever it fits.

` + playHelp,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		return s.play(cmd.InOrStdin())
	},
}

func init() {
	RootCmd.AddCommand(playCmd)
}

// play reads commands from in until quit or end of input
func (s *session) play(in io.Reader) error {
	if err := s.draw(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "q", "quit", "exit":
			return nil
		case "h", "help", "?":
			fmt.Fprintln(s.out, playHelp)
			continue
		case "n", "new":
			s.table.NewGame()
		case "click":
			p, err := parsePoint(fields[1:])
			if err != nil {
				pterm.Warning.WithWriter(s.out).Println(err)
				continue
			}
			s.report(s.table.Dispatch(p))
		default:
			ref, err := pile.ParseRef(fields[0])
			if err != nil {
				pterm.Warning.WithWriter(s.out).Printfln("%v (type help for commands)", err)
				continue
			}
			m, err := s.table.Select(ref)
			if err != nil {
				pterm.Warning.WithWriter(s.out).Println(err)
				continue
			}
			s.report(m)
		}

		if err := s.draw(); err != nil {
			return err
		}
	}
}

func (s *session) report(m pile.Move) {
	if m.Changed() {
		fmt.Fprintln(s.out, m)
	}
}

func parsePoint(args []string) (pile.Point, error) {
	if len(args) != 2 {
		return pile.Point{}, fmt.Errorf("usage: click X Y")
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return pile.Point{}, fmt.Errorf("invalid x coordinate %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return pile.Point{}, fmt.Errorf("invalid y coordinate %q", args[1])
	}
	return pile.Point{X: x, Y: y}, nil
}
