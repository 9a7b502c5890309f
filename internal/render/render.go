package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/pile"
	"github.com/arcanaland/klondike/internal/table"
)

// Symbol sets for suits
const (
	SymbolsUnicode = "unicode"
	SymbolsLetters = "letters"
)

// DefaultCardBack is the back color used when none is configured
const DefaultCardBack = "#1e3a8a"

// Options controls how a table is drawn
type Options struct {
	Color    bool
	Symbols  string
	CardBack string
	// Width overrides terminal width detection when positive
	Width int
}

// Renderer draws table snapshots as text
type Renderer struct {
	out     io.Writer
	symbols string
	back    colorful.Color
	width   int

	red    *color.Color
	black  *color.Color
	label  *color.Color
	status *color.Color
	colors bool
}

// New creates a renderer writing to out
func New(out io.Writer, opts Options) (*Renderer, error) {
	backHex := opts.CardBack
	if backHex == "" {
		backHex = DefaultCardBack
	}
	back, err := colorful.Hex(backHex)
	if err != nil {
		return nil, fmt.Errorf("invalid card back color %q: %w", backHex, err)
	}

	symbols := opts.Symbols
	switch symbols {
	case "":
		symbols = SymbolsUnicode
	case SymbolsUnicode, SymbolsLetters:
	default:
		return nil, fmt.Errorf("unknown suit symbols %q (want %s or %s)", symbols, SymbolsUnicode, SymbolsLetters)
	}

	r := &Renderer{
		out:     out,
		symbols: symbols,
		back:    back,
		width:   opts.Width,
		red:     color.New(color.FgHiRed, color.Bold),
		black:   color.New(color.FgHiWhite, color.Bold),
		label:   color.New(color.FgCyan),
		status:  color.New(color.FgHiYellow),
		colors:  opts.Color,
	}
	for _, c := range []*color.Color{r.red, r.black, r.label, r.status} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if r.width <= 0 {
		r.width = terminalWidth(out)
	}
	return r, nil
}

// terminalWidth returns the width of out if it is a terminal, or 80
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// cellWidth is the visible width of one card cell
const cellWidth = 5

// gap returns the spacing between columns for the current width
func (r *Renderer) gap() string {
	if r.width >= 60 {
		return "  "
	}
	return " "
}

// Render writes the table: foundations, waste and stock on top, the seven
// tableau fans below, each column labelled with its pile name.
func (r *Renderer) Render(s table.Snapshot) error {
	var b strings.Builder
	gap := r.gap()

	// top row, positioned like the layout: foundations left, waste and stock right
	var labels, cells []string
	for i := 0; i < table.NumFoundations; i++ {
		v, _ := s.Pile(pile.Ref{Kind: pile.KindFoundation, Index: i})
		labels = append(labels, v.Ref.String())
		cells = append(cells, r.topCell(v))
	}
	labels = append(labels, "", "")
	cells = append(cells, strings.Repeat(" ", cellWidth), strings.Repeat(" ", cellWidth))

	waste, _ := s.Pile(pile.Ref{Kind: pile.KindWaste})
	stock, _ := s.Pile(pile.Ref{Kind: pile.KindStock})
	labels = append(labels, waste.Ref.String(), stock.Ref.String())
	cells = append(cells, r.topCell(waste), r.topCell(stock))

	b.WriteString(r.labelRow(labels, gap))
	b.WriteString(strings.Join(cells, gap))
	fmt.Fprintf(&b, "  %s\n\n", r.label.Sprintf("(%d)", len(stock.Cards)))

	// tableaus, drawn bottom card first, one row per fan offset
	fans := make([]table.PileView, table.NumTableaus)
	labels = labels[:0]
	depth := 1
	for i := range fans {
		fans[i], _ = s.Pile(pile.Ref{Kind: pile.KindTableau, Index: i})
		labels = append(labels, fans[i].Ref.String())
		if n := len(fans[i].Cards); n > depth {
			depth = n
		}
	}
	b.WriteString(r.labelRow(labels, gap))
	for row := 0; row < depth; row++ {
		cells = cells[:0]
		for _, fan := range fans {
			switch {
			case row < len(fan.Cards):
				cells = append(cells, r.cardCell(fan.Cards[row]))
			case row == 0:
				cells = append(cells, r.emptyCell())
			default:
				cells = append(cells, strings.Repeat(" ", cellWidth))
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, gap), " "))
		b.WriteString("\n")
	}

	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *Renderer) labelRow(labels []string, gap string) string {
	cols := make([]string, len(labels))
	for i, l := range labels {
		cols[i] = fmt.Sprintf("%-*s", cellWidth, " "+l)
	}
	return r.label.Sprint(strings.TrimRight(strings.Join(cols, gap), " ")) + "\n"
}

// topCell shows only the top card of a squared pile
func (r *Renderer) topCell(v table.PileView) string {
	if v.Empty() {
		return r.emptyCell()
	}
	return r.cardCell(v.Cards[len(v.Cards)-1])
}

func (r *Renderer) emptyCell() string {
	return "[   ]"
}

func (r *Renderer) cardCell(c table.CardView) string {
	if !c.FaceUp {
		return r.backCell()
	}

	face := fmt.Sprintf("%2s%s", c.Rank.String(), r.suitSymbol(c.Suit))
	paint := r.black
	if c.Color() == card.Red {
		paint = r.red
	}
	return "[" + paint.Sprint(face) + "]"
}

// backCell fills the card with the configured back color as a 24-bit escape
func (r *Renderer) backCell() string {
	if !r.colors {
		return "[###]"
	}
	red, green, blue := r.back.RGB255()
	return fmt.Sprintf("[\x1b[48;2;%d;%d;%dm   \x1b[0m]", red, green, blue)
}

func (r *Renderer) suitSymbol(s card.Suit) string {
	if r.symbols == SymbolsLetters {
		return s.String()
	}
	switch s {
	case card.Heart:
		return "♥"
	case card.Spade:
		return "♠"
	case card.Diamond:
		return "♦"
	case card.Club:
		return "♣"
	default:
		return "•"
	}
}

// Status writes a plain status line in the status color
func (r *Renderer) Status(msg string) error {
	_, err := fmt.Fprintln(r.out, r.status.Sprint(msg))
	return err
}

// StripANSI removes ANSI escape sequences from s
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
