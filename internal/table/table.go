package table

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/pile"
	"github.com/arcanaland/klondike/internal/shuffle"
)

const (
	NumFoundations = 4
	NumTableaus    = 7
	NumPiles       = 2 + NumFoundations + NumTableaus

	TopMargin     = 40
	LeftMargin    = 5
	TableauGap    = 5
	FoundationGap = 10
)

// Status lines shown to the player
const (
	StatusWelcome = "Welcome to Solitaire!"
	StatusClick   = "Neat click!"
	StatusWon     = "Congratulations! You have won this game."
)

// Table is one game of solitaire. It owns every pile and routes player
// selections to them. It is not safe for concurrent use.
type Table struct {
	id       string
	shuffler *shuffle.Shuffler
	logger   *zap.Logger

	stock       *pile.Stock
	waste       *pile.Waste
	foundations []*pile.Foundation
	tableaus    []*pile.Tableau

	// all lists the piles in hit-test order, which is also logical index order
	all []pile.Pile

	status string
	won    bool
}

// Option configures a Table
type Option func(*Table)

// WithLogger sets the logger moves are reported to
func WithLogger(l *zap.Logger) Option {
	return func(t *Table) {
		t.logger = l
	}
}

// WithSeed makes deals reproducible
func WithSeed(seed int64) Option {
	return func(t *Table) {
		t.shuffler = shuffle.New(seed)
	}
}

// WithShuffler sets the shuffler used for every deal
func WithShuffler(s *shuffle.Shuffler) Option {
	return func(t *Table) {
		t.shuffler = s
	}
}

// New creates a table and deals the first game
func New(opts ...Option) *Table {
	t := &Table{}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	if t.shuffler == nil {
		t.shuffler = shuffle.New(0)
	}

	t.NewGame()
	return t
}

// NewGame throws away the current game and deals a fresh one
func (t *Table) NewGame() {
	t.id = uuid.NewString()
	t.reset(t.shuffler.Deck())

	for i, tab := range t.tableaus {
		tab.Deal(t.stock, i+1)
	}

	t.status = StatusWelcome
	t.logger.Info("new game",
		zap.String("game_id", t.id),
		zap.Int64("seed", t.shuffler.Seed()),
	)
}

// reset lays out empty piles, with deck in the stock
func (t *Table) reset(deck []*card.Card) {
	xStock := LeftMargin + (NumTableaus-1)*(pile.CardWidth+TableauGap)

	t.stock = pile.NewStock(pile.Point{X: xStock, Y: TopMargin}, deck)
	t.waste = pile.NewWaste(pile.Point{X: xStock - pile.CardWidth - FoundationGap, Y: TopMargin})

	t.foundations = make([]*pile.Foundation, NumFoundations)
	for i := range t.foundations {
		t.foundations[i] = pile.NewFoundation(i, pile.Point{
			X: LeftMargin + (pile.CardWidth+FoundationGap)*i,
			Y: TopMargin,
		})
	}

	t.tableaus = make([]*pile.Tableau, NumTableaus)
	for i := range t.tableaus {
		t.tableaus[i] = pile.NewTableau(i, pile.Point{
			X: LeftMargin + (pile.CardWidth+TableauGap)*i,
			Y: pile.CardHeight + TableauGap + TopMargin,
		})
	}

	t.all = make([]pile.Pile, 0, NumPiles)
	t.all = append(t.all, t.stock, t.waste)
	for _, f := range t.foundations {
		t.all = append(t.all, f)
	}
	for _, tab := range t.tableaus {
		t.all = append(t.all, tab)
	}

	t.won = false
}

func (t *Table) siblings() *pile.Siblings {
	return &pile.Siblings{
		Stock:       t.stock,
		Waste:       t.waste,
		Foundations: t.foundations,
		Tableaus:    t.tableaus,
	}
}

// Dispatch selects the first pile under p. Once the game is won, clicks are ignored.
func (t *Table) Dispatch(p pile.Point) pile.Move {
	if t.won {
		return pile.Move{}
	}

	t.status = StatusClick
	for _, target := range t.all {
		if target.Includes(p) {
			return t.apply(target, p)
		}
	}
	return pile.Move{}
}

// SelectPile selects a pile by logical index: 0 stock, 1 waste, 2-5
// foundations, 6-12 tableaus.
func (t *Table) SelectPile(index int) (pile.Move, error) {
	if index < 0 || index >= len(t.all) {
		return pile.Move{}, fmt.Errorf("pile index %d out of range [0, %d)", index, len(t.all))
	}
	if t.won {
		return pile.Move{}, nil
	}

	t.status = StatusClick
	target := t.all[index]
	return t.apply(target, target.Anchor()), nil
}

// Select selects the pile named by ref
func (t *Table) Select(ref pile.Ref) (pile.Move, error) {
	return t.SelectPile(Index(ref))
}

func (t *Table) apply(target pile.Pile, p pile.Point) pile.Move {
	m := target.Select(p, t.siblings())
	t.logger.Debug("select",
		zap.String("game_id", t.id),
		zap.Stringer("pile", target.Ref()),
		zap.Stringer("move", m.Kind),
		zap.Int("cards", m.Cards),
	)

	if t.IsWon() {
		t.won = true
		t.status = StatusWon
		t.logger.Info("game won", zap.String("game_id", t.id))
	}
	return m
}

// IsWon reports whether stock, waste and every tableau are empty
func (t *Table) IsWon() bool {
	if !t.stock.Empty() || !t.waste.Empty() {
		return false
	}
	for _, tab := range t.tableaus {
		if !tab.Empty() {
			return false
		}
	}
	return true
}

// Index returns the logical index of the pile named by ref, or -1
func Index(ref pile.Ref) int {
	switch ref.Kind {
	case pile.KindStock:
		return 0
	case pile.KindWaste:
		return 1
	case pile.KindFoundation:
		if ref.Index >= 0 && ref.Index < NumFoundations {
			return 2 + ref.Index
		}
	case pile.KindTableau:
		if ref.Index >= 0 && ref.Index < NumTableaus {
			return 2 + NumFoundations + ref.Index
		}
	}
	return -1
}

// ID returns the session id of the current game
func (t *Table) ID() string { return t.id }

// Seed returns the seed of the shuffler dealing this table's games
func (t *Table) Seed() int64 { return t.shuffler.Seed() }

// Status returns the message for the last event
func (t *Table) Status() string { return t.status }

// Stock returns the stock pile
func (t *Table) Stock() *pile.Stock { return t.stock }

// Waste returns the waste pile
func (t *Table) Waste() *pile.Waste { return t.waste }

// Foundation returns the i-th foundation, 0-based
func (t *Table) Foundation(i int) *pile.Foundation { return t.foundations[i] }

// Tableau returns the i-th tableau, 0-based
func (t *Table) Tableau(i int) *pile.Tableau { return t.tableaus[i] }

// Piles returns all 13 piles in logical index order
func (t *Table) Piles() []pile.Pile {
	out := make([]pile.Pile, len(t.all))
	copy(out, t.all)
	return out
}
