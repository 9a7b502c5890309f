package table

import (
	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/pile"
)

// CardView is a read-only copy of a card's state
type CardView struct {
	Suit   card.Suit
	Rank   card.Rank
	FaceUp bool
}

// Color returns the card color
func (c CardView) Color() card.Color {
	return card.New(c.Suit, c.Rank).Color()
}

// PileView is what a renderer needs to draw one pile
type PileView struct {
	Ref    pile.Ref
	Anchor pile.Point
	// Cards are ordered bottom-to-top
	Cards []CardView
}

// Empty reports whether the pile held no cards
func (v PileView) Empty() bool {
	return len(v.Cards) == 0
}

// Snapshot is the whole table as seen by a renderer
type Snapshot struct {
	GameID string
	Status string
	Won    bool
	Piles  []PileView
}

// Snapshot copies the visible state of every pile, in logical index order
func (t *Table) Snapshot() Snapshot {
	s := Snapshot{
		GameID: t.id,
		Status: t.status,
		Won:    t.won,
		Piles:  make([]PileView, 0, len(t.all)),
	}
	for _, p := range t.all {
		cards := p.Cards()
		view := PileView{
			Ref:    p.Ref(),
			Anchor: p.Anchor(),
			Cards:  make([]CardView, len(cards)),
		}
		for i, c := range cards {
			view.Cards[i] = CardView{Suit: c.Suit(), Rank: c.Rank(), FaceUp: c.FaceUp()}
		}
		s.Piles = append(s.Piles, view)
	}
	return s
}

// Pile returns the view of the pile named by ref
func (s Snapshot) Pile(ref pile.Ref) (PileView, bool) {
	for _, v := range s.Piles {
		if v.Ref == ref {
			return v, true
		}
	}
	return PileView{}, false
}
