package pile

import "github.com/arcanaland/klondike/internal/card"

// Stock is the face-down deck the player draws from
type Stock struct {
	stack
}

// NewStock creates a stock holding cards, cards[0] at the bottom. Every card
// is turned face-down.
func NewStock(at Point, cards []*card.Card) *Stock {
	s := &Stock{stack{ref: Ref{Kind: KindStock}, anchor: at}}
	for _, c := range cards {
		if c.FaceUp() {
			c.Flip()
		}
		s.AddCard(c)
	}
	return s
}

// Select draws the top card onto the waste. An empty stock takes the whole
// waste back face-down in the same order, so the last card discarded is the
// first one drawn again.
func (s *Stock) Select(_ Point, sib *Siblings) Move {
	if !s.Empty() {
		sib.Waste.AddCard(s.Pop())
		return Move{Kind: MoveDraw, From: s.ref, To: sib.Waste.ref, Cards: 1}
	}

	cards := sib.Waste.Cards()
	for !sib.Waste.Empty() {
		sib.Waste.Pop()
	}
	for _, c := range cards {
		if c.FaceUp() {
			c.Flip()
		}
		s.AddCard(c)
	}
	n := len(cards)
	if n == 0 {
		return Move{}
	}
	return Move{Kind: MoveRecycle, From: sib.Waste.ref, To: s.ref, Cards: n}
}
