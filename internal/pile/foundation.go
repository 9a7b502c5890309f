package pile

import "github.com/arcanaland/klondike/internal/card"

// Foundation builds one suit up from ace to king. The suit is set by the
// ace that starts it.
type Foundation struct {
	stack
}

// NewFoundation creates the index-th empty foundation
func NewFoundation(index int, at Point) *Foundation {
	return &Foundation{stack{ref: Ref{Kind: KindFoundation, Index: index}, anchor: at}}
}

// CanAccept takes an ace on an empty pile, else the next rank of the same suit
func (f *Foundation) CanAccept(c *card.Card) bool {
	top := f.Top()
	if top == nil {
		return c.IsAce()
	}
	return c.Suit() == top.Suit() && c.Rank() == top.Rank()+1
}

// Select sends the top card back down to the first tableau that takes it
func (f *Foundation) Select(_ Point, sib *Siblings) Move {
	top := f.Top()
	if top == nil {
		return Move{}
	}

	if t := firstTableau(sib.Tableaus, top, nil); t != nil {
		t.AddCard(f.Pop())
		return Move{Kind: MoveTransfer, From: f.ref, To: t.ref, Cards: 1}
	}
	return Move{}
}
