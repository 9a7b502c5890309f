package pile

import "github.com/arcanaland/klondike/internal/card"

// Waste holds the face-up cards drawn from the stock
type Waste struct {
	stack
}

// NewWaste creates an empty waste pile at the given anchor
func NewWaste(at Point) *Waste {
	return &Waste{stack{ref: Ref{Kind: KindWaste}, anchor: at}}
}

// AddCard pushes c, turning it face-up first
func (w *Waste) AddCard(c *card.Card) {
	if !c.FaceUp() {
		c.Flip()
	}
	w.stack.AddCard(c)
}

// Select plays the top card to the first foundation that takes it, or
// failing that to the first tableau that takes it.
func (w *Waste) Select(_ Point, sib *Siblings) Move {
	top := w.Top()
	if top == nil {
		return Move{}
	}

	if f := firstFoundation(sib.Foundations, top); f != nil {
		f.AddCard(w.Pop())
		return Move{Kind: MoveTransfer, From: w.ref, To: f.ref, Cards: 1}
	}
	if t := firstTableau(sib.Tableaus, top, nil); t != nil {
		t.AddCard(w.Pop())
		return Move{Kind: MoveTransfer, From: w.ref, To: t.ref, Cards: 1}
	}
	return Move{}
}
