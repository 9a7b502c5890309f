package pile

import "github.com/arcanaland/klondike/internal/card"

// Tableau is one of the seven fanned piles. Face-up cards on it always form
// a descending run of alternating colors.
type Tableau struct {
	stack
}

// NewTableau creates the index-th empty tableau
func NewTableau(index int, at Point) *Tableau {
	return &Tableau{stack{ref: Ref{Kind: KindTableau, Index: index}, anchor: at}}
}

// Deal moves n cards from the stock and turns the last one face-up
func (t *Tableau) Deal(from *Stock, n int) {
	for i := 0; i < n && !from.Empty(); i++ {
		t.AddCard(from.Pop())
	}
	if top := t.Top(); top != nil && !top.FaceUp() {
		top.Flip()
	}
}

// CanAccept takes a king on an empty pile, else the next lower rank of the
// other color on a face-up top card
func (t *Tableau) CanAccept(c *card.Card) bool {
	top := t.Top()
	if top == nil {
		return c.IsKing()
	}
	if !top.FaceUp() {
		return false
	}
	return c.Color() != top.Color() && c.Rank() == top.Rank()-1
}

// Includes has no lower edge: any point below the anchor within the pile's
// column hits the fan. An empty tableau is never hit.
func (t *Tableau) Includes(p Point) bool {
	if t.Empty() {
		return false
	}
	return t.anchor.X <= p.X && p.X <= t.anchor.X+CardWidth && t.anchor.Y <= p.Y
}

// CardAnchor returns where the i-th card from the bottom is drawn
func (t *Tableau) CardAnchor(i int) Point {
	return Point{X: t.anchor.X, Y: t.anchor.Y + i*FanOffset}
}

// Select resolves a click on the tableau. In order: flip a face-down top
// card, play the top card to a foundation, or move the face-up run to
// another tableau. Anything that cannot be played is left where it was.
func (t *Tableau) Select(_ Point, sib *Siblings) Move {
	top := t.Top()
	if top == nil {
		return Move{}
	}

	if !top.FaceUp() {
		top.Flip()
		return Move{Kind: MoveFlip, From: t.ref, To: t.ref, Cards: 1}
	}

	if f := firstFoundation(sib.Foundations, top); f != nil {
		f.AddCard(t.Pop())
		return Move{Kind: MoveTransfer, From: t.ref, To: f.ref, Cards: 1}
	}

	// build[0] is the old top, build[len-1] the deepest face-up card
	build := t.takeFaceUp()
	base := build[len(build)-1]

	// a king at the base of a pile has nowhere better to go
	if base.IsKing() && t.Empty() {
		t.restore(build)
		return Move{}
	}

	if len(build) == 1 {
		t.restore(build)
		if other := firstTableau(sib.Tableaus, top, t); other != nil {
			other.AddCard(t.Pop())
			return Move{Kind: MoveTransfer, From: t.ref, To: other.ref, Cards: 1}
		}
		return Move{}
	}

	if other := firstTableau(sib.Tableaus, base, t); other != nil {
		other.restore(build)
		return Move{Kind: MoveTransfer, From: t.ref, To: other.ref, Cards: len(build)}
	}
	t.restore(build)
	return Move{}
}

// takeFaceUp pops the face-up run off the top of the pile
func (t *Tableau) takeFaceUp() []*card.Card {
	var build []*card.Card
	for {
		top := t.Top()
		if top == nil || !top.FaceUp() {
			return build
		}
		build = append(build, t.Pop())
	}
}

// restore pushes a build taken by takeFaceUp, deepest card first
func (t *Tableau) restore(build []*card.Card) {
	for i := len(build) - 1; i >= 0; i-- {
		t.AddCard(build[i])
	}
}
