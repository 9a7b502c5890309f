package table

import (
	"errors"
	"fmt"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/pile"
)

// ErrCardCount is returned by Verify when cards were lost or duplicated
var ErrCardCount = errors.New("card count mismatch")

// Verify checks the table invariants: 52 distinct cards, foundations
// running ace upward in one suit, face-up tableau runs descending in
// alternating colors, and every waste card face-up.
func (t *Table) Verify() error {
	seen := make(map[card.Identity]pile.Ref, 52)
	total := 0
	for _, p := range t.all {
		for _, c := range p.Cards() {
			if prev, ok := seen[c.ID()]; ok {
				return fmt.Errorf("%w: %s on both %s and %s", ErrCardCount, c, prev, p.Ref())
			}
			seen[c.ID()] = p.Ref()
			total++
		}
	}
	if total != len(card.Suits)*card.NumRanks {
		return fmt.Errorf("%w: %d cards on the table", ErrCardCount, total)
	}

	for _, f := range t.foundations {
		if err := verifyFoundation(f); err != nil {
			return err
		}
	}
	for _, tab := range t.tableaus {
		if err := verifyTableau(tab); err != nil {
			return err
		}
	}
	for _, c := range t.waste.Cards() {
		if !c.FaceUp() {
			return fmt.Errorf("waste card %s is face-down", c)
		}
	}
	return nil
}

func verifyFoundation(f *pile.Foundation) error {
	cards := f.Cards()
	for i, c := range cards {
		if c.Rank() != card.Rank(i) {
			return fmt.Errorf("%s: %s at height %d", f.Ref(), c, i)
		}
		if c.Suit() != cards[0].Suit() {
			return fmt.Errorf("%s: %s mixed into %s", f.Ref(), c, cards[0].Suit().Name())
		}
	}
	return nil
}

func verifyTableau(tab *pile.Tableau) error {
	cards := tab.Cards()
	for i := 1; i < len(cards); i++ {
		parent, child := cards[i-1], cards[i]
		if !parent.FaceUp() || !child.FaceUp() {
			continue
		}
		if child.Color() == parent.Color() || child.Rank() != parent.Rank()-1 {
			return fmt.Errorf("%s: %s does not go on %s", tab.Ref(), child, parent)
		}
	}
	return nil
}
