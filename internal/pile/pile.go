package pile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arcanaland/klondike/internal/card"
)

// Card and layout dimensions, in logical pixels
const (
	CardWidth  = 50
	CardHeight = 70

	// FanOffset is the vertical distance between stacked tableau cards
	FanOffset = 25
)

// Point is a logical screen position
type Point struct {
	X int
	Y int
}

// Kind is the role a pile plays on the table
type Kind int

const (
	KindStock Kind = iota
	KindWaste
	KindFoundation
	KindTableau
)

func (k Kind) String() string {
	switch k {
	case KindStock:
		return "stock"
	case KindWaste:
		return "waste"
	case KindFoundation:
		return "foundation"
	case KindTableau:
		return "tableau"
	default:
		return "unknown"
	}
}

// Ref names a pile by role and position within that role
type Ref struct {
	Kind  Kind
	Index int
}

// String returns the short pile name used on the command line (s, w, f1..f4, t1..t7)
func (r Ref) String() string {
	switch r.Kind {
	case KindStock:
		return "s"
	case KindWaste:
		return "w"
	case KindFoundation:
		return fmt.Sprintf("f%d", r.Index+1)
	case KindTableau:
		return fmt.Sprintf("t%d", r.Index+1)
	default:
		return "?"
	}
}

// Pile is the behavior shared by every pile on the table. The stack
// operations are common; CanAccept, Select, AddCard and Includes vary.
type Pile interface {
	Ref() Ref
	Anchor() Point

	Empty() bool
	Top() *card.Card
	Pop() *card.Card
	Count() int
	// Cards returns the pile bottom-to-top
	Cards() []*card.Card

	AddCard(c *card.Card)
	CanAccept(c *card.Card) bool
	Includes(p Point) bool
	Select(p Point, s *Siblings) Move
}

// Siblings gives a pile's Select access to the rest of the table
type Siblings struct {
	Stock       *Stock
	Waste       *Waste
	Foundations []*Foundation
	Tableaus    []*Tableau
}

// stack holds the cards of a pile; the last element is the top
type stack struct {
	ref    Ref
	anchor Point
	cards  []*card.Card
}

func (s *stack) Ref() Ref      { return s.ref }
func (s *stack) Anchor() Point { return s.anchor }
func (s *stack) Empty() bool   { return len(s.cards) == 0 }
func (s *stack) Count() int    { return len(s.cards) }

// Top returns the top card, or nil if the pile is empty
func (s *stack) Top() *card.Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

// Pop removes and returns the top card, or nil if the pile is empty
func (s *stack) Pop() *card.Card {
	if len(s.cards) == 0 {
		return nil
	}
	c := s.cards[len(s.cards)-1]
	s.cards[len(s.cards)-1] = nil
	s.cards = s.cards[:len(s.cards)-1]
	return c
}

func (s *stack) AddCard(c *card.Card) {
	s.cards = append(s.cards, c)
}

func (s *stack) Cards() []*card.Card {
	out := make([]*card.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func (s *stack) CanAccept(*card.Card) bool {
	return false
}

// Includes reports whether p falls on the pile's card rectangle
func (s *stack) Includes(p Point) bool {
	return s.anchor.X <= p.X && p.X <= s.anchor.X+CardWidth &&
		s.anchor.Y <= p.Y && p.Y <= s.anchor.Y+CardHeight
}

func (s *stack) Select(Point, *Siblings) Move {
	return Move{}
}

// firstTableau returns the first tableau other than skip that accepts c
func firstTableau(tableaus []*Tableau, c *card.Card, skip *Tableau) *Tableau {
	for _, t := range tableaus {
		if t != skip && t.CanAccept(c) {
			return t
		}
	}
	return nil
}

func firstFoundation(foundations []*Foundation, c *card.Card) *Foundation {
	for _, f := range foundations {
		if f.CanAccept(c) {
			return f
		}
	}
	return nil
}

// ParseRef reads a pile name as produced by Ref.String
func ParseRef(s string) (Ref, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "s", "stock":
		return Ref{Kind: KindStock}, nil
	case "w", "waste":
		return Ref{Kind: KindWaste}, nil
	}
	if len(s) < 2 {
		return Ref{}, fmt.Errorf("unknown pile: %q", s)
	}

	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return Ref{}, fmt.Errorf("unknown pile: %q", s)
	}
	switch {
	case s[0] == 'f' && n >= 1 && n <= 4:
		return Ref{Kind: KindFoundation, Index: n - 1}, nil
	case s[0] == 't' && n >= 1 && n <= 7:
		return Ref{Kind: KindTableau, Index: n - 1}, nil
	}
	return Ref{}, fmt.Errorf("unknown pile: %q", s)
}
