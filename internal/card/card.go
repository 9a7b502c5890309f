package card

import (
	"fmt"
	"strings"
)

// Suit identifies one of the four French suits
type Suit int

const (
	Heart Suit = iota
	Spade
	Diamond
	Club
)

// Suits lists every suit in deal order
var Suits = []Suit{Heart, Spade, Diamond, Club}

// String returns the single-letter form of the suit
func (s Suit) String() string {
	switch s {
	case Heart:
		return "H"
	case Spade:
		return "S"
	case Diamond:
		return "D"
	case Club:
		return "C"
	default:
		return "?"
	}
}

// Name returns the long form of the suit (e.g. "hearts")
func (s Suit) Name() string {
	switch s {
	case Heart:
		return "hearts"
	case Spade:
		return "spades"
	case Diamond:
		return "diamonds"
	case Club:
		return "clubs"
	default:
		return "unknown"
	}
}

// Rank is the card value in the interval [0, 12], ace low
type Rank int

const (
	Ace  Rank = 0
	King Rank = 12
)

// NumRanks is the number of ranks per suit
const NumRanks = 13

var rankNames = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// String returns the short form of the rank
func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankNames[r]
}

// Color is red or black
type Color int

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Card is a playing card. Suit and rank never change; the face may be flipped.
type Card struct {
	suit   Suit
	rank   Rank
	faceUp bool
}

// New creates a face-down card
func New(s Suit, r Rank) *Card {
	return &Card{suit: s, rank: r}
}

// Accessors for the card identity and face
func (c *Card) Suit() Suit   { return c.suit }
func (c *Card) Rank() Rank   { return c.rank }
func (c *Card) FaceUp() bool { return c.faceUp }

// Flip turns the card over
func (c *Card) Flip() {
	c.faceUp = !c.faceUp
}

// IsAce and IsKing test for the lowest and highest rank
func (c *Card) IsAce() bool  { return c.rank == Ace }
func (c *Card) IsKing() bool { return c.rank == King }

// Color is red for hearts and diamonds, black otherwise
func (c *Card) Color() Color {
	if c.suit == Heart || c.suit == Diamond {
		return Red
	}
	return Black
}

// Identity is the (suit, rank) pair of the card, ignoring its face
type Identity struct {
	Suit Suit
	Rank Rank
}

// ID returns the identity of the card
func (c *Card) ID() Identity {
	return Identity{Suit: c.suit, Rank: c.rank}
}

// String returns the card as rank followed by suit (e.g. "10H", "KS")
func (c *Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Parse reads a card in the form produced by String. The card is face-down.
func Parse(s string) (*Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return nil, fmt.Errorf("invalid card: %q", s)
	}

	rankPart, suitPart := s[:len(s)-1], s[len(s)-1:]

	var suit Suit
	switch suitPart {
	case "H":
		suit = Heart
	case "S":
		suit = Spade
	case "D":
		suit = Diamond
	case "C":
		suit = Club
	default:
		return nil, fmt.Errorf("invalid suit in card %q", s)
	}

	for i, name := range rankNames {
		if name == rankPart {
			return New(suit, Rank(i)), nil
		}
	}
	return nil, fmt.Errorf("invalid rank in card %q", s)
}

// MustParse is like Parse but panics on malformed input. Meant for fixtures.
func MustParse(s string) *Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NewDeck returns the 52 distinct cards, face-down, ordered by suit then rank
func NewDeck() []*Card {
	deck := make([]*Card, 0, len(Suits)*NumRanks)
	for _, s := range Suits {
		for r := Ace; r <= King; r++ {
			deck = append(deck, New(s, r))
		}
	}
	return deck
}
