package shuffle

import (
	"math/rand"
	"time"

	"github.com/arcanaland/klondike/internal/card"
)

// Shuffler produces uniformly random orderings of the 52-card deck
type Shuffler struct {
	seed int64
	rng  *rand.Rand
}

// New returns a shuffler seeded with seed. A zero seed picks one from the clock.
func New(seed int64) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Shuffler{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the shuffler was created with
func (s *Shuffler) Seed() int64 {
	return s.seed
}

// Deck returns a freshly created face-down deck in random order
func (s *Shuffler) Deck() []*card.Card {
	deck := card.NewDeck()
	s.Shuffle(deck)
	return deck
}

// Shuffle permutes cards in place (Fisher-Yates)
func (s *Shuffler) Shuffle(cards []*card.Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
