package table

import (
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/arcanaland/klondike/internal/card"
	"github.com/arcanaland/klondike/internal/pile"
)

func newTestTable(t *testing.T, seed int64) *Table {
	t.Helper()
	return New(WithSeed(seed), WithLogger(zaptest.NewLogger(t)))
}

// emptyTable returns a table with no cards anywhere, for state injection
func emptyTable(t *testing.T) *Table {
	t.Helper()
	tb := newTestTable(t, 1)
	tb.reset(nil)
	return tb
}

// fill moves every card not already on the table onto the stock, face-down
func fill(tb *Table) {
	onTable := make(map[card.Identity]bool)
	for _, p := range tb.all {
		for _, c := range p.Cards() {
			onTable[c.ID()] = true
		}
	}
	for _, c := range card.NewDeck() {
		if !onTable[c.ID()] {
			tb.stock.AddCard(c)
		}
	}
}

func up(id string) *card.Card {
	c := card.MustParse(id)
	c.Flip()
	return c
}

func TestNew_Deal(t *testing.T) {
	tb := newTestTable(t, 3)

	if tb.Stock().Count() != 24 {
		t.Errorf("stock holds %d cards, want 24", tb.Stock().Count())
	}
	if !tb.Waste().Empty() {
		t.Error("waste should start empty")
	}
	for i := 0; i < NumFoundations; i++ {
		if !tb.Foundation(i).Empty() {
			t.Errorf("foundation %d should start empty", i)
		}
	}
	for i := 0; i < NumTableaus; i++ {
		cards := tb.Tableau(i).Cards()
		if len(cards) != i+1 {
			t.Fatalf("tableau %d holds %d cards, want %d", i, len(cards), i+1)
		}
		for j, c := range cards {
			if wantUp := j == len(cards)-1; c.FaceUp() != wantUp {
				t.Errorf("tableau %d card %d face-up = %v, want %v", i, j, c.FaceUp(), wantUp)
			}
		}
	}
	for _, c := range tb.Stock().Cards() {
		if c.FaceUp() {
			t.Errorf("stock card %s is face-up", c)
		}
	}

	if err := tb.Verify(); err != nil {
		t.Fatalf("Verify() after deal: %v", err)
	}
	if tb.Status() != StatusWelcome {
		t.Errorf("Status() = %q, want %q", tb.Status(), StatusWelcome)
	}
	if tb.IsWon() {
		t.Error("fresh deal should not be won")
	}
}

func TestNewGame_ReplacesState(t *testing.T) {
	tb := newTestTable(t, 5)
	firstID := tb.ID()
	for i := 0; i < 10; i++ {
		tb.SelectPile(0)
	}

	tb.NewGame()

	if tb.ID() == firstID {
		t.Error("NewGame should assign a new game id")
	}
	if tb.Stock().Count() != 24 || !tb.Waste().Empty() {
		t.Errorf("after NewGame stock=%d waste=%d, want 24 and 0", tb.Stock().Count(), tb.Waste().Count())
	}
	if err := tb.Verify(); err != nil {
		t.Fatalf("Verify() after NewGame: %v", err)
	}
}

func TestSameSeedSameDeal(t *testing.T) {
	a := newTestTable(t, 99).Snapshot()
	b := newTestTable(t, 99).Snapshot()

	for i := range a.Piles {
		if len(a.Piles[i].Cards) != len(b.Piles[i].Cards) {
			t.Fatalf("pile %s differs in size", a.Piles[i].Ref)
		}
		for j := range a.Piles[i].Cards {
			if a.Piles[i].Cards[j] != b.Piles[i].Cards[j] {
				t.Fatalf("pile %s card %d differs", a.Piles[i].Ref, j)
			}
		}
	}
}

// Random clicking must never lose, duplicate or misplace a card.
func TestRandomPlay_KeepsInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		tb := newTestTable(t, seed)
		r := rand.New(rand.NewSource(seed))

		for step := 0; step < 500; step++ {
			idx := r.Intn(NumPiles)
			if _, err := tb.SelectPile(idx); err != nil {
				t.Fatalf("seed %d step %d: SelectPile(%d): %v", seed, step, idx, err)
			}
			if err := tb.Verify(); err != nil {
				t.Fatalf("seed %d step %d after selecting %s: %v", seed, step, tb.all[idx].Ref(), err)
			}
		}
	}
}

func TestDispatch_FlipOnFirstClick(t *testing.T) {
	tb := newTestTable(t, 11)
	tab := tb.Tableau(6)
	top := tab.Top()
	top.Flip() // face-down, as after its covering card has been played

	at := tab.CardAnchor(tab.Count() - 1)
	m := tb.Dispatch(pile.Point{X: at.X + 10, Y: at.Y + 10})

	if m.Kind != pile.MoveFlip {
		t.Fatalf("Dispatch() = %v, want flip", m)
	}
	if !top.FaceUp() || tab.Top() != top || tab.Count() != 7 {
		t.Errorf("top face-up=%v count=%d, want the same card face-up on 7 cards", top.FaceUp(), tab.Count())
	}
	if tb.Status() != StatusClick {
		t.Errorf("Status() = %q, want %q", tb.Status(), StatusClick)
	}
}

func TestDispatch_HitsPilesByPosition(t *testing.T) {
	tb := newTestTable(t, 12)

	tests := []struct {
		name string
		p    pile.Pile
	}{
		{"stock", tb.Stock()},
		{"waste", tb.Waste()},
		{"foundation", tb.Foundation(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at := tt.p.Anchor()
			before := tb.Stock().Count()
			m := tb.Dispatch(pile.Point{X: at.X + 1, Y: at.Y + 1})
			if tt.name == "stock" {
				if m.Kind != pile.MoveDraw || tb.Stock().Count() != before-1 {
					t.Errorf("click on stock = %v, want a draw", m)
				}
			}
		})
	}

	// the gap between the two top-row groups hits nothing
	if m := tb.Dispatch(pile.Point{X: 260, Y: 50}); m.Changed() {
		t.Errorf("click on empty felt = %v, want no move", m)
	}
}

func TestSelect_StockRecycle(t *testing.T) {
	tb := newTestTable(t, 21)

	for !tb.Stock().Empty() {
		if _, err := tb.Select(pile.Ref{Kind: pile.KindStock}); err != nil {
			t.Fatal(err)
		}
	}
	order := tb.Waste().Cards()
	wasteCount := len(order)

	m, err := tb.Select(pile.Ref{Kind: pile.KindStock})
	if err != nil {
		t.Fatal(err)
	}

	if m.Kind != pile.MoveRecycle || m.Cards != wasteCount {
		t.Fatalf("Select(stock) = %v, want recycle of %d", m, wasteCount)
	}
	if tb.Stock().Count() != wasteCount || !tb.Waste().Empty() {
		t.Fatalf("stock=%d waste=%d, want %d and 0", tb.Stock().Count(), tb.Waste().Count(), wasteCount)
	}
	got := tb.Stock().Cards()
	for i, c := range got {
		if c.FaceUp() {
			t.Errorf("recycled card %s is face-up", c)
		}
		if c != order[i] {
			t.Errorf("stock position %d = %s, want %s", i, c, order[i])
		}
	}
	if top := tb.Stock().Top(); top != order[len(order)-1] {
		t.Errorf("stock top = %s, want last discarded %s", top, order[len(order)-1])
	}
}

func TestSelect_BuildRollback(t *testing.T) {
	tb := emptyTable(t)
	tb.tableaus[0].AddCard(card.MustParse("3D"))
	tb.tableaus[0].AddCard(up("10S"))
	tb.tableaus[0].AddCard(up("9H"))
	tb.tableaus[1].AddCard(up("10C"))
	tb.tableaus[2].AddCard(up("4S"))
	fill(tb)

	before := tb.Snapshot()
	m, err := tb.SelectPile(Index(pile.Ref{Kind: pile.KindTableau, Index: 0}))
	if err != nil {
		t.Fatal(err)
	}
	if m.Changed() {
		t.Fatalf("SelectPile() = %v, want no move", m)
	}

	after := tb.Snapshot()
	for i := range before.Piles {
		b, a := before.Piles[i], after.Piles[i]
		if len(b.Cards) != len(a.Cards) {
			t.Fatalf("%s changed size from %d to %d", b.Ref, len(b.Cards), len(a.Cards))
		}
		for j := range b.Cards {
			if b.Cards[j] != a.Cards[j] {
				t.Fatalf("%s card %d changed from %v to %v", b.Ref, j, b.Cards[j], a.Cards[j])
			}
		}
	}
	if err := tb.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestSelect_AceToFoundation(t *testing.T) {
	tb := emptyTable(t)
	tb.tableaus[3].AddCard(card.MustParse("7C"))
	tb.tableaus[3].AddCard(up("AH"))
	fill(tb)

	m, err := tb.Select(pile.Ref{Kind: pile.KindTableau, Index: 3})
	if err != nil {
		t.Fatal(err)
	}

	if m.To != (pile.Ref{Kind: pile.KindFoundation, Index: 0}) {
		t.Fatalf("Select() = %v, want transfer to f1", m)
	}
	if top := tb.Foundation(0).Top(); top == nil || top.ID() != (card.Identity{Suit: card.Heart, Rank: card.Ace}) {
		t.Fatalf("foundation top = %v, want AH", top)
	}
	if tb.Tableau(3).Count() != 1 {
		t.Errorf("tableau holds %d cards, want 1", tb.Tableau(3).Count())
	}
}

func TestIsWon_AllOnFoundations(t *testing.T) {
	tb := emptyTable(t)
	for i, s := range card.Suits {
		for r := card.Ace; r <= card.King; r++ {
			c := card.New(s, r)
			c.Flip()
			tb.foundations[i].AddCard(c)
		}
	}

	if !tb.IsWon() {
		t.Fatal("IsWon() = false with every card on the foundations")
	}
	if err := tb.Verify(); err != nil {
		t.Fatal(err)
	}
}

func TestIsWon_FalseWhileCardsRemain(t *testing.T) {
	tests := []struct {
		name  string
		place func(tb *Table, c *card.Card)
	}{
		{"stock", func(tb *Table, c *card.Card) { tb.stock.AddCard(c) }},
		{"waste", func(tb *Table, c *card.Card) { tb.waste.AddCard(c) }},
		{"tableau", func(tb *Table, c *card.Card) { tb.tableaus[6].AddCard(c) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := emptyTable(t)
			tt.place(tb, card.MustParse("5S"))
			if tb.IsWon() {
				t.Errorf("IsWon() = true with a card on the %s", tt.name)
			}
		})
	}
}

func TestSelect_WinningMove(t *testing.T) {
	tb := emptyTable(t)
	for i, s := range card.Suits {
		for r := card.Ace; r <= card.King; r++ {
			if s == card.Club && r == card.King {
				continue
			}
			c := card.New(s, r)
			c.Flip()
			tb.foundations[i].AddCard(c)
		}
	}
	tb.waste.AddCard(card.MustParse("KC"))

	m, err := tb.Select(pile.Ref{Kind: pile.KindWaste})
	if err != nil {
		t.Fatal(err)
	}
	if m.To != (pile.Ref{Kind: pile.KindFoundation, Index: 3}) {
		t.Fatalf("Select() = %v, want transfer to f4", m)
	}
	if !tb.IsWon() || tb.Status() != StatusWon {
		t.Fatalf("IsWon()=%v Status()=%q after the last card", tb.IsWon(), tb.Status())
	}

	// further clicks are ignored
	at := tb.Foundation(3).Anchor()
	if m := tb.Dispatch(at); m.Changed() {
		t.Errorf("Dispatch() after winning = %v, want no move", m)
	}
	if tb.Status() != StatusWon {
		t.Errorf("Status() = %q, want it to stay %q", tb.Status(), StatusWon)
	}
	if !tb.Snapshot().Won {
		t.Error("Snapshot().Won = false")
	}
}

func TestSelectPile_OutOfRange(t *testing.T) {
	tb := newTestTable(t, 1)
	for _, idx := range []int{-1, NumPiles} {
		if _, err := tb.SelectPile(idx); err == nil {
			t.Errorf("SelectPile(%d) expected error", idx)
		}
	}
	if _, err := tb.Select(pile.Ref{Kind: pile.KindTableau, Index: 9}); err == nil {
		t.Error("Select(t10) expected error")
	}
}

func TestIndex_MatchesPileOrder(t *testing.T) {
	tb := newTestTable(t, 1)
	for i, p := range tb.Piles() {
		if got := Index(p.Ref()); got != i {
			t.Errorf("Index(%s) = %d, want %d", p.Ref(), got, i)
		}
	}
}

func TestVerify_DetectsBrokenState(t *testing.T) {
	t.Run("lost card", func(t *testing.T) {
		tb := newTestTable(t, 4)
		tb.stock.Pop()
		if err := tb.Verify(); err == nil {
			t.Error("Verify() should fail with 51 cards")
		}
	})

	t.Run("bad foundation", func(t *testing.T) {
		tb := emptyTable(t)
		tb.foundations[0].AddCard(up("2H"))
		fill(tb)
		if err := tb.Verify(); err == nil {
			t.Error("Verify() should reject a foundation starting at 2")
		}
	})

	t.Run("bad tableau run", func(t *testing.T) {
		tb := emptyTable(t)
		tb.tableaus[0].AddCard(up("9S"))
		tb.tableaus[0].AddCard(up("8C"))
		fill(tb)
		if err := tb.Verify(); err == nil {
			t.Error("Verify() should reject black on black")
		}
	})
}

func TestSnapshot(t *testing.T) {
	tb := newTestTable(t, 8)
	s := tb.Snapshot()

	if len(s.Piles) != NumPiles {
		t.Fatalf("Snapshot has %d piles, want %d", len(s.Piles), NumPiles)
	}
	if s.GameID != tb.ID() || s.Status != StatusWelcome {
		t.Errorf("Snapshot header = %q %q", s.GameID, s.Status)
	}

	v, ok := s.Pile(pile.Ref{Kind: pile.KindTableau, Index: 4})
	if !ok || len(v.Cards) != 5 || !v.Cards[4].FaceUp || v.Cards[0].FaceUp {
		t.Fatalf("tableau 5 view = %+v", v)
	}

	// views are copies
	v.Cards[0].FaceUp = true
	if tb.Tableau(4).Cards()[0].FaceUp() {
		t.Error("changing a view changed the table")
	}
}
