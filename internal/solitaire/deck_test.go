package solitaire

import (
	"math/rand"
	"testing"
)

func TestNewDeckComplete(t *testing.T) {
	deck := NewDeck()
	if len(deck) != DeckSize {
		t.Fatalf("Expected %d cards, got %d", DeckSize, len(deck))
	}

	seen := make(map[Card]bool)
	for _, c := range deck {
		if !c.FaceDown {
			t.Errorf("Card %s should start face-down", c)
		}
		c.FaceDown = false
		if seen[c] {
			t.Errorf("Duplicate card %s", c)
		}
		seen[c] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("Expected %d unique identities, got %d", DeckSize, len(seen))
	}
}

func TestDealShape(t *testing.T) {
	layout := ShuffleAndDeal(rand.New(rand.NewSource(42)))

	for i, col := range layout.Columns {
		if len(col) != i+1 {
			t.Errorf("Column %d: expected %d cards, got %d", i, i+1, len(col))
		}
		for j, c := range col {
			wantDown := j != len(col)-1
			if c.FaceDown != wantDown {
				t.Errorf("Column %d card %d: FaceDown = %v, want %v", i, j, c.FaceDown, wantDown)
			}
		}
	}

	if len(layout.Stock) != 24 {
		t.Errorf("Stock: expected 24 cards, got %d", len(layout.Stock))
	}
	for _, c := range layout.Stock {
		if !c.FaceDown {
			t.Errorf("Stock card %s should be face-down", c)
		}
	}
}

func TestDealPreservesIdentities(t *testing.T) {
	layout := ShuffleAndDeal(rand.New(rand.NewSource(7)))

	seen := make(map[Card]bool)
	count := 0
	collect := func(cards []Card) {
		for _, c := range cards {
			c.FaceDown = false
			if seen[c] {
				t.Errorf("Duplicate card %s in deal", c)
			}
			seen[c] = true
			count++
		}
	}
	for _, col := range layout.Columns {
		collect(col)
	}
	collect(layout.Stock)

	if count != DeckSize {
		t.Errorf("Deal holds %d cards, want %d", count, DeckSize)
	}
}

func TestDealDeterministic(t *testing.T) {
	a := ShuffleAndDeal(rand.New(rand.NewSource(99)))
	b := ShuffleAndDeal(rand.New(rand.NewSource(99)))

	for i := range a.Columns {
		for j := range a.Columns[i] {
			if a.Columns[i][j] != b.Columns[i][j] {
				t.Fatalf("Column %d card %d differs between identical seeds", i, j)
			}
		}
	}
	for i := range a.Stock {
		if a.Stock[i] != b.Stock[i] {
			t.Fatalf("Stock card %d differs between identical seeds", i)
		}
	}
}

func TestCardColors(t *testing.T) {
	tests := []struct {
		suit Suit
		want CardColor
	}{
		{Spades, Black},
		{Hearts, Red},
		{Clubs, Black},
		{Diamonds, Red},
	}
	for _, tt := range tests {
		c := Card{Suit: tt.suit, Rank: Ace}
		if c.Color() != tt.want {
			t.Errorf("Card %s: color = %v, want %v", c, c.Color(), tt.want)
		}
	}
}

func TestRankLabels(t *testing.T) {
	tests := []struct {
		rank Rank
		want string
	}{
		{Ace, "A"},
		{Rank(2), "2"},
		{Rank(10), "10"},
		{Jack, "J"},
		{Queen, "Q"},
		{King, "K"},
	}
	for _, tt := range tests {
		if got := tt.rank.Label(); got != tt.want {
			t.Errorf("Rank %d: label = %q, want %q", tt.rank, got, tt.want)
		}
	}
}
