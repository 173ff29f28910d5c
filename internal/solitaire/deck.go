package solitaire

import "math/rand"

// Board layout constants. The addressed layout is fixed: 8 tableau
// columns, 4 foundations, one stock and one waste pile.
const (
	TableauColumns  = 8
	FoundationPiles = 4
	DeckSize        = 52
)

// NewDeck returns the 52 canonical cards, all face-down, in suit-major order.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for suit := Spades; suit <= Diamonds; suit++ {
		for rank := Ace; rank <= King; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank, FaceDown: true})
		}
	}
	return deck
}

// Layout is the initial distribution of a shuffled deck: column i holds
// i+1 cards with only the last face-up, and the remaining 24 cards form
// the face-down stock.
type Layout struct {
	Columns [TableauColumns][]Card
	Stock   []Card
}

// ShuffleAndDeal shuffles a fresh deck with the given source and partitions
// it into the starting layout.
func ShuffleAndDeal(rng *rand.Rand) Layout {
	deck := NewDeck()
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	var layout Layout
	next := 0
	for i := 0; i < TableauColumns; i++ {
		col := make([]Card, i+1)
		copy(col, deck[next:next+i+1])
		col[i].FaceDown = false
		layout.Columns[i] = col
		next += i + 1
	}

	stock := make([]Card, DeckSize-next)
	copy(stock, deck[next:])
	layout.Stock = stock
	return layout
}
