// Package solitaire implements the Klondike game engine: the card and pile
// model, the click-to-position resolver, and the move validation state
// machine. It knows nothing about terminals; the platform layer feeds it
// input events and reads its state back for display.
package solitaire

// Suit identifies one of the four card suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// Rune returns the suit's glyph.
func (s Suit) Rune() rune {
	switch s {
	case Spades:
		return '♠'
	case Hearts:
		return '♥'
	case Clubs:
		return '♣'
	case Diamonds:
		return '♦'
	default:
		return '?'
	}
}

func (s Suit) String() string {
	return string(s.Rune())
}

// Rank is a card rank from Ace (1) to King (13).
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

var rankLabels = [...]string{
	"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K",
}

// Label returns the short display label for the rank ("A", "2".."10", "J", "Q", "K").
func (r Rank) Label() string {
	if r < Ace || r > King {
		return "?"
	}
	return rankLabels[r-1]
}

// CardColor is the red/black classification used by the tableau rules.
type CardColor int

const (
	Black CardColor = iota
	Red
)

// Card is a playing card. Identity is (Suit, Rank); FaceDown is the only
// mutable state. Cards are values: they are moved between piles, never
// shared by reference.
type Card struct {
	Suit     Suit
	Rank     Rank
	FaceDown bool
}

// Color returns Red for Hearts and Diamonds, Black for Spades and Clubs.
func (c Card) Color() CardColor {
	if c.Suit == Hearts || c.Suit == Diamonds {
		return Red
	}
	return Black
}

// String returns the card's display label, e.g. "Q♥".
func (c Card) String() string {
	return c.Rank.Label() + c.Suit.String()
}
