package solitaire

// Pile is an ordered sequence of cards. The tail is the top: cards are
// appended and removed there only. Empty piles are a normal, checkable
// state; Pop and Peek never panic.
type Pile []Card

// Push appends a card to the top of the pile.
func (p *Pile) Push(c Card) {
	*p = append(*p, c)
}

// Pop removes and returns the top card. The bool is false if the pile
// is empty.
func (p *Pile) Pop() (Card, bool) {
	if len(*p) == 0 {
		return Card{}, false
	}
	c := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return c, true
}

// Peek returns the top card without removing it. The bool is false if
// the pile is empty.
func (p Pile) Peek() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[len(p)-1], true
}

// Len returns the number of cards in the pile.
func (p Pile) Len() int {
	return len(p)
}

// Empty reports whether the pile holds no cards.
func (p Pile) Empty() bool {
	return len(p) == 0
}

// Column is a tableau pile. Removing its top card reveals the card
// underneath: every column-reducing operation flips the new top face-up.
type Column struct {
	cards Pile
}

// Len returns the number of cards in the column.
func (c *Column) Len() int {
	return c.cards.Len()
}

// Empty reports whether the column holds no cards.
func (c *Column) Empty() bool {
	return c.cards.Empty()
}

// At returns the card at the given index. The bool is false if the index
// is out of range.
func (c *Column) At(i int) (Card, bool) {
	if i < 0 || i >= len(c.cards) {
		return Card{}, false
	}
	return c.cards[i], true
}

// Top returns the column's top card. The bool is false if the column
// is empty.
func (c *Column) Top() (Card, bool) {
	return c.cards.Peek()
}

// Push appends a card to the top of the column.
func (c *Column) Push(card Card) {
	c.cards.Push(card)
}

// Extend appends a run of cards in order, preserving their sequence.
func (c *Column) Extend(run []Card) {
	c.cards = append(c.cards, run...)
}

// Pop removes and returns the top card, revealing the card underneath.
func (c *Column) Pop() (Card, bool) {
	card, ok := c.cards.Pop()
	if ok {
		c.reveal()
	}
	return card, ok
}

// DrainFrom removes and returns all cards from index to the top,
// preserving order, then reveals the new top card. Returns nil if the
// index is out of range.
func (c *Column) DrainFrom(index int) []Card {
	if index < 0 || index >= len(c.cards) {
		return nil
	}
	run := make([]Card, len(c.cards)-index)
	copy(run, c.cards[index:])
	c.cards = c.cards[:index]
	c.reveal()
	return run
}

// reveal flips the new top card face-up, if any.
func (c *Column) reveal() {
	if n := len(c.cards); n > 0 {
		c.cards[n-1].FaceDown = false
	}
}

// Cards returns a copy of the column's cards, bottom first.
func (c *Column) Cards() []Card {
	out := make([]Card, len(c.cards))
	copy(out, c.cards)
	return out
}
