package solitaire

import "testing"

func TestPilePushPopOrder(t *testing.T) {
	var p Pile
	p.Push(Card{Suit: Spades, Rank: Ace})
	p.Push(Card{Suit: Hearts, Rank: King})

	top, ok := p.Pop()
	if !ok || top.Rank != King {
		t.Errorf("Pop() = %v, %v; want King, true", top, ok)
	}
	top, ok = p.Pop()
	if !ok || top.Rank != Ace {
		t.Errorf("Pop() = %v, %v; want Ace, true", top, ok)
	}
}

func TestPileEmptyOps(t *testing.T) {
	var p Pile

	if _, ok := p.Pop(); ok {
		t.Error("Pop() on empty pile should report false")
	}
	if _, ok := p.Peek(); ok {
		t.Error("Peek() on empty pile should report false")
	}
	if !p.Empty() {
		t.Error("Empty() should be true for a fresh pile")
	}
}

func TestPilePeekDoesNotRemove(t *testing.T) {
	var p Pile
	p.Push(Card{Suit: Clubs, Rank: Queen})

	if _, ok := p.Peek(); !ok {
		t.Fatal("Peek() failed on non-empty pile")
	}
	if p.Len() != 1 {
		t.Errorf("Len() = %d after Peek, want 1", p.Len())
	}
}

func TestColumnPopReveals(t *testing.T) {
	col := Column{cards: Pile{
		{Suit: Spades, Rank: Rank(3), FaceDown: true},
		{Suit: Hearts, Rank: Rank(7), FaceDown: false},
	}}

	if _, ok := col.Pop(); !ok {
		t.Fatal("Pop() failed on non-empty column")
	}
	top, ok := col.Top()
	if !ok {
		t.Fatal("Column should still have one card")
	}
	if top.FaceDown {
		t.Error("New top card should be revealed after Pop")
	}
}

func TestColumnDrainFrom(t *testing.T) {
	col := Column{cards: Pile{
		{Suit: Spades, Rank: Rank(9), FaceDown: true},
		{Suit: Clubs, Rank: Rank(7), FaceDown: false},
		{Suit: Hearts, Rank: Rank(6), FaceDown: false},
	}}

	run := col.DrainFrom(1)
	if len(run) != 2 {
		t.Fatalf("DrainFrom(1) returned %d cards, want 2", len(run))
	}
	if run[0].Rank != 7 || run[1].Rank != 6 {
		t.Errorf("Run order = [%s %s], want [7♣ 6♥]", run[0], run[1])
	}

	top, ok := col.Top()
	if !ok {
		t.Fatal("Column should keep the card below the run")
	}
	if top.FaceDown {
		t.Error("New top card should be revealed after DrainFrom")
	}
}

func TestColumnDrainFromOutOfRange(t *testing.T) {
	col := Column{cards: Pile{{Suit: Spades, Rank: Ace}}}

	if run := col.DrainFrom(5); run != nil {
		t.Errorf("DrainFrom(5) = %v, want nil", run)
	}
	if run := col.DrainFrom(-1); run != nil {
		t.Errorf("DrainFrom(-1) = %v, want nil", run)
	}
	if col.Len() != 1 {
		t.Errorf("Column length changed by out-of-range drain: %d", col.Len())
	}
}

func TestColumnDrainAllLeavesEmpty(t *testing.T) {
	col := Column{cards: Pile{
		{Suit: Diamonds, Rank: King, FaceDown: false},
	}}

	run := col.DrainFrom(0)
	if len(run) != 1 {
		t.Fatalf("DrainFrom(0) returned %d cards, want 1", len(run))
	}
	if !col.Empty() {
		t.Error("Column should be empty after draining everything")
	}
}
