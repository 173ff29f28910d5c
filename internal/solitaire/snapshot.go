package solitaire

// Snapshot captures the observable shape of the game state for
// determinism checks and tests.
type Snapshot struct {
	Moves       int
	StockLen    int
	WasteLen    int
	ColumnLens  [TableauColumns]int
	Foundations [FoundationPiles]int
	Selected    Position
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Moves:    g.moves,
		StockLen: g.stock.Len(),
		WasteLen: g.waste.Len(),
		Selected: g.selected,
	}
	for i := range g.columns {
		snap.ColumnLens[i] = g.columns[i].Len()
	}
	for i := range g.foundations {
		snap.Foundations[i] = g.foundations[i].Len()
	}
	return snap
}

// CardCounts tallies every card identity across all piles. A legal state
// maps each of the 52 identities to exactly 1.
func (g *Game) CardCounts() map[Card]int {
	counts := make(map[Card]int, DeckSize)
	add := func(cards []Card) {
		for _, c := range cards {
			c.FaceDown = false // count identity only
			counts[c]++
		}
	}
	for i := range g.columns {
		add(g.columns[i].Cards())
	}
	add(g.stock)
	add(g.waste)
	for i := range g.foundations {
		add(g.foundations[i])
	}
	return counts
}
