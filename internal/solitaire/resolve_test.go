package solitaire

import "testing"

func TestResolveColumnLane(t *testing.T) {
	g := newTestGame(30)

	tests := []struct {
		x, y     int
		wantCol  int
		wantCard int
	}{
		{0, 0, 0, 0},   // first lane, first row
		{4, 1, 0, 0},   // lane edge still column 0
		{5, 0, 1, 0},   // second lane
		{39, 0, 7, 0},  // last lane
		{35, 14, 7, 7}, // face-up top of the 8-card column
	}
	for _, tt := range tests {
		pos := g.resolve(tt.x, tt.y)
		if pos.Kind != PosColumn || pos.Index != tt.wantCol || pos.Card != tt.wantCard {
			t.Errorf("resolve(%d, %d) = %v, want column[%d][%d]",
				tt.x, tt.y, pos, tt.wantCol, tt.wantCard)
		}
	}
}

func TestResolveClampsPastColumnEnd(t *testing.T) {
	g := newTestGame(31)

	// Column 0 has one card; any row below it clamps to that card.
	pos := g.resolve(2, 18)
	if pos != ColumnPosition(0, 0) {
		t.Errorf("resolve past end = %v, want column[0][0]", pos)
	}

	// Column 7 has 8 cards, the last at index 7.
	pos = g.resolve(36, 30)
	if pos != ColumnPosition(7, 7) {
		t.Errorf("resolve past end = %v, want column[7][7]", pos)
	}
}

func TestResolveFaceDownClampsToZero(t *testing.T) {
	g := newTestGame(32)

	// Column 7's first seven cards are face-down after the deal.
	pos := g.resolve(36, 6) // row 3, face-down
	if pos != ColumnPosition(7, 0) {
		t.Errorf("resolve on face-down card = %v, want column[7][0]", pos)
	}
}

func TestResolveEmptyColumn(t *testing.T) {
	g := newTestGame(33)
	g.setColumn(2)

	pos := g.resolve(12, 9)
	if pos != ColumnPosition(2, 0) {
		t.Errorf("resolve on empty column = %v, want column[2][0]", pos)
	}
}

func TestResolveStockBandDraws(t *testing.T) {
	g := newTestGame(34)
	before := g.StockSize()

	pos := g.resolve(42, 3)
	if pos != WastePosition() {
		t.Errorf("resolve(stock band) = %v, want waste", pos)
	}
	if g.StockSize() != before-1 {
		t.Error("Clicking the stock should draw a card")
	}
	top, ok := g.WasteTop()
	if !ok || top.FaceDown {
		t.Error("Drawn card should be face-up on the waste")
	}
}

func TestResolveEmptyStockBand(t *testing.T) {
	g := newTestGame(35)
	g.stock = nil

	if pos := g.resolve(42, 3); pos != NoPosition() {
		t.Errorf("resolve(empty stock) = %v, want none", pos)
	}
}

func TestResolveWasteBand(t *testing.T) {
	g := newTestGame(36)

	if pos := g.resolve(43, 7); pos != NoPosition() {
		t.Errorf("resolve(empty waste) = %v, want none", pos)
	}

	g.Draw()
	if pos := g.resolve(43, 7); pos != WastePosition() {
		t.Errorf("resolve(waste band) = %v, want waste", pos)
	}
}

func TestResolveFoundationBands(t *testing.T) {
	g := newTestGame(37)

	tests := []struct {
		y    int
		want int
	}{
		{10, 0},
		{14, 0},
		{15, 1},
		{20, 2},
		{29, 3},
	}
	for _, tt := range tests {
		pos := g.resolve(44, tt.y)
		if pos != FoundationPosition(tt.want) {
			t.Errorf("resolve(44, %d) = %v, want foundation[%d]", tt.y, pos, tt.want)
		}
	}
}

func TestResolveOutsideRegions(t *testing.T) {
	g := newTestGame(38)

	outside := [][2]int{
		{40, 0},  // gap between tableau and side region
		{46, 0},  // right of the side region
		{42, 30}, // below the foundation bands
		{70, 12},
	}
	for _, xy := range outside {
		if pos := g.resolve(xy[0], xy[1]); pos != NoPosition() {
			t.Errorf("resolve(%d, %d) = %v, want none", xy[0], xy[1], pos)
		}
	}
}
