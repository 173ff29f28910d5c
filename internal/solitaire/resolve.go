package solitaire

import "github.com/FBastiaan04/solitui/internal/core"

// Board geometry in screen cells. Cards are 5 cells wide; stacked column
// cards expose 2 rows each. The side region sits one cell right of the
// tableau and stacks the stock, waste, and foundation click bands.
const (
	cardWidth  = 5
	cardHeight = 5
	rowPitch   = 2

	tableauWidth = cardWidth * TableauColumns
	sideX        = tableauWidth + 1
	bandHeight   = cardHeight
	boardWidth   = sideX + cardWidth
)

// sideBands returns the stacked click bands of the side region:
// stock, waste, then one band per foundation.
func sideBands() (stock, waste core.Rect, foundations [FoundationPiles]core.Rect) {
	stock = core.NewRect(sideX, 0, cardWidth, bandHeight)
	waste = core.NewRect(sideX, bandHeight, cardWidth, bandHeight)
	for n := range foundations {
		foundations[n] = core.NewRect(sideX, (2+n)*bandHeight, cardWidth, bandHeight)
	}
	return
}

// resolve maps a raw cell coordinate onto a game position, consulting the
// current pile contents. Resolving the stock band is not pure: it performs
// the draw immediately and resolves to the waste, so a single click both
// draws and selects the drawn card.
func (g *Game) resolve(x, y int) Position {
	if x >= 0 && x < tableauWidth && y >= 0 {
		return g.resolveColumn(x/cardWidth, y/rowPitch)
	}

	stock, waste, foundations := sideBands()
	switch {
	case stock.Contains(x, y):
		if !g.Draw() {
			return NoPosition()
		}
		return WastePosition()
	case waste.Contains(x, y):
		if g.waste.Empty() {
			return NoPosition()
		}
		return WastePosition()
	default:
		for n := range foundations {
			if foundations[n].Contains(x, y) {
				return FoundationPosition(n)
			}
		}
	}
	return NoPosition()
}

// resolveColumn maps a card-row index within column col to a position.
// Empty columns resolve to index 0 as a placeholder target; rows past the
// end clamp to the last card; face-down cards clamp to index 0, since a
// hidden run cannot be picked from mid-stack.
func (g *Game) resolveColumn(col, row int) Position {
	c := &g.columns[col]
	if c.Empty() {
		return ColumnPosition(col, 0)
	}
	row = core.Min(row, c.Len()-1)
	if card, _ := c.At(row); card.FaceDown {
		return ColumnPosition(col, 0)
	}
	return ColumnPosition(col, row)
}
