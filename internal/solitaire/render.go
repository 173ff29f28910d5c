package solitaire

import (
	"fmt"

	"github.com/FBastiaan04/solitui/internal/core"
)

// cardBack is the rune used to fill face-down cards and the stock.
// Configurable through the theme section of the config file.
var cardBack = '░'

// SetCardBack overrides the face-down fill rune. Zero restores the default.
func SetCardBack(r rune) {
	if r == 0 {
		r = '░'
	}
	cardBack = r
}

// highContrast switches card labels to the bright ANSI palette.
var highContrast = false

// SetHighContrast toggles the bright label palette.
func SetHighContrast(on bool) {
	highContrast = on
}

// Render draws the board: 8 tableau columns, then the stock, waste, and
// foundations stacked in the side region. Geometry mirrors the resolver's
// click bands exactly, so what you click is what you see.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < boardWidth {
		dst.DrawText(0, 0, "Window too narrow")
		return
	}

	for i := range g.columns {
		g.renderColumn(dst, i)
	}

	stock, waste, foundations := sideBands()

	if g.stock.Empty() {
		drawEmptySlot(dst, stock.X, stock.Y)
	} else {
		drawCardBack(dst, stock.X, stock.Y)
	}

	g.renderPileTop(dst, g.waste, waste.X, waste.Y, g.selected.Kind == PosWaste)
	for n := range g.foundations {
		sel := g.selected.Kind == PosFoundation && g.selected.Index == n
		g.renderPileTop(dst, g.foundations[n], foundations[n].X, foundations[n].Y, sel)
	}

	g.renderHUD(dst)

	if g.debug && g.lastMove != "" {
		dst.DrawTextColored(boardWidth+1, 0, g.lastMove, core.ColorGray)
	}
}

// renderColumn draws column i as a stack of overlapping card boxes: each
// buried card shows a 2-row sliver, the top card a full box.
func (g *Game) renderColumn(dst *core.Screen, i int) {
	col := &g.columns[i]
	n := col.Len()
	if n == 0 {
		return
	}

	x := i * cardWidth
	for j := 0; j < n; j++ {
		card, _ := col.At(j)
		y := j * rowPitch
		sel := g.selected.Kind == PosColumn && g.selected.Index == i && g.selected.Card == j
		if j == n-1 {
			drawCardFace(dst, x, y, card, sel, j > 0)
		} else {
			drawCardSliver(dst, x, y, card, sel, j > 0)
		}
	}
}

// renderPileTop draws the top card of a pile at (x, y), or an empty slot.
func (g *Game) renderPileTop(dst *core.Screen, p Pile, x, y int, selected bool) {
	top, ok := p.Peek()
	if !ok {
		drawEmptySlot(dst, x, y)
		return
	}
	drawCardFace(dst, x, y, top, selected, false)
}

// renderHUD draws the key help and move counter on the bottom line.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" d draw  c clear  n new deal  q quit   moves: %d  home: %d",
		g.moves, g.CardsHome())
	dst.DrawTextColored(0, dst.Height()-1, hud, core.ColorGray)
}

// labelColor picks the display color for a card's label.
func labelColor(card Card, selected bool) core.Color {
	switch {
	case selected:
		return core.ColorBrightYellow
	case card.Color() == Red:
		if highContrast {
			return core.ColorBrightRed
		}
		return core.ColorRed
	case highContrast:
		return core.ColorBrightWhite
	default:
		return core.ColorWhite
	}
}

// drawLabelRow draws a card's interior row: its label, or the back fill
// when face-down.
func drawLabelRow(dst *core.Screen, x, y int, card Card, selected bool) {
	if card.FaceDown {
		dst.DrawHLine(x+1, y, cardWidth-2, cardBack, core.ColorGray)
		return
	}
	dst.DrawTextColored(x+1, y, card.String(), labelColor(card, selected))
}

// drawTopBorder draws a card's top border. Joined variants connect to the
// card sliver above.
func drawTopBorder(dst *core.Screen, x, y int, joined bool) {
	left, right := '╭', '╮'
	if joined {
		left, right = '├', '┤'
	}
	dst.Set(x, y, left)
	dst.DrawHLine(x+1, y, cardWidth-2, '─', core.ColorDefault)
	dst.Set(x+cardWidth-1, y, right)
}

// drawCardSliver draws the visible 2-row top of a buried column card.
func drawCardSliver(dst *core.Screen, x, y int, card Card, selected, joined bool) {
	drawTopBorder(dst, x, y, joined)
	dst.Set(x, y+1, '│')
	dst.Set(x+cardWidth-1, y+1, '│')
	drawLabelRow(dst, x, y+1, card, selected)
}

// drawCardFace draws a full card box with the label in its top row.
func drawCardFace(dst *core.Screen, x, y int, card Card, selected, joined bool) {
	drawTopBorder(dst, x, y, joined)
	for row := 1; row < cardHeight-1; row++ {
		dst.Set(x, y+row, '│')
		dst.Set(x+cardWidth-1, y+row, '│')
	}
	drawLabelRow(dst, x, y+1, card, selected)
	dst.Set(x, y+cardHeight-1, '╰')
	dst.DrawHLine(x+1, y+cardHeight-1, cardWidth-2, '─', core.ColorDefault)
	dst.Set(x+cardWidth-1, y+cardHeight-1, '╯')
}

// drawCardBack draws a full face-down card box.
func drawCardBack(dst *core.Screen, x, y int) {
	drawCardFace(dst, x, y, Card{FaceDown: true}, false, false)
	drawLabelRow(dst, x, y+2, Card{FaceDown: true}, false)
	drawLabelRow(dst, x, y+3, Card{FaceDown: true}, false)
}

// drawEmptySlot draws a double-bordered placeholder for an empty pile.
func drawEmptySlot(dst *core.Screen, x, y int) {
	dst.Set(x, y, '╔')
	dst.DrawHLine(x+1, y, cardWidth-2, '═', core.ColorGray)
	dst.Set(x+cardWidth-1, y, '╗')
	for row := 1; row < cardHeight-1; row++ {
		dst.Set(x, y+row, '║')
		dst.Set(x+cardWidth-1, y+row, '║')
	}
	dst.Set(x, y+cardHeight-1, '╚')
	dst.DrawHLine(x+1, y+cardHeight-1, cardWidth-2, '═', core.ColorGray)
	dst.Set(x+cardWidth-1, y+cardHeight-1, '╝')
}
