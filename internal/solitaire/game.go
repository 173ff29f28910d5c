package solitaire

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/FBastiaan04/solitui/internal/core"
	"github.com/FBastiaan04/solitui/internal/registry"
)

// Mode selects how the deal seed is chosen.
type Mode string

const (
	ModeRandom Mode = "random"
	ModeDaily  Mode = "daily"
)

// Package-level rule configuration, injected from the config layer
// before a game is created.
var strictFoundation bool

// SetStrictFoundation enables strict ascending-rank foundation order
// (Ace, 2, 3, ...). The default preserves the lenient same-suit-only rule.
func SetStrictFoundation(strict bool) {
	strictFoundation = strict
}

// Game is the Klondike game state: 8 tableau columns, a stock, a waste
// pile, 4 foundations, and the pending selection. All mutation happens
// synchronously inside Handle; there is no concurrent access.
type Game struct {
	mode Mode
	rng  *rand.Rand

	columns     [TableauColumns]Column
	stock       Pile
	waste       Pile
	foundations [FoundationPiles]Pile

	selected Position
	moves    int

	// Screen dimensions, remembered for self-reset on a new deal
	screenW int
	screenH int

	debug    bool
	lastMove string
}

// New creates a randomly-dealt Klondike game.
func New() *Game {
	return &Game{mode: ModeRandom}
}

// NewDaily creates a Klondike game whose deal is derived from the current
// date, so every player gets the same layout on a given day.
func NewDaily() *Game {
	return &Game{mode: ModeDaily}
}

func init() {
	registry.Register("klondike", func() registry.Game {
		return New()
	})
	registry.Register("klondike_daily", func() registry.Game {
		return NewDaily()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeDaily {
		return "klondike_daily"
	}
	return "klondike"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeDaily {
		return "Klondike (Daily Deal)"
	}
	return "Klondike"
}

// dailySeed derives a deterministic seed from the current date.
func dailySeed() int64 {
	seed, err := strconv.ParseInt(time.Now().Format("20060102"), 10, 64)
	if err != nil {
		return 0
	}
	return seed
}

// Reset shuffles a fresh deck and deals the starting layout.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if g.mode == ModeDaily {
		seed = dailySeed()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.debug = cfg.Debug
	g.moves = 0
	g.selected = NoPosition()
	g.lastMove = ""

	layout := ShuffleAndDeal(g.rng)
	for i := range g.columns {
		g.columns[i] = Column{cards: layout.Columns[i]}
	}
	g.stock = layout.Stock
	g.waste = nil
	for i := range g.foundations {
		g.foundations[i] = nil
	}
}

// Handle processes one discrete input event. A pointer release resolves
// to a position, attempts a move from the pending selection to it, and
// records it as the new selection. Key actions draw, clear the selection,
// or start a new deal.
func (g *Game) Handle(ev core.Event) core.EventResult {
	if ev.Click {
		pos := g.resolve(ev.X, ev.Y)
		g.attemptMove(g.selected, pos)
		g.selected = pos
		return core.EventResult{State: g.State()}
	}

	switch ev.Action {
	case core.ActionDraw:
		g.Draw()
	case core.ActionClear:
		g.selected = NoPosition()
	case core.ActionNewDeal:
		g.Reset(core.RuntimeConfig{
			ScreenW: g.screenW,
			ScreenH: g.screenH,
			Seed:    g.rng.Int63(),
			Debug:   g.debug,
		})
	}
	return core.EventResult{State: g.State()}
}

// Draw moves the top stock card to the waste, face-up. Drawing from an
// empty stock is a no-op.
func (g *Game) Draw() bool {
	card, ok := g.stock.Pop()
	if !ok {
		return false
	}
	card.FaceDown = false
	g.waste.Push(card)
	return true
}

// attemptMove validates a (source, destination) position pair against the
// Klondike rules and, if legal, transfers card(s) and performs follow-on
// reveals. Every invalid combination is a silent no-op.
func (g *Game) attemptMove(src, dst Position) {
	g.lastMove = fmt.Sprintf("%s -> %s", src, dst)

	switch dst.Kind {
	case PosNone, PosWaste:
		// Never move targets.
	case PosFoundation:
		g.moveToFoundation(src, dst.Index)
	case PosColumn:
		g.moveToColumn(src, dst.Index)
	}
}

// moveToFoundation handles moves onto foundation n. Only the waste top or
// a column's top card may go to a foundation.
func (g *Game) moveToFoundation(src Position, n int) {
	if n < 0 || n >= FoundationPiles {
		return
	}

	switch src.Kind {
	case PosWaste:
		card, ok := g.waste.Peek()
		if !ok || !g.validateFoundation(n, card) {
			return
		}
		card, _ = g.waste.Pop()
		g.foundations[n].Push(card)
		g.moves++

	case PosColumn:
		if src.Index < 0 || src.Index >= TableauColumns {
			return
		}
		col := &g.columns[src.Index]
		if col.Empty() || src.Card != col.Len()-1 {
			// Only a single top card may go to a foundation.
			return
		}
		card, _ := col.Top()
		if !g.validateFoundation(n, card) {
			return
		}
		card, _ = col.Pop()
		g.foundations[n].Push(card)
		g.moves++
	}
}

// moveToColumn handles moves onto column x: the waste top, a foundation
// top, or a run from another column.
func (g *Game) moveToColumn(src Position, x int) {
	if x < 0 || x >= TableauColumns {
		return
	}

	switch src.Kind {
	case PosWaste:
		card, ok := g.waste.Peek()
		if !ok || !g.validateColumn(x, card) {
			return
		}
		card, _ = g.waste.Pop()
		g.columns[x].Push(card)
		g.moves++

	case PosFoundation:
		if src.Index < 0 || src.Index >= FoundationPiles {
			return
		}
		card, ok := g.foundations[src.Index].Peek()
		if !ok || !g.validateColumn(x, card) {
			return
		}
		card, _ = g.foundations[src.Index].Pop()
		g.columns[x].Push(card)
		g.moves++

	case PosColumn:
		if src.Index == x {
			// Self-move.
			return
		}
		if src.Index < 0 || src.Index >= TableauColumns {
			return
		}
		source := &g.columns[src.Index]
		card, ok := source.At(src.Card)
		if !ok || !g.validateColumn(x, card) {
			return
		}
		run := source.DrainFrom(src.Card)
		g.columns[x].Extend(run)
		g.moves++
	}
}

// validateFoundation reports whether card may be pushed onto foundation n.
// An empty foundation accepts any card; a non-empty one requires the same
// suit. Strict mode additionally requires ascending rank from Ace.
func (g *Game) validateFoundation(n int, card Card) bool {
	top, ok := g.foundations[n].Peek()
	if !ok {
		if strictFoundation {
			return card.Rank == Ace
		}
		return true
	}
	if top.Suit != card.Suit {
		return false
	}
	if strictFoundation {
		return top.Rank+1 == card.Rank
	}
	return true
}

// validateColumn reports whether card may be pushed onto column x: a King
// on an empty column, or opposite color and rank exactly one below the top.
func (g *Game) validateColumn(x int, card Card) bool {
	top, ok := g.columns[x].Top()
	if !ok {
		return card.Rank == King
	}
	return top.Color() != card.Color() && top.Rank == card.Rank+1
}

// --- Read-only views for the platform layer ---

// ColumnCards returns a copy of column i, bottom first.
func (g *Game) ColumnCards(i int) []Card {
	if i < 0 || i >= TableauColumns {
		return nil
	}
	return g.columns[i].Cards()
}

// StockSize returns the number of cards left in the stock.
func (g *Game) StockSize() int {
	return g.stock.Len()
}

// WasteTop returns the waste pile's top card, if any.
func (g *Game) WasteTop() (Card, bool) {
	return g.waste.Peek()
}

// FoundationTop returns foundation n's top card, if any.
func (g *Game) FoundationTop(n int) (Card, bool) {
	if n < 0 || n >= FoundationPiles {
		return Card{}, false
	}
	return g.foundations[n].Peek()
}

// Selected returns the pending selection position.
func (g *Game) Selected() Position {
	return g.selected
}

// Moves returns the number of accepted moves this deal.
func (g *Game) Moves() int {
	return g.moves
}

// CardsHome returns the total number of cards on the foundations.
func (g *Game) CardsHome() int {
	total := 0
	for i := range g.foundations {
		total += g.foundations[i].Len()
	}
	return total
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		CardsHome: g.CardsHome(),
		Moves:     g.moves,
	}
}
