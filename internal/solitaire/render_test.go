package solitaire

import (
	"strings"
	"testing"

	"github.com/FBastiaan04/solitui/internal/core"
)

func TestRenderBoard(t *testing.T) {
	g := newTestGame(50)

	screen := core.NewScreen(80, 32)
	g.Render(screen)

	content := screen.String()
	if strings.TrimSpace(content) == "" {
		t.Fatal("Rendered board should not be empty")
	}
	if !strings.Contains(content, "moves: 0") {
		t.Error("HUD should show the move counter")
	}

	// Face-up cards from the deal should be visible as labels.
	hasLabel := false
	for _, suit := range []string{"♠", "♥", "♣", "♦"} {
		if strings.Contains(content, suit) {
			hasLabel = true
			break
		}
	}
	if !hasLabel {
		t.Error("Board should show at least one face-up card label")
	}

	// Empty foundations render as double-bordered slots.
	if !strings.Contains(content, "╔") {
		t.Error("Empty foundations should render placeholder slots")
	}
}

func TestRenderTooNarrow(t *testing.T) {
	g := newTestGame(51)

	screen := core.NewScreen(30, 24)
	g.Render(screen)

	if !strings.Contains(screen.String(), "too narrow") {
		t.Error("Narrow screens should show a size warning")
	}
}

func TestRenderHighlightsSelection(t *testing.T) {
	g := newTestGame(52)
	g.Handle(core.ClickEvent(0, 0)) // select column 0's only card

	screen := core.NewScreen(80, 32)
	g.Render(screen)

	// The selected card's label row is at (1, 1) inside the first card box.
	cell := screen.GetCell(1, 1)
	if cell.Color != core.ColorBrightYellow {
		t.Errorf("Selected card label color = %v, want bright yellow", cell.Color)
	}
}

func TestRenderDebugTrace(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 32, Seed: 53, Debug: true})
	g.Handle(core.ClickEvent(0, 0))

	screen := core.NewScreen(80, 32)
	g.Render(screen)

	if !strings.Contains(screen.String(), "column[0][0]") {
		t.Error("Debug mode should show the last resolved transition")
	}
}
