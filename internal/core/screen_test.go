package core

import (
	"strings"
	"testing"
)

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(10, 4)

	if s.Width() != 10 || s.Height() != 4 {
		t.Fatalf("Size = %dx%d, want 10x4", s.Width(), s.Height())
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Cell (%d,%d) = %q, want space", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 4)

	s.SetColored(3, 2, '♥', ColorRed)
	cell := s.GetCell(3, 2)
	if cell.Rune != '♥' || cell.Color != ColorRed {
		t.Errorf("GetCell(3,2) = %+v, want red heart", cell)
	}

	// Out-of-bounds writes are ignored, reads return a blank cell.
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 4, 'x')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 4) != ' ' {
		t.Error("Out-of-bounds Get should return space")
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(5, 2)
	s.SetColored(1, 1, 'A', ColorBrightYellow)

	s.Clear()
	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("After Clear, cell = %+v, want blank default", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "abcdef")

	if got := s.Row(0); got != "       abc" {
		t.Errorf("Row(0) = %q, want clipped text", got)
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawTextColored(0, 0, "Q♥", ColorRed)

	if s.GetCell(0, 0).Color != ColorRed || s.GetCell(1, 0).Color != ColorRed {
		t.Error("DrawTextColored should color every cell of the text")
	}
	if s.Get(1, 0) != '♥' {
		t.Errorf("Multi-byte runes should occupy one cell, got %q", s.Get(1, 0))
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawHLine(0, 0, 3, '─', ColorDefault)
	s.DrawVLine(1, 0, 2, '│', ColorDefault)

	if s.Get(0, 0) != '─' || s.Get(2, 0) != '─' {
		t.Error("DrawHLine did not fill the row")
	}
	if s.Get(1, 1) != '│' {
		t.Error("DrawVLine did not fill the column")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 3)
	s.DrawText(0, 0, "top")
	s.DrawText(0, 2, "bottom")

	s.Resize(4, 2)
	if !strings.HasPrefix(s.Row(0), "top") {
		t.Errorf("Row(0) = %q after shrink, want to keep 'top'", s.Row(0))
	}

	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "top") {
		t.Errorf("Row(0) = %q after grow, want to keep 'top'", s.Row(0))
	}
	if s.Get(7, 3) != ' ' {
		t.Error("Grown region should be blank")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
