package solitaire

import "fmt"

// PositionKind discriminates the closed set of addressable game locations.
type PositionKind int

const (
	PosNone PositionKind = iota
	PosWaste
	PosFoundation
	PosColumn
)

// Position is a reference to a logical game location: nothing, the waste
// pile, a foundation, or a (column, card index) pair. It is transient UI
// state recording the last resolved click target, which becomes the "from"
// side of the next move. Positions compare with ==.
type Position struct {
	Kind  PositionKind
	Index int // foundation or column index
	Card  int // card index within a column
}

// NoPosition returns the empty selection.
func NoPosition() Position {
	return Position{Kind: PosNone}
}

// WastePosition returns a reference to the waste pile's top card.
func WastePosition() Position {
	return Position{Kind: PosWaste}
}

// FoundationPosition returns a reference to foundation n.
func FoundationPosition(n int) Position {
	return Position{Kind: PosFoundation, Index: n}
}

// ColumnPosition returns a reference to the card at index card in column col.
func ColumnPosition(col, card int) Position {
	return Position{Kind: PosColumn, Index: col, Card: card}
}

func (p Position) String() string {
	switch p.Kind {
	case PosNone:
		return "none"
	case PosWaste:
		return "waste"
	case PosFoundation:
		return fmt.Sprintf("foundation[%d]", p.Index)
	case PosColumn:
		return fmt.Sprintf("column[%d][%d]", p.Index, p.Card)
	default:
		return "invalid"
	}
}
