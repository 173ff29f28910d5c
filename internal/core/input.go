package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps key bindings to actions; games never see raw keys.
type Action int

const (
	ActionNone    Action = iota
	ActionDraw           // d - draw a card from the stock to the waste
	ActionClear          // c - clear the pending selection
	ActionNewDeal        // n - reshuffle and start a fresh deal
	ActionQuit           // Escape, q, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionDraw:
		return "Draw"
	case ActionClear:
		return "Clear"
	case ActionNewDeal:
		return "NewDeal"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single discrete input event delivered to a game.
// It is either a key action or a left-button pointer release carrying
// cell coordinates; the game handles exactly one event per invocation.
type Event struct {
	Action Action
	Click  bool // true for pointer-release events; X and Y are then valid
	X, Y   int
}

// KeyEvent builds an event for a key-driven action.
func KeyEvent(a Action) Event {
	return Event{Action: a}
}

// ClickEvent builds an event for a left-button pointer release at (x, y).
func ClickEvent(x, y int) Event {
	return Event{Click: true, X: x, Y: y}
}
