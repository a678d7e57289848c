// Package input defines the player intents the turn scheduler understands.
package input

// Kind identifies what the player asked for.
type Kind int

const (
	// None is an unrecognized key or event.
	None Kind = iota
	// Move is a directional move or bump attack.
	Move
	// Quit leaves the game.
	Quit
	// ToggleLog shows or hides the message panel.
	ToggleLog
	// Redraw repaints the screen, e.g. after a resize.
	Redraw
)

// String returns a human-readable intent name.
func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Move:
		return "move"
	case Quit:
		return "quit"
	case ToggleLog:
		return "toggle_log"
	case Redraw:
		return "redraw"
	default:
		return "unknown"
	}
}

// Intent is one discrete player input.
type Intent struct {
	Kind   Kind
	DX, DY int // Set for Move
}

// Direction builds a Move intent.
func Direction(dx, dy int) Intent {
	return Intent{Kind: Move, DX: dx, DY: dy}
}

// Source yields player intents. Next blocks until one is available.
type Source interface {
	Next() Intent
}
