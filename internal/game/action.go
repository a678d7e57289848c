// Package game provides the main game loop and turn scheduling.
package game

// Action is the outcome of classifying one player input.
type Action int

const (
	// TookTurn - the player acted on the world; monsters respond
	TookTurn Action = iota
	// DidntTakeTurn - nothing in the world changed; wait for the next input
	DidntTakeTurn
	// Exit - leave the game loop immediately
	Exit
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case TookTurn:
		return "took_turn"
	case DidntTakeTurn:
		return "didnt_take_turn"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}
