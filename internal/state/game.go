// Package state holds the game aggregate shared by every turn phase.
package state

import (
	"github.com/Just-a-Unity-Dev/aeros/internal/msglog"
	"github.com/Just-a-Unity-Dev/aeros/internal/world"
)

// Game owns the map and the message log. The actor collection lives
// alongside it in the turn scheduler.
type Game struct {
	Map *world.Map
	Log *msglog.Log

	// GameOver is set when the player dies; the scheduler decides what follows.
	GameOver bool
}

// New creates the aggregate for a generated map.
func New(m *world.Map, logLimit int) *Game {
	return &Game{
		Map: m,
		Log: msglog.New(logLimit),
	}
}
